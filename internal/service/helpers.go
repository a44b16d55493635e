package service

import (
	"context"
	"strings"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
	"github.com/cloudpower/site-backend/pkg/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

const msgShowFlagRequired = "至少需選擇一個顯示語言（中文或英文）"

// ListParams are the list parameters a handler passes to a service
type ListParams struct {
	Page       int
	Limit      int
	CategoryID string
	Query      string
	Status     domain.Status
	// Language is the raw admin language filter; empty means none.
	Language string
}

func requireShowFlag(v domain.Visibility) error {
	if !v.ShowInZh && !v.ShowInEn {
		return common.BadRequest(msgShowFlagRequired)
	}
	return nil
}

// notFoundAs maps a missing row to a 404 with message
func notFoundAs(err error, message string) error {
	if repository.IsNotFound(err) {
		return common.NotFound(message)
	}
	return err
}

func statusOrDraft(s domain.Status) domain.Status {
	if s == "" {
		return domain.StatusDraft
	}
	return s
}

// audit logs an admin mutation
func audit(actor domain.Actor, entity, id string) *zerolog.Event {
	return logger.GetLogger().Info().
		Str("admin_id", actor.AdminID).
		Str("account", actor.Account).
		Str("entity", entity).
		Str("id", id)
}

func missingIDsMessage(prefix string, err *repository.MissingIDsError) string {
	return prefix + strings.Join(err.IDs, ", ")
}

// richText keeps the markup an editor produces and strips scripts,
// event handlers and unsafe URLs.
var richText = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowStyles("text-align", "color", "background-color").Globally()
	p.AllowAttrs("src", "width", "height", "allowfullscreen", "frameborder").OnElements("iframe")
	p.AllowElements("iframe")
	p.RequireParseableURLs(true)
	return p
}()

func sanitizeHTML(s string) string {
	if s == "" {
		return s
	}
	return richText.Sanitize(s)
}

func sanitizeHTMLPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := sanitizeHTML(*s)
	return &clean
}

const (
	msgCategoryRequired = "分類不能為空"
	msgCoverRequired    = "封面圖片不能為空"
)

// categoryChecker is the part of a category repository content services need
type categoryChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// requireCategory checks that id names a live category
func requireCategory(ctx context.Context, cats categoryChecker, id, missingMessage string) error {
	if strings.TrimSpace(id) == "" {
		return common.BadRequest(msgCategoryRequired)
	}
	ok, err := cats.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return common.BadRequest(missingMessage)
	}
	return nil
}

func (p ListParams) filter(public bool, loc i18n.Locale) repository.ListFilter {
	f := repository.ListFilter{
		Page:       p.Page,
		Limit:      p.Limit,
		CategoryID: p.CategoryID,
		Query:      p.Query,
		Public:     public,
		Locale:     loc,
	}
	if !public {
		f.Status = p.Status
		f.Locale = i18n.ResolveOptional(p.Language)
	}
	return f
}

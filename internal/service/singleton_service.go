package service

import (
	"context"
	"fmt"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
)

const (
	msgAboutNotFound         = "關於我們資訊不存在"
	msgPrivacyPolicyNotFound = "隱私權政策資訊不存在"
	msgCompanyInfoNotFound   = "公司資訊不存在"
)

// Patch is a request that knows which columns it changes
type Patch interface {
	Fields() map[string]interface{}
}

// SingletonService serves a one-row table. T is the row, R its public shape.
type SingletonService[T, R any] interface {
	Get(ctx context.Context, loc i18n.Locale) (*R, error)
	GetAdmin(ctx context.Context) (*T, error)
	Update(ctx context.Context, actor domain.Actor, patch Patch) (*T, error)
}

type singletonService[T, R any] struct {
	repo     repository.SingletonRepository[T]
	entity   string
	notFound string
	id       func(*T) string
	localize func(*T, i18n.Locale) R
	// richText lists columns sanitized as HTML before saving
	richText []string
}

// NewAboutService serves the about page
func NewAboutService(repo repository.SingletonRepository[domain.About]) SingletonService[domain.About, domain.PageResponse] {
	return &singletonService[domain.About, domain.PageResponse]{
		repo:     repo,
		entity:   "about",
		notFound: msgAboutNotFound,
		id:       func(a *domain.About) string { return a.ID },
		localize: func(a *domain.About, loc i18n.Locale) domain.PageResponse { return a.Localize(loc) },
		richText: []string{"zh_content", "en_content"},
	}
}

// NewPrivacyPolicyService serves the privacy policy page
func NewPrivacyPolicyService(repo repository.SingletonRepository[domain.PrivacyPolicy]) SingletonService[domain.PrivacyPolicy, domain.PageResponse] {
	return &singletonService[domain.PrivacyPolicy, domain.PageResponse]{
		repo:     repo,
		entity:   "privacy_policy",
		notFound: msgPrivacyPolicyNotFound,
		id:       func(p *domain.PrivacyPolicy) string { return p.ID },
		localize: func(p *domain.PrivacyPolicy, loc i18n.Locale) domain.PageResponse { return p.Localize(loc) },
		richText: []string{"zh_content", "en_content"},
	}
}

// NewCompanyInfoService serves the company contact block
func NewCompanyInfoService(repo repository.SingletonRepository[domain.CompanyInfo]) SingletonService[domain.CompanyInfo, domain.CompanyInfoResponse] {
	return &singletonService[domain.CompanyInfo, domain.CompanyInfoResponse]{
		repo:     repo,
		entity:   "company_info",
		notFound: msgCompanyInfoNotFound,
		id:       func(c *domain.CompanyInfo) string { return c.ID },
		localize: func(c *domain.CompanyInfo, loc i18n.Locale) domain.CompanyInfoResponse { return c.Localize(loc) },
	}
}

func (s *singletonService[T, R]) Get(ctx context.Context, loc i18n.Locale) (*R, error) {
	row, err := s.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}
	resp := s.localize(row, loc)
	return &resp, nil
}

func (s *singletonService[T, R]) GetAdmin(ctx context.Context) (*T, error) {
	row, err := s.repo.First(ctx)
	if err != nil {
		return nil, notFoundAs(err, s.notFound)
	}
	return row, nil
}

// Update patches the oldest row; it never creates one.
func (s *singletonService[T, R]) Update(ctx context.Context, actor domain.Actor, patch Patch) (*T, error) {
	row, err := s.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}
	id := s.id(row)

	fields := patch.Fields()
	for _, col := range s.richText {
		if v, ok := fields[col].(string); ok {
			fields[col] = sanitizeHTML(v)
		}
	}
	if len(fields) == 0 {
		return row, nil
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.entity, err)
	}

	audit(actor, s.entity, id).Int("fields", len(fields)).Msg("page updated")
	return s.GetAdmin(ctx)
}

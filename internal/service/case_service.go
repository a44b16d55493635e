package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
)

const (
	msgCaseNotFound           = "案例不存在"
	msgCaseCategoryMissing    = "指定的案例分類不存在"
	msgCaseCompanyLogoMissing = "公司 Logo 不能為空"
)

// CaseService defines the business logic for case studies
type CaseService interface {
	Create(ctx context.Context, actor domain.Actor, req *domain.CreateCaseRequest) (*domain.Case, error)
	List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.CaseResponse], error)
	ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.Case], error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*domain.CaseResponse, error)
	GetAdmin(ctx context.Context, id string) (*domain.Case, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateCaseRequest) (*domain.Case, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type caseService struct {
	repo       repository.ContentRepository[domain.Case]
	categories repository.CategoryRepository[domain.CaseCategory]
}

// NewCaseService creates a new CaseService
func NewCaseService(repo repository.ContentRepository[domain.Case], categories repository.CategoryRepository[domain.CaseCategory]) CaseService {
	return &caseService{repo: repo, categories: categories}
}

func (s *caseService) validate(ctx context.Context, c *domain.Case, checkCategory bool) error {
	if err := requireShowFlag(c.Visibility); err != nil {
		return err
	}
	if strings.TrimSpace(c.Cover) == "" {
		return common.BadRequest(msgCoverRequired)
	}
	if strings.TrimSpace(c.CompanyLogo) == "" {
		return common.BadRequest(msgCaseCompanyLogoMissing)
	}
	if checkCategory {
		return requireCategory(ctx, s.categories, c.CategoryID, msgCaseCategoryMissing)
	}
	return nil
}

func (s *caseService) Create(ctx context.Context, actor domain.Actor, req *domain.CreateCaseRequest) (*domain.Case, error) {
	c := &domain.Case{
		Visibility:           domain.NewVisibility(req.ShowInZh, req.ShowInEn),
		Cover:                req.Cover,
		CompanyLogo:          req.CompanyLogo,
		ZhCompanyName:        req.ZhCompanyName,
		EnCompanyName:        req.EnCompanyName,
		ZhCompanyDescription: req.ZhCompanyDescription,
		EnCompanyDescription: req.EnCompanyDescription,
		ZhCompanyTitle:       req.ZhCompanyTitle,
		EnCompanyTitle:       req.EnCompanyTitle,
		ZhTitle:              req.ZhTitle,
		EnTitle:              req.EnTitle,
		ZhDescription:        req.ZhDescription,
		EnDescription:        req.EnDescription,
		ZhTags:               req.ZhTags,
		EnTags:               req.EnTags,
		ZhContent:            sanitizeHTML(req.ZhContent),
		EnContent:            sanitizeHTML(req.EnContent),
		CategoryID:           req.CategoryID,
		Status:               statusOrDraft(req.Status),
	}
	if err := s.validate(ctx, c, true); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}

	audit(actor, "case", c.ID).Str("status", string(c.Status)).Msg("case created")
	return s.GetAdmin(ctx, c.ID)
}

// List returns full cases, content included
func (s *caseService) List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.CaseResponse], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(true, loc))
	if err != nil {
		return nil, err
	}
	page := domain.MapPage(domain.Page[domain.Case]{Data: items, Pagination: pagination}, func(c *domain.Case) domain.CaseResponse {
		return c.Localize(loc)
	})
	return &page, nil
}

func (s *caseService) ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.Case], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(false, ""))
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Case]{Data: items, Pagination: pagination}, nil
}

func (s *caseService) Get(ctx context.Context, id string, loc i18n.Locale) (*domain.CaseResponse, error) {
	c, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := c.Localize(loc)
	return &resp, nil
}

func (s *caseService) GetAdmin(ctx context.Context, id string) (*domain.Case, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgCaseNotFound)
	}
	return c, nil
}

func (s *caseService) Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateCaseRequest) (*domain.Case, error) {
	c, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ZhContent = sanitizeHTMLPtr(req.ZhContent)
	req.EnContent = sanitizeHTMLPtr(req.EnContent)
	fields := req.Apply(c)
	_, categoryChanged := fields["category_id"]
	if err := s.validate(ctx, c, categoryChanged); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update case: %w", err)
	}

	audit(actor, "case", id).Int("fields", len(fields)).Msg("case updated")
	return s.GetAdmin(ctx, id)
}

func (s *caseService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgCaseNotFound)
	}
	audit(actor, "case", id).Msg("case deleted")
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
)

const (
	msgProductNotFound        = "產品服務不存在"
	msgProductCategoryMissing = "指定的服務分類不存在"
)

// ProductService manages the services offered on the site.
// Named apart from the package to keep "service" unambiguous.
type ProductService interface {
	Create(ctx context.Context, actor domain.Actor, req *domain.CreateServiceRequest) (*domain.Service, error)
	List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.ServiceSummary], error)
	ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.Service], error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*domain.ServiceDetail, error)
	GetAdmin(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateServiceRequest) (*domain.Service, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type productService struct {
	repo       repository.ContentRepository[domain.Service]
	categories repository.CategoryRepository[domain.ServiceCategory]
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ContentRepository[domain.Service], categories repository.CategoryRepository[domain.ServiceCategory]) ProductService {
	return &productService{repo: repo, categories: categories}
}

func (s *productService) validate(ctx context.Context, p *domain.Service, checkCategory bool) error {
	if err := requireShowFlag(p.Visibility); err != nil {
		return err
	}
	if checkCategory {
		return requireCategory(ctx, s.categories, p.CategoryID, msgProductCategoryMissing)
	}
	return nil
}

func (s *productService) Create(ctx context.Context, actor domain.Actor, req *domain.CreateServiceRequest) (*domain.Service, error) {
	p := &domain.Service{
		Visibility:    domain.NewVisibility(req.ShowInZh, req.ShowInEn),
		Icon:          req.Icon,
		Logo:          req.Logo,
		Cover:         req.Cover,
		ZhTitle:       req.ZhTitle,
		EnTitle:       req.EnTitle,
		ZhDescription: req.ZhDescription,
		EnDescription: req.EnDescription,
		ZhContent:     sanitizeHTML(req.ZhContent),
		EnContent:     sanitizeHTML(req.EnContent),
		CategoryID:    req.CategoryID,
		Status:        statusOrDraft(req.Status),
	}
	if err := s.validate(ctx, p, true); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	audit(actor, "service", p.ID).Str("status", string(p.Status)).Msg("service created")
	return s.GetAdmin(ctx, p.ID)
}

func (s *productService) List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.ServiceSummary], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(true, loc))
	if err != nil {
		return nil, err
	}
	page := domain.MapPage(domain.Page[domain.Service]{Data: items, Pagination: pagination}, func(p *domain.Service) domain.ServiceSummary {
		return p.Summarize(loc)
	})
	return &page, nil
}

func (s *productService) ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.Service], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(false, ""))
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Service]{Data: items, Pagination: pagination}, nil
}

func (s *productService) Get(ctx context.Context, id string, loc i18n.Locale) (*domain.ServiceDetail, error) {
	p, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := p.Localize(loc)
	return &resp, nil
}

func (s *productService) GetAdmin(ctx context.Context, id string) (*domain.Service, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgProductNotFound)
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateServiceRequest) (*domain.Service, error) {
	p, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ZhContent = sanitizeHTMLPtr(req.ZhContent)
	req.EnContent = sanitizeHTMLPtr(req.EnContent)
	fields := req.Apply(p)
	_, categoryChanged := fields["category_id"]
	if err := s.validate(ctx, p, categoryChanged); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	audit(actor, "service", id).Int("fields", len(fields)).Msg("service updated")
	return s.GetAdmin(ctx, id)
}

func (s *productService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgProductNotFound)
	}
	audit(actor, "service", id).Msg("service deleted")
	return nil
}

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
	msgBlogNotFound        = "部落格不存在"
	msgBlogCategoryMissing = "指定的部落格分類不存在"
)

// BlogService defines the business logic for blog posts
type BlogService interface {
	Create(ctx context.Context, actor domain.Actor, req *domain.CreateBlogRequest) (*domain.Blog, error)
	List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.BlogResponse], error)
	ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.Blog], error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*domain.BlogResponse, error)
	GetAdmin(ctx context.Context, id string) (*domain.Blog, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateBlogRequest) (*domain.Blog, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type blogService struct {
	repo       repository.ContentRepository[domain.Blog]
	categories repository.CategoryRepository[domain.BlogCategory]
}

// NewBlogService creates a new BlogService
func NewBlogService(repo repository.ContentRepository[domain.Blog], categories repository.CategoryRepository[domain.BlogCategory]) BlogService {
	return &blogService{repo: repo, categories: categories}
}

func (s *blogService) validate(ctx context.Context, b *domain.Blog, checkCategory bool) error {
	if err := requireShowFlag(b.Visibility); err != nil {
		return err
	}
	if strings.TrimSpace(b.Cover) == "" {
		return common.BadRequest(msgCoverRequired)
	}
	if checkCategory {
		return requireCategory(ctx, s.categories, b.CategoryID, msgBlogCategoryMissing)
	}
	return nil
}

func (s *blogService) Create(ctx context.Context, actor domain.Actor, req *domain.CreateBlogRequest) (*domain.Blog, error) {
	blog := &domain.Blog{
		Visibility:    domain.NewVisibility(req.ShowInZh, req.ShowInEn),
		ZhTitle:       req.ZhTitle,
		EnTitle:       req.EnTitle,
		Cover:         req.Cover,
		ZhDescription: req.ZhDescription,
		EnDescription: req.EnDescription,
		ZhContent:     sanitizeHTML(req.ZhContent),
		EnContent:     sanitizeHTML(req.EnContent),
		ZhTags:        req.ZhTags,
		EnTags:        req.EnTags,
		CategoryID:    req.CategoryID,
		Status:        statusOrDraft(req.Status),
	}
	if err := s.validate(ctx, blog, true); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	audit(actor, "blog", blog.ID).Str("status", string(blog.Status)).Msg("blog created")
	return s.GetAdmin(ctx, blog.ID)
}

func (s *blogService) List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.BlogResponse], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(true, loc))
	if err != nil {
		return nil, err
	}
	page := domain.MapPage(domain.Page[domain.Blog]{Data: items, Pagination: pagination}, func(b *domain.Blog) domain.BlogResponse {
		return b.Localize(loc, false)
	})
	return &page, nil
}

func (s *blogService) ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.Blog], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(false, ""))
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Blog]{Data: items, Pagination: pagination}, nil
}

func (s *blogService) Get(ctx context.Context, id string, loc i18n.Locale) (*domain.BlogResponse, error) {
	blog, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := blog.Localize(loc, true)
	return &resp, nil
}

func (s *blogService) GetAdmin(ctx context.Context, id string) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgBlogNotFound)
	}
	return blog, nil
}

func (s *blogService) Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateBlogRequest) (*domain.Blog, error) {
	blog, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ZhContent = sanitizeHTMLPtr(req.ZhContent)
	req.EnContent = sanitizeHTMLPtr(req.EnContent)
	fields := req.Apply(blog)
	_, categoryChanged := fields["category_id"]
	if err := s.validate(ctx, blog, categoryChanged); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}

	audit(actor, "blog", id).Int("fields", len(fields)).Msg("blog updated")
	return s.GetAdmin(ctx, id)
}

func (s *blogService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgBlogNotFound)
	}
	audit(actor, "blog", id).Msg("blog deleted")
	return nil
}

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
	msgNewsNotFound        = "新聞不存在"
	msgNewsCategoryMissing = "指定的新聞分類不存在"
)

// NewsService defines the business logic for news
type NewsService interface {
	Create(ctx context.Context, actor domain.Actor, req *domain.CreateNewsRequest) (*domain.News, error)
	List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.NewsResponse], error)
	ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.News], error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*domain.NewsResponse, error)
	GetAdmin(ctx context.Context, id string) (*domain.News, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateNewsRequest) (*domain.News, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type newsService struct {
	repo       repository.ContentRepository[domain.News]
	categories repository.CategoryRepository[domain.NewsCategory]
}

// NewNewsService creates a new NewsService
func NewNewsService(repo repository.ContentRepository[domain.News], categories repository.CategoryRepository[domain.NewsCategory]) NewsService {
	return &newsService{repo: repo, categories: categories}
}

func (s *newsService) validate(ctx context.Context, n *domain.News, checkCategory bool) error {
	if err := requireShowFlag(n.Visibility); err != nil {
		return err
	}
	if strings.TrimSpace(n.Cover) == "" {
		return common.BadRequest(msgCoverRequired)
	}
	if checkCategory {
		return requireCategory(ctx, s.categories, n.CategoryID, msgNewsCategoryMissing)
	}
	return nil
}

func (s *newsService) Create(ctx context.Context, actor domain.Actor, req *domain.CreateNewsRequest) (*domain.News, error) {
	news := &domain.News{
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
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		Status:        statusOrDraft(req.Status),
	}
	if err := s.validate(ctx, news, true); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}

	audit(actor, "news", news.ID).Str("status", string(news.Status)).Msg("news created")
	return s.GetAdmin(ctx, news.ID)
}

func (s *newsService) List(ctx context.Context, loc i18n.Locale, params ListParams) (*domain.Page[domain.NewsResponse], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(true, loc))
	if err != nil {
		return nil, err
	}
	page := domain.MapPage(domain.Page[domain.News]{Data: items, Pagination: pagination}, func(n *domain.News) domain.NewsResponse {
		return n.Localize(loc, false)
	})
	return &page, nil
}

func (s *newsService) ListAdmin(ctx context.Context, params ListParams) (*domain.Page[domain.News], error) {
	items, pagination, err := s.repo.List(ctx, params.filter(false, ""))
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.News]{Data: items, Pagination: pagination}, nil
}

func (s *newsService) Get(ctx context.Context, id string, loc i18n.Locale) (*domain.NewsResponse, error) {
	news, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := news.Localize(loc, true)
	return &resp, nil
}

func (s *newsService) GetAdmin(ctx context.Context, id string) (*domain.News, error) {
	news, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgNewsNotFound)
	}
	return news, nil
}

func (s *newsService) Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateNewsRequest) (*domain.News, error) {
	news, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ZhContent = sanitizeHTMLPtr(req.ZhContent)
	req.EnContent = sanitizeHTMLPtr(req.EnContent)
	fields := req.Apply(news)
	_, categoryChanged := fields["category_id"]
	if err := s.validate(ctx, news, categoryChanged); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}

	audit(actor, "news", id).Int("fields", len(fields)).Msg("news updated")
	return s.GetAdmin(ctx, id)
}

func (s *newsService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgNewsNotFound)
	}
	audit(actor, "news", id).Msg("news deleted")
	return nil
}

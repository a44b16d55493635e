package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
)

const msgFieldsRequired = "缺少必填字段"

// CategoryLabels are the per-table names used in messages and logs
type CategoryLabels struct {
	Entity   string
	NotFound string
	// Referenced formats the delete guard count, e.g. "篇新聞".
	Referenced string
}

var (
	NewsCategoryLabels    = CategoryLabels{Entity: "news_category", NotFound: "新聞分類不存在", Referenced: "篇新聞"}
	BlogCategoryLabels    = CategoryLabels{Entity: "blog_category", NotFound: "部落格分類不存在", Referenced: "篇部落格"}
	CaseCategoryLabels    = CategoryLabels{Entity: "case_category", NotFound: "案例分類不存在", Referenced: "個案例"}
	ServiceCategoryLabels = CategoryLabels{Entity: "service_category", NotFound: "服務分類不存在", Referenced: "項產品服務"}
)

// categoryModel is satisfied by pointers to the category tables
type categoryModel[T any] interface {
	*T
	Names() (string, string)
	SetNames(zh, en string)
	Localize(loc i18n.Locale) domain.CategoryRef
	GetID() string
}

// CategoryService defines the business logic shared by the category tables
type CategoryService[T any] interface {
	Create(ctx context.Context, actor domain.Actor, req *domain.CategoryRequest) (*T, error)
	List(ctx context.Context, loc i18n.Locale) ([]domain.CategoryRef, error)
	ListAdmin(ctx context.Context, params ListParams) (*domain.Page[T], error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*domain.CategoryRef, error)
	GetAdmin(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *domain.CategoryRequest) (*T, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type categoryService[T any, P categoryModel[T]] struct {
	repo   repository.CategoryRepository[T]
	labels CategoryLabels
}

// NewCategoryService creates a CategoryService over one category table
func NewCategoryService[T any, P categoryModel[T]](repo repository.CategoryRepository[T], labels CategoryLabels) CategoryService[T] {
	return &categoryService[T, P]{repo: repo, labels: labels}
}

func (s *categoryService[T, P]) Create(ctx context.Context, actor domain.Actor, req *domain.CategoryRequest) (*T, error) {
	zh, en := strings.TrimSpace(domain.Str(req.ZhName)), strings.TrimSpace(domain.Str(req.EnName))
	if zh == "" || en == "" {
		return nil, common.BadRequest(msgFieldsRequired)
	}

	category := new(T)
	P(category).SetNames(zh, en)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.labels.Entity, err)
	}

	id := P(category).GetID()
	audit(actor, s.labels.Entity, id).Msg("category created")
	return s.GetAdmin(ctx, id)
}

func (s *categoryService[T, P]) List(ctx context.Context, loc i18n.Locale) ([]domain.CategoryRef, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(items, func(c *T) domain.CategoryRef {
		return P(c).Localize(loc)
	}), nil
}

func (s *categoryService[T, P]) ListAdmin(ctx context.Context, params ListParams) (*domain.Page[T], error) {
	items, pagination, err := s.repo.List(ctx, repository.ListFilter{
		Page:  params.Page,
		Limit: params.Limit,
		Query: params.Query,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Page[T]{Data: items, Pagination: pagination}, nil
}

func (s *categoryService[T, P]) Get(ctx context.Context, id string, loc i18n.Locale) (*domain.CategoryRef, error) {
	category, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	ref := P(category).Localize(loc)
	return &ref, nil
}

func (s *categoryService[T, P]) GetAdmin(ctx context.Context, id string) (*T, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, s.labels.NotFound)
	}
	return category, nil
}

func (s *categoryService[T, P]) Update(ctx context.Context, actor domain.Actor, id string, req *domain.CategoryRequest) (*T, error) {
	category, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	zh, en := P(category).Names()
	if req.ZhName != nil {
		zh = strings.TrimSpace(*req.ZhName)
	}
	if req.EnName != nil {
		en = strings.TrimSpace(*req.EnName)
	}
	if zh == "" || en == "" {
		return nil, common.BadRequest(msgFieldsRequired)
	}

	fields := map[string]interface{}{"zh_name": zh, "en_name": en}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.labels.Entity, err)
	}

	audit(actor, s.labels.Entity, id).Msg("category updated")
	return s.GetAdmin(ctx, id)
}

func (s *categoryService[T, P]) Delete(ctx context.Context, actor domain.Actor, id string) error {
	err := s.repo.DeleteGuarded(ctx, id)
	var referenced *repository.ReferencedError
	switch {
	case errors.As(err, &referenced):
		return common.BadRequestf("無法刪除：此分類下還有 %d %s", referenced.Count, s.labels.Referenced)
	case err != nil:
		return notFoundAs(err, s.labels.NotFound)
	}

	audit(actor, s.labels.Entity, id).Msg("category deleted")
	return nil
}

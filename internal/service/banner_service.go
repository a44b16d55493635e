package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
)

const (
	msgBannerNotFound    = "Banner 不存在"
	msgBannerMissingIDs  = "以下 Banner ID 不存在: "
	defaultBannerSeconds = 3
)

// BannerService defines the business logic for banners
type BannerService interface {
	Create(ctx context.Context, actor domain.Actor, req *domain.CreateBannerRequest) (*domain.Banner, error)
	List(ctx context.Context, loc i18n.Locale) ([]domain.BannerResponse, error)
	ListAdmin(ctx context.Context, language string) ([]domain.Banner, error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*domain.BannerResponse, error)
	GetAdmin(ctx context.Context, id string) (*domain.Banner, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateBannerRequest) (*domain.Banner, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Reorder(ctx context.Context, actor domain.Actor, items []domain.SortItem) ([]domain.Banner, error)
}

type bannerService struct {
	repo repository.SortableRepository[domain.Banner]
}

// NewBannerService creates a new BannerService
func NewBannerService(repo repository.SortableRepository[domain.Banner]) BannerService {
	return &bannerService{repo: repo}
}

// validateBanner checks the rules every persisted banner must satisfy:
// at least one language shown, and each shown language carries the
// media its type needs (image for IMAGE, url for VIDEO).
func validateBanner(b *domain.Banner) error {
	if err := requireShowFlag(b.Visibility); err != nil {
		return err
	}
	if b.ShowInZh {
		if err := requireBannerMedia(b.Type, b.ZhImage, b.ZhURL, "中文版"); err != nil {
			return err
		}
	}
	if b.ShowInEn {
		if err := requireBannerMedia(b.Type, b.EnImage, b.EnURL, "英文版"); err != nil {
			return err
		}
	}
	return nil
}

func requireBannerMedia(t domain.BannerType, image, url *string, label string) error {
	switch t {
	case domain.BannerTypeImage:
		if domain.Str(image) == "" {
			return common.BadRequest(label + " Banner 圖片不能為空")
		}
	case domain.BannerTypeVideo:
		if domain.Str(url) == "" {
			return common.BadRequest(label + " Banner 影片連結不能為空")
		}
	default:
		return common.BadRequest("無效的 Banner 類型")
	}
	return nil
}

func (s *bannerService) Create(ctx context.Context, actor domain.Actor, req *domain.CreateBannerRequest) (*domain.Banner, error) {
	banner := &domain.Banner{
		Visibility: domain.NewVisibility(req.ShowInZh, req.ShowInEn),
		ZhImage:    req.ZhImage,
		ZhURL:      req.ZhURL,
		ZhLink:     req.ZhLink,
		EnImage:    req.EnImage,
		EnURL:      req.EnURL,
		EnLink:     req.EnLink,
		Duration:   defaultBannerSeconds,
		Type:       req.Type,
	}
	if req.Duration != nil {
		banner.Duration = *req.Duration
	}
	if err := validateBanner(banner); err != nil {
		return nil, err
	}

	next, err := s.repo.NextSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("next banner sort order: %w", err)
	}
	banner.SortOrder = next

	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	audit(actor, "banner", banner.ID).Int("sort_order", banner.SortOrder).Msg("banner created")
	return banner, nil
}

// List returns banners shown in loc, in display order
func (s *bannerService) List(ctx context.Context, loc i18n.Locale) ([]domain.BannerResponse, error) {
	banners, err := s.repo.ListAll(ctx, repository.ListFilter{Locale: loc})
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(banners, func(b *domain.Banner) domain.BannerResponse {
		return b.Localize(loc)
	}), nil
}

func (s *bannerService) ListAdmin(ctx context.Context, language string) ([]domain.Banner, error) {
	return s.repo.ListAll(ctx, repository.ListFilter{Locale: i18n.ResolveOptional(language)})
}

func (s *bannerService) Get(ctx context.Context, id string, loc i18n.Locale) (*domain.BannerResponse, error) {
	banner, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := banner.Localize(loc)
	return &resp, nil
}

func (s *bannerService) GetAdmin(ctx context.Context, id string) (*domain.Banner, error) {
	banner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgBannerNotFound)
	}
	return banner, nil
}

// Update merges the patch with the stored banner and re-validates the
// result before writing.
func (s *bannerService) Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateBannerRequest) (*domain.Banner, error) {
	banner, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.Apply(banner)
	if err := validateBanner(banner); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}

	audit(actor, "banner", id).Int("fields", len(fields)).Msg("banner updated")
	return s.GetAdmin(ctx, id)
}

func (s *bannerService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgBannerNotFound)
	}
	audit(actor, "banner", id).Msg("banner deleted")
	return nil
}

// Reorder applies all positions atomically and returns the admin list
func (s *bannerService) Reorder(ctx context.Context, actor domain.Actor, items []domain.SortItem) ([]domain.Banner, error) {
	if err := s.repo.Reorder(ctx, items); err != nil {
		var missing *repository.MissingIDsError
		if errors.As(err, &missing) {
			return nil, common.NotFound(missingIDsMessage(msgBannerMissingIDs, missing))
		}
		return nil, fmt.Errorf("reorder banners: %w", err)
	}

	audit(actor, "banner", "").Int("count", len(items)).Msg("banners reordered")
	return s.repo.ListAll(ctx, repository.ListFilter{})
}

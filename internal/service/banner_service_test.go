package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBannerCreate_DefaultsAndSortOrder(t *testing.T) {
	repo := new(mockContentRepo[domain.Banner])
	svc := NewBannerService(repo)
	ctx := context.Background()

	repo.On("NextSortOrder", ctx).Return(4, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Banner")).Return(nil)

	banner, err := svc.Create(ctx, testActor, &domain.CreateBannerRequest{
		ZhImage: ptr("zh.png"),
		EnImage: ptr("en.png"),
		Type:    domain.BannerTypeImage,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, banner.SortOrder)
	assert.Equal(t, 3, banner.Duration)
	assert.True(t, banner.ShowInZh)
	assert.True(t, banner.ShowInEn)
	repo.AssertExpectations(t)
}

func TestBannerCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.CreateBannerRequest
		message string
	}{
		{
			name:    "no language shown",
			req:     domain.CreateBannerRequest{ShowInZh: ptr(false), ShowInEn: ptr(false), Type: domain.BannerTypeImage},
			message: msgShowFlagRequired,
		},
		{
			name:    "zh image missing",
			req:     domain.CreateBannerRequest{EnImage: ptr("en.png"), Type: domain.BannerTypeImage},
			message: "中文版 Banner 圖片不能為空",
		},
		{
			name:    "en video url missing",
			req:     domain.CreateBannerRequest{ShowInZh: ptr(false), Type: domain.BannerTypeVideo},
			message: "英文版 Banner 影片連結不能為空",
		},
		{
			name:    "hidden language is not checked",
			req:     domain.CreateBannerRequest{ShowInEn: ptr(false), ZhURL: ptr("https://v"), Type: domain.BannerTypeVideo},
			message: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockContentRepo[domain.Banner])
			repo.On("NextSortOrder", mock.Anything).Return(1, nil).Maybe()
			repo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

			req := tt.req
			_, err := NewBannerService(repo).Create(context.Background(), testActor, &req)

			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			appErr := appError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, tt.message, appErr.Message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestBannerUpdate_RevalidatesMergedRecord(t *testing.T) {
	repo := new(mockContentRepo[domain.Banner])
	svc := NewBannerService(repo)
	ctx := context.Background()

	stored := &domain.Banner{
		Model:      domain.Model{ID: "b1"},
		Visibility: domain.Visibility{ShowInZh: true, ShowInEn: false},
		ZhImage:    ptr("zh.png"),
		Type:       domain.BannerTypeImage,
	}
	repo.On("FindByID", ctx, "b1").Return(stored, nil)

	// Showing English without an English image breaks the merged record.
	_, err := svc.Update(ctx, testActor, "b1", &domain.UpdateBannerRequest{ShowInEn: ptr(true)})

	appErr := appError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "英文版 Banner 圖片不能為空", appErr.Message)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerUpdate_WritesOnlyChangedColumns(t *testing.T) {
	repo := new(mockContentRepo[domain.Banner])
	svc := NewBannerService(repo)
	ctx := context.Background()

	stored := &domain.Banner{
		Model:      domain.Model{ID: "b1"},
		Visibility: domain.Visibility{ShowInZh: true, ShowInEn: true},
		ZhImage:    ptr("zh.png"),
		EnImage:    ptr("en.png"),
		Type:       domain.BannerTypeImage,
		Duration:   3,
	}
	repo.On("FindByID", ctx, "b1").Return(stored, nil)
	repo.On("Update", ctx, "b1", map[string]interface{}{"duration": 8}).Return(nil)

	_, err := svc.Update(ctx, testActor, "b1", &domain.UpdateBannerRequest{Duration: ptr(8)})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBannerGet_NotFound(t *testing.T) {
	repo := new(mockContentRepo[domain.Banner])
	repo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := NewBannerService(repo).GetAdmin(context.Background(), "missing")

	appErr := appError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Banner 不存在", appErr.Message)
}

func TestBannerReorder_MissingIDs(t *testing.T) {
	repo := new(mockContentRepo[domain.Banner])
	items := []domain.SortItem{{ID: "a", SortOrder: 1}, {ID: "b", SortOrder: 2}}
	repo.On("Reorder", mock.Anything, items).Return(&repository.MissingIDsError{IDs: []string{"a", "b"}})

	_, err := NewBannerService(repo).Reorder(context.Background(), testActor, items)

	appErr := appError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "以下 Banner ID 不存在: a, b", appErr.Message)
	repo.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

func TestBannerReorder_ReturnsAdminList(t *testing.T) {
	repo := new(mockContentRepo[domain.Banner])
	items := []domain.SortItem{{ID: "a", SortOrder: 2}}
	sorted := []domain.Banner{{Model: domain.Model{ID: "a"}, SortOrder: 2}}
	repo.On("Reorder", mock.Anything, items).Return(nil)
	repo.On("ListAll", mock.Anything, repository.ListFilter{}).Return(sorted, nil)

	got, err := NewBannerService(repo).Reorder(context.Background(), testActor, items)

	require.NoError(t, err)
	assert.Equal(t, sorted, got)
}

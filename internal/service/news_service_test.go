package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNewsService() (NewsService, *mockContentRepo[domain.News], *mockCategoryRepo[domain.NewsCategory]) {
	repo := new(mockContentRepo[domain.News])
	categories := new(mockCategoryRepo[domain.NewsCategory])
	return NewNewsService(repo, categories), repo, categories
}

func TestNewsCreate_RejectsUnknownCategory(t *testing.T) {
	svc, repo, categories := newNewsService()
	categories.On("Exists", mock.Anything, "gone").Return(false, nil)

	_, err := svc.Create(context.Background(), testActor, &domain.CreateNewsRequest{
		ZhTitle:    "標題",
		Cover:      "cover.png",
		CategoryID: "gone",
	})

	appErr := appError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "指定的新聞分類不存在", appErr.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewsCreate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.CreateNewsRequest
		message string
	}{
		{"no language", domain.CreateNewsRequest{ShowInZh: ptr(false), ShowInEn: ptr(false), Cover: "c", CategoryID: "c1"}, msgShowFlagRequired},
		{"no cover", domain.CreateNewsRequest{CategoryID: "c1"}, "封面圖片不能為空"},
		{"no category", domain.CreateNewsRequest{Cover: "c"}, "分類不能為空"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, categories := newNewsService()
			categories.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Maybe()

			req := tt.req
			_, err := svc.Create(context.Background(), testActor, &req)

			appErr := appError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestNewsCreate_SanitizesContentAndDefaultsToDraft(t *testing.T) {
	svc, repo, categories := newNewsService()
	ctx := context.Background()
	categories.On("Exists", ctx, "c1").Return(true, nil)

	var saved *domain.News
	repo.On("Create", ctx, mock.AnythingOfType("*domain.News")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.News)
		saved.ID = "n1"
	}).Return(nil)
	repo.On("FindByID", ctx, "n1").Return(&domain.News{Model: domain.Model{ID: "n1"}}, nil)

	_, err := svc.Create(ctx, testActor, &domain.CreateNewsRequest{
		Cover:      "c.png",
		CategoryID: "c1",
		ZhContent:  `<p onclick="x()">你好</p><script>alert(1)</script>`,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, domain.StatusDraft, saved.Status)
	assert.Equal(t, "<p>你好</p>", saved.ZhContent)
}

func TestNewsUpdate_ChecksCategoryOnlyWhenChanged(t *testing.T) {
	svc, repo, categories := newNewsService()
	ctx := context.Background()
	stored := &domain.News{
		Model:      domain.Model{ID: "n1"},
		Visibility: domain.Visibility{ShowInZh: true, ShowInEn: true},
		Cover:      "c.png",
		CategoryID: "c1",
	}
	repo.On("FindByID", ctx, "n1").Return(stored, nil)
	repo.On("Update", ctx, "n1", map[string]interface{}{"zh_title": "新標題"}).Return(nil)

	_, err := svc.Update(ctx, testActor, "n1", &domain.UpdateNewsRequest{ZhTitle: ptr("新標題")})

	require.NoError(t, err)
	categories.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestNewsList_PublicFilter(t *testing.T) {
	svc, repo, _ := newNewsService()
	ctx := context.Background()
	category := newsCategory("c1", "公告", "Announcements")
	items := []domain.News{{
		Model:    domain.Model{ID: "n1"},
		ZhTitle:  "標題",
		EnTitle:  "Title",
		Category: &category,
	}}
	want := repository.ListFilter{Page: 2, Limit: 10, Query: "cloud", Public: true, Locale: i18n.LocaleEn}
	repo.On("List", ctx, want).Return(items, domain.Pagination{Page: 2, Limit: 10, Total: 11}, nil)

	page, err := svc.List(ctx, i18n.LocaleEn, ListParams{Page: 2, Limit: 10, Query: "cloud", Status: domain.StatusActive})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Title", page.Data[0].Title)
	assert.Equal(t, "Announcements", page.Data[0].Category.Name)
	assert.Nil(t, page.Data[0].Content)
	assert.Equal(t, int64(11), page.Pagination.Total)
}

func TestNewsListAdmin_LanguageAndStatus(t *testing.T) {
	svc, repo, _ := newNewsService()
	ctx := context.Background()
	want := repository.ListFilter{Status: domain.StatusActive, Locale: i18n.LocaleZh}
	repo.On("List", ctx, want).Return([]domain.News{}, domain.Pagination{}, nil)

	_, err := svc.ListAdmin(ctx, ListParams{Status: domain.StatusActive, Language: "zh-TW"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

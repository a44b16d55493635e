package service

import (
	"context"
	"testing"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockSingletonRepo[T any] struct {
	mock.Mock
}

func (m *mockSingletonRepo[T]) First(ctx context.Context) (*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockSingletonRepo[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockSingletonRepo[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func TestAboutGet_Localized(t *testing.T) {
	repo := new(mockSingletonRepo[domain.About])
	repo.On("First", mock.Anything).Return(&domain.About{
		Model:    domain.Model{ID: "p1"},
		RichText: domain.RichText{ZhContent: "<p>關於</p>", EnContent: "<p>About</p>"},
	}, nil)

	page, err := NewAboutService(repo).Get(context.Background(), i18n.LocaleEn)

	require.NoError(t, err)
	assert.Equal(t, domain.PageResponse{ID: "p1", Content: "<p>About</p>"}, *page)
}

func TestSingleton_NotFoundMessages(t *testing.T) {
	about := new(mockSingletonRepo[domain.About])
	about.On("First", mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	privacy := new(mockSingletonRepo[domain.PrivacyPolicy])
	privacy.On("First", mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	info := new(mockSingletonRepo[domain.CompanyInfo])
	info.On("First", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewAboutService(about).GetAdmin(context.Background())
	assert.Equal(t, "關於我們資訊不存在", appError(err).Message)

	_, err = NewPrivacyPolicyService(privacy).Get(context.Background(), i18n.LocaleZh)
	assert.Equal(t, "隱私權政策資訊不存在", appError(err).Message)

	_, err = NewCompanyInfoService(info).Update(context.Background(), testActor, &domain.UpdateCompanyInfoRequest{ZhPhone: ptr("02")})
	assert.Equal(t, "公司資訊不存在", appError(err).Message)
	info.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPrivacyPolicyUpdate_SanitizesContent(t *testing.T) {
	repo := new(mockSingletonRepo[domain.PrivacyPolicy])
	ctx := context.Background()
	repo.On("First", ctx).Return(&domain.PrivacyPolicy{Model: domain.Model{ID: "p1"}}, nil)
	repo.On("Update", ctx, "p1", map[string]interface{}{"en_content": `<a href="https://example.com" rel="nofollow">x</a>`}).Return(nil)

	_, err := NewPrivacyPolicyService(repo).Update(ctx, testActor, &domain.UpdatePageRequest{
		EnContent: ptr(`<a href="https://example.com" onmouseover="steal()">x</a>`),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

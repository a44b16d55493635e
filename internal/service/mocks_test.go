package service

import (
	"context"
	"errors"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// --- Mock ContentRepository / SortableRepository ---

type mockContentRepo[T any] struct {
	mock.Mock
}

func (m *mockContentRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockContentRepo[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockContentRepo[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockContentRepo[T]) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockContentRepo[T]) List(ctx context.Context, f repository.ListFilter) ([]T, domain.Pagination, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]T)
	return items, args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *mockContentRepo[T]) ListAll(ctx context.Context, f repository.ListFilter) ([]T, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockContentRepo[T]) NextSortOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockContentRepo[T]) Reorder(ctx context.Context, items []domain.SortItem) error {
	return m.Called(ctx, items).Error(0)
}

// --- Mock CategoryRepository ---

type mockCategoryRepo[T any] struct {
	mock.Mock
}

func (m *mockCategoryRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockCategoryRepo[T]) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockCategoryRepo[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockCategoryRepo[T]) List(ctx context.Context, f repository.ListFilter) ([]T, domain.Pagination, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]T)
	return items, args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *mockCategoryRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockCategoryRepo[T]) DeleteGuarded(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock AdminRepository ---

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) FindByAccount(ctx context.Context, account string) (*domain.Admin, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) AccountTaken(ctx context.Context, account, exceptID string) (bool, error) {
	args := m.Called(ctx, account, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockAdminRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

// --- Mock Notifier ---

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	return m.Called(ctx, to, subject, htmlBody).Error(0)
}

// --- helpers ---

var testActor = domain.Actor{AdminID: "admin-1", Account: "admin"}

func ptr[T any](v T) *T { return &v }

// appError unwraps err to the AppError it carries, nil otherwise
func appError(err error) *common.AppError {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

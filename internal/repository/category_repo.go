package repository

import (
	"context"
	"errors"

	"github.com/cloudpower/site-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository is the data access of one category table
type CategoryRepository[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	List(ctx context.Context, f ListFilter) ([]T, domain.Pagination, error)
	ListAll(ctx context.Context) ([]T, error)
	// DeleteGuarded deletes the category unless content still references it.
	DeleteGuarded(ctx context.Context, id string) error
}

// categoryRepository reuses the generic engine and adds the reference guard
type categoryRepository[T any] struct {
	*gormRepository[T]
	// content is a model of the table holding category_id references
	content interface{}
}

// NewCategoryRepository creates a CategoryRepository; content is a
// pointer to the model whose category_id references this table.
func NewCategoryRepository[T any](db *gorm.DB, spec EntitySpec, content interface{}) CategoryRepository[T] {
	return &categoryRepository[T]{
		gormRepository: &gormRepository[T]{db: db, spec: spec},
		content:        content,
	}
}

// Exists ignores soft-deleted rows
func (r *categoryRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	return FindAll[T](ctx, r.db, r.spec, ListFilter{})
}

// DeleteGuarded locks the category row, counts referencing content and
// deletes in the same transaction. Returns gorm.ErrRecordNotFound or
// *ReferencedError. Dialects without row locks (SQLite) skip the lock.
func (r *categoryRepository[T]) DeleteGuarded(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category T
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&category).Error
		if err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(r.content).Where("category_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return &ReferencedError{Count: refs}
		}

		result := tx.Where("id = ?", id).Delete(new(T))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IsNotFound reports whether err means the row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

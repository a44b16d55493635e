package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SingletonRepository is the data access of a one-row table
// (about, privacy policy, company info)
type SingletonRepository[T any] interface {
	// First returns the oldest row, gorm.ErrRecordNotFound when empty.
	First(ctx context.Context) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type singletonRepository[T any] struct {
	db *gorm.DB
}

// NewSingletonRepository creates a SingletonRepository
func NewSingletonRepository[T any](db *gorm.DB) SingletonRepository[T] {
	return &singletonRepository[T]{db: db}
}

func (r *singletonRepository[T]) First(ctx context.Context) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *singletonRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *singletonRepository[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	return r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates).Error
}

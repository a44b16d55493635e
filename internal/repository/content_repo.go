package repository

import (
	"context"
	"time"

	"github.com/cloudpower/site-backend/internal/domain"
	"gorm.io/gorm"
)

// ContentRepository is the data access of one localized content table
type ContentRepository[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]T, domain.Pagination, error)
	ListAll(ctx context.Context, f ListFilter) ([]T, error)
}

// SortableRepository adds manual display ordering
type SortableRepository[T any] interface {
	ContentRepository[T]
	NextSortOrder(ctx context.Context) (int, error)
	Reorder(ctx context.Context, items []domain.SortItem) error
}

// gormRepository implements the repositories above for any model T
type gormRepository[T any] struct {
	db   *gorm.DB
	spec EntitySpec
}

// NewContentRepository creates a ContentRepository driven by spec
func NewContentRepository[T any](db *gorm.DB, spec EntitySpec) ContentRepository[T] {
	return &gormRepository[T]{db: db, spec: spec}
}

// NewSortableRepository creates a SortableRepository driven by spec
func NewSortableRepository[T any](db *gorm.DB, spec EntitySpec) SortableRepository[T] {
	return &gormRepository[T]{db: db, spec: spec}
}

// FindByID returns gorm.ErrRecordNotFound when the row does not exist
func (r *gormRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.spec.preload(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update writes only the given columns and refreshes updated_at
func (r *gormRepository[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	return r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes the row (or stamps deleted_at for soft-deleted models)
func (r *gormRepository[T]) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository[T]) List(ctx context.Context, f ListFilter) ([]T, domain.Pagination, error) {
	return Paginate[T](ctx, r.db, r.spec, f)
}

func (r *gormRepository[T]) ListAll(ctx context.Context, f ListFilter) ([]T, error) {
	return FindAll[T](ctx, r.db, r.spec, f)
}

// NextSortOrder returns max(sort_order) + 1, or 1 for an empty table
func (r *gormRepository[T]) NextSortOrder(ctx context.Context) (int, error) {
	var maxOrder int
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

// Reorder rewrites sort_order for every item in one transaction.
// All ids are checked first; if any is missing nothing is written and
// a *MissingIDsError lists them. Values are stored as given.
func (r *gormRepository[T]) Reorder(ctx context.Context, items []domain.SortItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := uniqueIDs(items)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found []string
		if err := tx.Model(new(T)).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
			return err
		}
		if missing := missingIDs(ids, found); len(missing) > 0 {
			return &MissingIDsError{IDs: missing}
		}

		now := time.Now()
		for _, item := range items {
			err := tx.Model(new(T)).
				Where("id = ?", item.ID).
				Updates(map[string]interface{}{
					"sort_order": item.SortOrder,
					"updated_at": now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func uniqueIDs(items []domain.SortItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	return ids
}

// missingIDs keeps the order of want
func missingIDs(want, found []string) []string {
	have := make(map[string]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	var missing []string
	for _, id := range want {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

package repository

import (
	"context"
	"strings"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/pkg/i18n"
	"gorm.io/gorm"
)

// EntitySpec declares how one bilingual table is filtered, searched and
// ordered. Every localized repository is driven by one of these.
type EntitySpec struct {
	// SearchColumns are OR-matched, case-insensitively, by ListFilter.Query.
	// List both language columns of every searchable pair.
	SearchColumns []string
	// ShowFlags enables the show_in_zh/show_in_en locale filter.
	ShowFlags bool
	// Status enables the status filter; public reads see Active rows only.
	Status bool
	// Category enables the category_id filter.
	Category bool
	// Order is the ORDER BY clause of every list.
	Order string
	// Preload names associations loaded with every read.
	Preload []string
	// ListOmit are columns left out of paginated lists.
	ListOmit []string
}

// ListFilter carries the caller supplied list parameters
type ListFilter struct {
	Page       int
	Limit      int
	CategoryID string
	Query      string
	Status     domain.Status
	// Locale filters on the matching show flag; empty means no filter.
	Locale i18n.Locale
	// Public forces status = Active.
	Public bool
}

// Scope builds the list predicate for f
func (s EntitySpec) Scope(f ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.Status {
			if f.Public {
				db = db.Where("status = ?", domain.StatusActive)
			} else if f.Status != "" {
				db = db.Where("status = ?", f.Status)
			}
		}
		if s.ShowFlags && f.Locale != "" {
			if f.Locale.IsZh() {
				db = db.Where("show_in_zh = ?", true)
			} else {
				db = db.Where("show_in_en = ?", true)
			}
		}
		if s.Category && f.CategoryID != "" {
			db = db.Where("category_id = ?", f.CategoryID)
		}
		if q := strings.TrimSpace(f.Query); q != "" && len(s.SearchColumns) > 0 {
			sql, args := searchCondition(s.SearchColumns, q)
			db = db.Where(sql, args...)
		}
		return db
	}
}

func (s EntitySpec) preload(db *gorm.DB) *gorm.DB {
	for _, assoc := range s.Preload {
		db = db.Preload(assoc)
	}
	return db
}

// searchEscape is the LIKE escape character; "!" has no special meaning
// in MySQL, PostgreSQL or SQLite string literals.
const searchEscape = "!"

// searchCondition ORs a case-insensitive substring match over columns
func searchCondition(columns []string, q string) (string, []interface{}) {
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, "LOWER("+col+") LIKE ? ESCAPE '"+searchEscape+"'")
		args = append(args, pattern)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(
		searchEscape, searchEscape+searchEscape,
		"%", searchEscape+"%",
		"_", searchEscape+"_",
	)
	return r.Replace(s)
}

// Paginate runs the count and page queries for f against T's table.
// The total comes from its own COUNT query over the same predicate.
func Paginate[T any](ctx context.Context, db *gorm.DB, spec EntitySpec, f ListFilter) ([]T, domain.Pagination, error) {
	page, limit := domain.NormalizePage(f.Page, f.Limit)
	offset := (page - 1) * limit
	scope := spec.Scope(f)

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(scope).Count(&total).Error; err != nil {
		return nil, domain.Pagination{}, err
	}

	items := make([]T, 0, limit)
	q := db.WithContext(ctx).Model(new(T)).Scopes(scope, spec.preload)
	if len(spec.ListOmit) > 0 {
		q = q.Omit(spec.ListOmit...)
	}
	if err := q.Order(spec.Order).Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, domain.Pagination{}, err
	}

	return items, domain.Pagination{
		Page:    page,
		Limit:   limit,
		HasNext: int64(offset+len(items)) < total,
		Total:   total,
	}, nil
}

// FindAll runs an unpaginated list for f against T's table
func FindAll[T any](ctx context.Context, db *gorm.DB, spec EntitySpec, f ListFilter) ([]T, error) {
	items := make([]T, 0)
	err := db.WithContext(ctx).Model(new(T)).
		Scopes(spec.Scope(f), spec.preload).
		Order(spec.Order).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

package domain

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

// Pagination describes one page of a list
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	HasNext bool  `json:"has_next"`
	Total   int64 `json:"total"`
}

// Page is a paginated list response
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NormalizePage applies defaults to non-positive values and caps the limit
func NormalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// MapPage projects every row of a page, keeping the pagination
func MapPage[T, R any](p Page[T], fn func(*T) R) Page[R] {
	return Page[R]{Data: MapSlice(p.Data, fn), Pagination: p.Pagination}
}

// MapSlice projects every element; the result is never nil
func MapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}

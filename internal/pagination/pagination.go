// Package pagination slices filtered results into fixed-size pages.
package pagination

// DefaultPageSize is used when a caller passes a non-positive size.
const DefaultPageSize = 10

// Page is the visible slice of a result plus its metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// TotalPages returns ceil(total/size), but never less than 1.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage keeps page within [1, TotalPages(total, size)].
func ClampPage(page, total, size int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total, size); page > last {
		return last
	}
	return page
}

// Paginate returns page of items. An out-of-range page is clamped to the
// last page (or 1 when items is empty), so a non-empty input never yields
// an empty page. Items is a sub-slice of items with its capacity capped, so
// appending to it cannot overwrite the caller's data.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	page = ClampPage(page, total, size)

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end:end],
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: TotalPages(total, size),
	}
}

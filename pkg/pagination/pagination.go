package pagination

// PageRequest represents a request for one page of data.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
// Page sizes the config does not allow fall back to the default.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if !cfg.Allows(r.PageSize) {
		r.PageSize = cfg.DefaultPageSize
	}
}

// Offset calculates the number of records to skip based on page and page size.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// HasPrev reports whether a previous page exists.
func (p PageResult[T]) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists.
func (p PageResult[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// NewPageResult creates a PageResult with calculated total pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	}
}

// TotalPages returns the page count for total items, never less than one.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}
	return totalPages
}

// Slice pages through an in-memory slice. The request is normalized first,
// and a page past the end clamps to the last page.
func Slice[T any](items []T, req PageRequest, cfg Config) PageResult[T] {
	req.Normalize(cfg)

	total := len(items)
	if last := TotalPages(total, req.PageSize); req.Page > last {
		req.Page = last
	}

	start := min(req.Offset(), total)
	end := min(start+req.PageSize, total)

	return NewPageResult(items[start:end], total, req.Page, req.PageSize)
}

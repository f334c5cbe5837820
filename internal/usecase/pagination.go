package usecase

// Page is one page of a listing together with the total number of matches.
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

// TotalPages returns the number of pages needed for Total items.
func (p *Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}

	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

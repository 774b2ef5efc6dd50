package collection

import "fmt"

// PageInfo describes where a page sits inside a larger server-side listing.
type PageInfo struct {
	Page      int
	Limit     int
	Total     int
	PageCount int
}

// Page is one page of a paginated listing. It behaves like an Ordered map
// of the page's items plus the listing metadata the server sent alongside.
type Page[K comparable, V any] struct {
	*Ordered[K, V]

	info PageInfo
}

// NewPage creates an empty page with the given metadata. The caller fills
// it with Set; the page itself never performs I/O.
func NewPage[K comparable, V any](info PageInfo) *Page[K, V] {
	return &Page[K, V]{
		Ordered: NewOrdered[K, V](),
		info:    info,
	}
}

// CurrentPage returns the 1-based page number.
func (p *Page[K, V]) CurrentPage() int {
	return p.info.Page
}

// Limit returns the number of items per page.
func (p *Page[K, V]) Limit() int {
	return p.info.Limit
}

// Total returns the total number of items across all pages.
func (p *Page[K, V]) Total() int {
	return p.info.Total
}

// PageCount returns the total number of pages, deriving it from the total
// and limit when the server did not provide one.
func (p *Page[K, V]) PageCount() int {
	if p.info.PageCount > 0 {
		return p.info.PageCount
	}
	if p.info.Limit <= 0 {
		return 0
	}
	return (p.info.Total + p.info.Limit - 1) / p.info.Limit
}

// HasNext reports whether there are more pages after this one.
func (p *Page[K, V]) HasNext() bool {
	return p.info.Page < p.PageCount()
}

// NextPage returns the next page number, or an error on the last page.
func (p *Page[K, V]) NextPage() (int, error) {
	if !p.HasNext() {
		return 0, fmt.Errorf("no more pages available (current: %d, total: %d)", p.info.Page, p.PageCount())
	}
	return p.info.Page + 1, nil
}

package paginator

import (
	"github.com/turmfalke/pagekit/pkg/bounds"
)

// Meta describes where a page sits inside its collection. It is derived
// once during assembly and never mutated afterwards. Item indexes are
// 1-based and inclusive; both are 0 for an empty page.
type Meta struct {
	CurrentPage    int  `json:"currentPage"`
	PageSize       int  `json:"pageSize"`
	TotalItems     int  `json:"totalItems"`
	TotalPages     int  `json:"totalPages"`
	HasPrevious    bool `json:"hasPrevious"`
	HasNext        bool `json:"hasNext"`
	FirstItemIndex int  `json:"firstItemIndex"`
	LastItemIndex  int  `json:"lastItemIndex"`
}

// Links holds navigation URLs for a page. First and Previous are only
// present past page 1; Next and Last only before the last page.
type Links struct {
	First    string `json:"first,omitempty"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
	Last     string `json:"last,omitempty"`
}

// Result is one computed page. Data preserves the source order of the
// input collection. Once returned, the result belongs to the caller; the
// cache keeps its own entry with an independent lifetime.
type Result[T any] struct {
	Data      []T    `json:"data"`
	Meta      Meta   `json:"meta"`
	FromCache bool   `json:"fromCache"`
	Links     *Links `json:"links,omitempty"`
}

// newMeta assembles page metadata for normal pagination.
func newMeta(page, pageSize, totalItems int) Meta {
	totalPages := bounds.TotalPages(totalItems, pageSize)

	meta := Meta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
	if totalItems > 0 {
		meta.FirstItemIndex = bounds.StartIndex(page, pageSize) + 1
		meta.LastItemIndex = bounds.EndIndex(page, pageSize, totalItems)
	}
	return meta
}

// newAllMeta assembles metadata for return-all mode: one page holding
// the entire collection.
func newAllMeta(totalItems int) Meta {
	meta := Meta{
		CurrentPage: 1,
		PageSize:    totalItems,
		TotalPages:  1,
		TotalItems:  totalItems,
	}
	if totalItems > 0 {
		meta.FirstItemIndex = 1
		meta.LastItemIndex = totalItems
	}
	return meta
}

package paginator

import (
	"context"
	"net/url"
	"strconv"
)

// PaginateWithLinks paginates like Paginate and attaches navigation
// links to the result. Each link is baseURL plus the passed-through
// query parameters with the target page number set. First and Previous
// appear only past page 1; Next and Last only before the last page.
// Return-all mode never carries links.
func (p *Paginator[T]) PaginateWithLinks(ctx context.Context, data []T, cfg *Config, baseURL string, query url.Values) (*Result[T], error) {
	result, err := p.Paginate(ctx, data, cfg)
	if err != nil {
		return nil, err
	}

	if cfg != nil && cfg.NoPagination {
		return result, nil
	}

	result.Links = buildLinks(result.Meta, baseURL, query)
	return result, nil
}

// buildLinks assembles the navigation URLs for a page.
func buildLinks(meta Meta, baseURL string, query url.Values) *Links {
	links := &Links{}
	if meta.CurrentPage > 1 {
		links.First = pageURL(baseURL, query, 1)
		links.Previous = pageURL(baseURL, query, meta.CurrentPage-1)
	}
	if meta.CurrentPage < meta.TotalPages {
		links.Next = pageURL(baseURL, query, meta.CurrentPage+1)
		links.Last = pageURL(baseURL, query, meta.TotalPages)
	}
	return links
}

// pageURL renders baseURL with the query string pointing at page.
func pageURL(baseURL string, query url.Values, page int) string {
	values := url.Values{}
	for key, vals := range query {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	values.Set("page", strconv.Itoa(page))
	return baseURL + "?" + values.Encode()
}

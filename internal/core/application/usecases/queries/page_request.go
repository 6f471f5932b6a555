package queries

import (
	"loadboard/internal/core/ports"
)

// withPageDefaults fills the parts of a page request the caller left out
// and validates the result.
func withPageDefaults(page ports.PageRequest, defaultSort string, allowedSort []string) (ports.PageRequest, error) {
	if page.Size == 0 {
		page.Size = ports.DefaultPageSize
	}
	if page.SortBy == "" {
		page.SortBy = defaultSort
	}
	if page.SortDir == "" {
		page.SortDir = ports.SortDesc
	}
	if err := page.Validate(allowedSort); err != nil {
		return ports.PageRequest{}, err
	}
	return page, nil
}

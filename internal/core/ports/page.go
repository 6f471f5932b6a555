package ports

import (
	"fmt"
	"slices"

	"loadboard/internal/pkg/errs"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortDirection orders List results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageRequest selects one zero-based page of a sorted result set.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir SortDirection
}

// Validate checks bounds and that SortBy is one of allowedSort.
func (p PageRequest) Validate(allowedSort []string) error {
	if p.Page < 0 {
		return errs.NewValueIsOutOfRangeError("page", p.Page, 0, "unbounded")
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("size", p.Size, 1, MaxPageSize)
	}
	if !slices.Contains(allowedSort, p.SortBy) {
		return errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("%q is not one of %v", p.SortBy, allowedSort))
	}
	if p.SortDir != SortAsc && p.SortDir != SortDesc {
		return errs.NewValueIsInvalidErrorWithCause("sortDir",
			fmt.Errorf("%q is not asc or desc", p.SortDir))
	}
	return nil
}

// Offset is the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

// NewPage wraps items fetched for req out of total matching rows.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// MapPage converts the items of a page, keeping its counters.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[U]{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

package queries

import (
	"context"
	"errors"
	"strings"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/guard"
)

var ErrListLoadsQueryIsNotConstructed = errors.New(
	"ListLoadsQuery must be created via NewListLoadsQuery constructor",
)

// ListLoadsQuery pages through loads. Empty filter fields match everything;
// filters combine with AND. Results default to the newest posting first.
//
// Example:
//
//	query, err := NewListLoadsQuery(
//	    ports.LoadFilter{ShipperID: "SHIPPER001", Status: load.Posted},
//	    ports.PageRequest{Page: 0, Size: 20},
//	)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d loads\n", len(page.Items), page.TotalItems)
type ListLoadsQuery struct {
	filter ports.LoadFilter
	page   ports.PageRequest
	guard  guard.ConstructorGuard
}

func NewListLoadsQuery(filter ports.LoadFilter, page ports.PageRequest) (ListLoadsQuery, error) {
	filter.ShipperID = strings.TrimSpace(filter.ShipperID)
	filter.TruckType = strings.TrimSpace(filter.TruckType)
	if filter.Status != load.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return ListLoadsQuery{}, err
		}
	}

	page, err := withPageDefaults(page, ports.LoadSortDatePosted, ports.LoadSortFields)
	if err != nil {
		return ListLoadsQuery{}, err
	}

	return ListLoadsQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListLoadsQueryIsNotConstructed)
}

func (q ListLoadsQuery) Filter() ports.LoadFilter {
	return q.filter
}

func (q ListLoadsQuery) Page() ports.PageRequest {
	return q.page
}

type ListLoadsQueryHandler struct {
	loads ports.LoadRepository
}

func NewListLoadsQueryHandler(loads ports.LoadRepository) ListLoadsQueryHandler {
	return ListLoadsQueryHandler{loads: loads}
}

func (h ListLoadsQueryHandler) Handle(ctx context.Context, query ListLoadsQuery) (ports.Page[LoadResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Page[LoadResponse]{}, err
	}

	page, err := h.loads.List(ctx, query.Filter(), query.Page())
	if err != nil {
		return ports.Page[LoadResponse]{}, err
	}
	return ports.MapPage(page, toLoadResponse), nil
}

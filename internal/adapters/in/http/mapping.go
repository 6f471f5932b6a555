package http

import (
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/generated/servers"

	"github.com/shopspring/decimal"
)

func toLoadDetails(body servers.LoadRequest) (load.Details, error) {
	facility, err := load.NewFacility(
		body.Facility.LoadingPoint,
		body.Facility.UnloadingPoint,
		body.Facility.LoadingDate.Time,
		body.Facility.UnloadingDate.Time,
	)
	if err != nil {
		return load.Details{}, err
	}

	return load.Details{
		ShipperID:   body.ShipperId,
		Facility:    facility,
		ProductType: body.ProductType,
		TruckType:   body.TruckType,
		NoOfTrucks:  body.NoOfTrucks,
		Weight:      decimal.NewFromFloat(body.Weight),
		Comment:     deref(body.Comment),
	}, nil
}

func toLoadModel(l queries.LoadResponse) servers.Load {
	return servers.Load{
		Id:        l.ID.Raw(),
		ShipperId: l.ShipperID,
		Facility: servers.Facility{
			LoadingPoint:   l.Facility.LoadingPoint,
			UnloadingPoint: l.Facility.UnloadingPoint,
			LoadingDate:    servers.NewTimestamp(l.Facility.LoadingDate),
			UnloadingDate:  servers.NewTimestamp(l.Facility.UnloadingDate),
		},
		ProductType: l.ProductType,
		TruckType:   l.TruckType,
		NoOfTrucks:  l.NoOfTrucks,
		Weight:      l.Weight.InexactFloat64(),
		Comment:     optional(l.Comment),
		DatePosted:  servers.NewTimestamp(l.DatePosted),
		Status:      servers.LoadStatus(l.Status.String()),
	}
}

func toBookingModel(b queries.BookingResponse) servers.Booking {
	return servers.Booking{
		Id:            b.ID.Raw(),
		LoadId:        b.LoadID.Raw(),
		TransporterId: b.TransporterID,
		ProposedRate:  b.ProposedRate.InexactFloat64(),
		Comment:       optional(b.Comment),
		Status:        servers.BookingStatus(b.Status.String()),
		RequestedAt:   servers.NewTimestamp(b.RequestedAt),
	}
}

func toPageRequest(page *servers.Page, size *servers.Size, sortBy *string, sortDir *servers.SortDir) ports.PageRequest {
	req := ports.PageRequest{
		Page:   deref(page),
		Size:   deref(size),
		SortBy: deref(sortBy),
	}
	if sortDir != nil {
		req.SortDir = ports.SortDirection(*sortDir)
	}
	return req
}

func mapSlice[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

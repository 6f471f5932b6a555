// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for the HTTP layer and never open a
// transaction.
package queries

import (
	"time"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
)

// FacilityResponse is the pickup and drop-off part of a load read model.
type FacilityResponse struct {
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
}

// LoadResponse represents a load in the read model.
type LoadResponse struct {
	ID          kernel.UUID
	ShipperID   string
	Facility    FacilityResponse
	ProductType string
	TruckType   string
	NoOfTrucks  int
	Weight      decimal.Decimal
	Comment     string
	DatePosted  time.Time
	Status      load.Status
}

// BookingResponse represents a booking in the read model.
type BookingResponse struct {
	ID            kernel.UUID
	LoadID        kernel.UUID
	TransporterID string
	ProposedRate  decimal.Decimal
	Comment       string
	Status        booking.Status
	RequestedAt   time.Time
}

func toLoadResponse(l *load.Load) LoadResponse {
	f := l.Facility()
	return LoadResponse{
		ID:        l.ID(),
		ShipperID: l.ShipperID(),
		Facility: FacilityResponse{
			LoadingPoint:   f.LoadingPoint(),
			UnloadingPoint: f.UnloadingPoint(),
			LoadingDate:    f.LoadingDate(),
			UnloadingDate:  f.UnloadingDate(),
		},
		ProductType: l.ProductType(),
		TruckType:   l.TruckType(),
		NoOfTrucks:  l.NoOfTrucks(),
		Weight:      l.Weight(),
		Comment:     l.Comment(),
		DatePosted:  l.DatePosted(),
		Status:      l.Status(),
	}
}

func toBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID(),
		LoadID:        b.LoadID(),
		TransporterID: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        b.Status(),
		RequestedAt:   b.RequestedAt(),
	}
}

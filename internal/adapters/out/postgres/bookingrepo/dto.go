// Package bookingrepo persists Booking aggregates with GORM.
package bookingrepo

import (
	"time"

	"loadboard/internal/core/domain/model/booking"
	"loadboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDTO is the row layout of the bookings table. load_id carries no
// foreign key: deleting a load leaves its bookings in place.
type BookingDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LoadID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_bookings_load_transporter,priority:1"`
	TransporterID string          `gorm:"not null;index:idx_bookings_load_transporter,priority:2"`
	ProposedRate  decimal.Decimal `gorm:"type:numeric;not null"`
	Comment       string
	Status        int       `gorm:"not null;index"`
	RequestedAt   time.Time `gorm:"type:timestamptz;not null;index"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:            b.ID().Raw(),
		LoadID:        b.LoadID().Raw(),
		TransporterID: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        int(b.Status()),
		RequestedAt:   b.RequestedAt(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromRaw(dto.LoadID)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		loadID,
		dto.TransporterID,
		dto.ProposedRate,
		dto.Comment,
		booking.Status(dto.Status),
		dto.RequestedAt,
	)
}

func toDomainList(dtos []BookingDTO) ([]*booking.Booking, error) {
	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

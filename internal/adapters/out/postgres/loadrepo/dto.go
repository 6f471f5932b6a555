// Package loadrepo persists Load aggregates with GORM.
package loadrepo

import (
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadDTO is the row layout of the loads table.
type LoadDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipperID   string          `gorm:"not null;index"`
	Facility    FacilityDTO     `gorm:"embedded;embeddedPrefix:facility_"`
	ProductType string          `gorm:"not null"`
	TruckType   string          `gorm:"not null;index"`
	NoOfTrucks  int             `gorm:"not null"`
	Weight      decimal.Decimal `gorm:"type:numeric;not null"`
	Comment     string
	DatePosted  time.Time `gorm:"type:timestamptz;not null;index"`
	Status      int       `gorm:"not null;index"`
}

func (LoadDTO) TableName() string {
	return "loads"
}

// FacilityDTO is embedded into the loads table with a facility_ prefix.
type FacilityDTO struct {
	LoadingPoint   string    `gorm:"not null"`
	UnloadingPoint string    `gorm:"not null"`
	LoadingDate    time.Time `gorm:"type:timestamptz;not null"`
	UnloadingDate  time.Time `gorm:"type:timestamptz;not null"`
}

func fromDomain(l *load.Load) LoadDTO {
	f := l.Facility()
	return LoadDTO{
		ID:        l.ID().Raw(),
		ShipperID: l.ShipperID(),
		Facility: FacilityDTO{
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
		Status:      int(l.Status()),
	}
}

func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	facility, err := load.NewFacility(
		dto.Facility.LoadingPoint,
		dto.Facility.UnloadingPoint,
		dto.Facility.LoadingDate,
		dto.Facility.UnloadingDate,
	)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(id, load.Details{
		ShipperID:   dto.ShipperID,
		Facility:    facility,
		ProductType: dto.ProductType,
		TruckType:   dto.TruckType,
		NoOfTrucks:  dto.NoOfTrucks,
		Weight:      dto.Weight,
		Comment:     dto.Comment,
	}, dto.DatePosted, load.Status(dto.Status))
}

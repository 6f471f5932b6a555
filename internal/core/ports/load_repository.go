// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and the per-load lock.
package ports

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
)

// Sort fields accepted by LoadRepository.List.
const (
	LoadSortDatePosted = "datePosted"
	LoadSortWeight     = "weight"
	LoadSortNoOfTrucks = "noOfTrucks"
	LoadSortShipperID  = "shipperId"
	LoadSortStatus     = "status"
)

// LoadSortFields lists every sort field LoadRepository.List understands.
var LoadSortFields = []string{LoadSortDatePosted, LoadSortWeight, LoadSortNoOfTrucks, LoadSortShipperID, LoadSortStatus}

// LoadFilter narrows LoadRepository.List. Zero-valued fields do not filter;
// set fields are combined with AND.
type LoadFilter struct {
	ShipperID string
	TruckType string
	Status    load.Status
}

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load. Returns ObjectNotFoundError
	// when the load does not exist.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load by id. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends. Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// Delete removes a load. Returns ObjectNotFoundError when absent.
	// Bookings referencing the load are left in place.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns one page of loads matching filter.
	List(ctx context.Context, filter LoadFilter, page PageRequest) (Page[*load.Load], error)
}

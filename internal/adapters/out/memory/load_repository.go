package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// LoadRepository implements ports.LoadRepository on a Store.
type LoadRepository struct {
	access stateAccess
}

func (r *LoadRepository) Add(_ context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	rec := loadToRecord(aggregate)
	return r.access.write(func(s *state) error {
		if _, ok := s.loads[rec.ID]; ok {
			return errs.NewValueIsInvalidError("load " + rec.ID.String() + " already exists")
		}
		s.loads[rec.ID] = rec
		return nil
	})
}

func (r *LoadRepository) Update(_ context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	rec := loadToRecord(aggregate)
	return r.access.write(func(s *state) error {
		if _, ok := s.loads[rec.ID]; !ok {
			return errs.NewObjectNotFoundError("load", rec.ID.String())
		}
		s.loads[rec.ID] = rec
		return nil
	})
}

func (r *LoadRepository) Get(_ context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var rec loadRecord
	err := r.access.read(func(s *state) error {
		var ok bool
		if rec, ok = s.loads[id.Raw()]; !ok {
			return errs.NewObjectNotFoundError("load", id.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recordToLoad(rec)
}

// GetForUpdate is Get: a unit of work already holds the whole store.
func (r *LoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.Get(ctx, id)
}

func (r *LoadRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.access.write(func(s *state) error {
		if _, ok := s.loads[id.Raw()]; !ok {
			return errs.NewObjectNotFoundError("load", id.String())
		}
		delete(s.loads, id.Raw())
		return nil
	})
}

func (r *LoadRepository) List(
	_ context.Context,
	filter ports.LoadFilter,
	page ports.PageRequest,
) (ports.Page[*load.Load], error) {
	if err := page.Validate(ports.LoadSortFields); err != nil {
		return ports.Page[*load.Load]{}, err
	}

	var matched []loadRecord
	_ = r.access.read(func(s *state) error {
		for _, rec := range s.loads {
			if matchesLoad(rec, filter) {
				matched = append(matched, rec)
			}
		}
		return nil
	})

	slices.SortFunc(matched, func(a, b loadRecord) int {
		c := compareLoads(a, b, page.SortBy)
		if page.SortDir == ports.SortDesc {
			c = -c
		}
		return cmp.Or(c, strings.Compare(a.ID.String(), b.ID.String()))
	})

	items := make([]*load.Load, 0, page.Size)
	for _, rec := range window(matched, page) {
		l, err := recordToLoad(rec)
		if err != nil {
			return ports.Page[*load.Load]{}, err
		}
		items = append(items, l)
	}

	return ports.NewPage(items, page, int64(len(matched))), nil
}

func matchesLoad(rec loadRecord, f ports.LoadFilter) bool {
	if f.ShipperID != "" && rec.ShipperID != f.ShipperID {
		return false
	}
	if f.TruckType != "" && rec.TruckType != f.TruckType {
		return false
	}
	if f.Status != load.Unknown && rec.Status != int(f.Status) {
		return false
	}
	return true
}

func compareLoads(a, b loadRecord, field string) int {
	switch field {
	case ports.LoadSortWeight:
		return a.Weight.Cmp(b.Weight)
	case ports.LoadSortNoOfTrucks:
		return cmp.Compare(a.NoOfTrucks, b.NoOfTrucks)
	case ports.LoadSortShipperID:
		return strings.Compare(a.ShipperID, b.ShipperID)
	case ports.LoadSortStatus:
		return cmp.Compare(a.Status, b.Status)
	default:
		return a.DatePosted.Compare(b.DatePosted)
	}
}

// window returns the rows of the requested page.
func window[T any](rows []T, page ports.PageRequest) []T {
	start := page.Offset()
	if start >= len(rows) {
		return nil
	}
	return rows[start:min(start+page.Size, len(rows))]
}

func loadToRecord(l *load.Load) loadRecord {
	f := l.Facility()
	return loadRecord{
		ID:             l.ID().Raw(),
		ShipperID:      l.ShipperID(),
		LoadingPoint:   f.LoadingPoint(),
		UnloadingPoint: f.UnloadingPoint(),
		LoadingDate:    f.LoadingDate(),
		UnloadingDate:  f.UnloadingDate(),
		ProductType:    l.ProductType(),
		TruckType:      l.TruckType(),
		NoOfTrucks:     l.NoOfTrucks(),
		Weight:         l.Weight(),
		Comment:        l.Comment(),
		DatePosted:     l.DatePosted(),
		Status:         int(l.Status()),
	}
}

func recordToLoad(rec loadRecord) (*load.Load, error) {
	id, err := kernel.UUIDFromRaw(rec.ID)
	if err != nil {
		return nil, err
	}
	facility, err := load.NewFacility(rec.LoadingPoint, rec.UnloadingPoint, rec.LoadingDate, rec.UnloadingDate)
	if err != nil {
		return nil, err
	}
	return load.RestoreLoad(id, load.Details{
		ShipperID:   rec.ShipperID,
		Facility:    facility,
		ProductType: rec.ProductType,
		TruckType:   rec.TruckType,
		NoOfTrucks:  rec.NoOfTrucks,
		Weight:      rec.Weight,
		Comment:     rec.Comment,
	}, rec.DatePosted, load.Status(rec.Status))
}

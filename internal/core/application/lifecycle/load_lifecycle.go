package lifecycle

import (
	"context"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
)

// StatusChange records one load status write.
type StatusChange struct {
	LoadID kernel.UUID
	From   load.Status
	To     load.Status
}

// Changed is false when the status was written over itself.
func (c StatusChange) Changed() bool {
	return c.From != c.To
}

// LoadLifecycle manages loads inside one unit of work.
type LoadLifecycle struct {
	loads ports.LoadRepository
	now   func() time.Time
}

func NewLoadLifecycle(loads ports.LoadRepository, now func() time.Time) LoadLifecycle {
	if now == nil {
		now = time.Now
	}
	return LoadLifecycle{loads: loads, now: now}
}

// Create stores a new load. Its status is always Posted.
func (l LoadLifecycle) Create(ctx context.Context, id kernel.UUID, details load.Details) (*load.Load, error) {
	aggregate, err := load.NewLoad(id, details, l.now())
	if err != nil {
		return nil, err
	}
	if err = l.loads.Add(ctx, aggregate); err != nil {
		return nil, err
	}
	return aggregate, nil
}

// Get returns the load or an ObjectNotFoundError.
func (l LoadLifecycle) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return l.loads.Get(ctx, id)
}

// Lock reads the load and holds its row lock until the unit of work ends.
func (l LoadLifecycle) Lock(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return l.loads.GetForUpdate(ctx, id)
}

// Update replaces the shipper-editable attributes. Status is never touched.
func (l LoadLifecycle) Update(ctx context.Context, id kernel.UUID, details load.Details) (*load.Load, error) {
	aggregate, err := l.loads.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = aggregate.Update(details); err != nil {
		return nil, err
	}
	if err = l.loads.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	return aggregate, nil
}

// SetStatus overwrites the load status without checking the transition.
// Writing the current status again skips the store.
func (l LoadLifecycle) SetStatus(ctx context.Context, id kernel.UUID, status load.Status) (StatusChange, error) {
	aggregate, err := l.loads.GetForUpdate(ctx, id)
	if err != nil {
		return StatusChange{}, err
	}

	change := StatusChange{LoadID: id, From: aggregate.Status(), To: status}
	if err = aggregate.SetStatus(status); err != nil {
		return StatusChange{}, err
	}
	if !change.Changed() {
		return change, nil
	}
	if err = l.loads.Update(ctx, aggregate); err != nil {
		return StatusChange{}, err
	}

	return change, nil
}

// Delete removes the load. Its bookings are left in place.
func (l LoadLifecycle) Delete(ctx context.Context, id kernel.UUID) error {
	if _, err := l.loads.GetForUpdate(ctx, id); err != nil {
		return err
	}
	return l.loads.Delete(ctx, id)
}

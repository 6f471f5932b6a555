package kernel

import (
	"fmt"

	"loadboard/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when a zero (nil) identifier is used where
// a real load or booking id is required.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromRaw")

// UUID identifies loads and bookings. It wraps github.com/google/uuid so the
// domain never depends on the raw type and the zero value is always invalid.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn-prefixed or hyphen-less form.
// The nil UUID parses successfully; callers that need a real id call Validate.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds an identifier from its 16-byte binary form.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFromRaw(id)
}

// UUIDFromRaw wraps an already parsed uuid.UUID, as read from a database column
// or bound from a request path. The nil UUID is rejected.
func UUIDFromRaw(id uuid.UUID) (UUID, error) {
	wrapped := UUID{id: id}
	if err := wrapped.Validate(); err != nil {
		return UUID{}, err
	}
	return wrapped, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Raw exposes the wrapped uuid.UUID for persistence and transport adapters.
func (u UUID) Raw() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate fails with ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load was not built by NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")
	// ErrShipperIDIsRequired is returned for a blank shipper identifier.
	ErrShipperIDIsRequired = errs.NewValueIsRequiredError("shipperId")
	// ErrProductTypeIsRequired is returned for a blank product type.
	ErrProductTypeIsRequired = errs.NewValueIsRequiredError("productType")
	// ErrTruckTypeIsRequired is returned for a blank truck type.
	ErrTruckTypeIsRequired = errs.NewValueIsRequiredError("truckType")
)

// Details groups the shipper-editable attributes of a load. Everything a
// shipper may send on create or update lives here; id, posting date and
// status are owned by the aggregate.
type Details struct {
	ShipperID   string
	Facility    Facility
	ProductType string
	TruckType   string
	NoOfTrucks  int
	Weight      decimal.Decimal
	Comment     string
}

// Load is the aggregate root for a posted shipment.
//
// Invariants:
//   - id is a valid UUID
//   - shipperId, productType and truckType are not blank
//   - noOfTrucks and weight are strictly positive
//   - facility is constructed (so its dates are ordered)
//   - status is one of Posted, Booked, Cancelled
type Load struct {
	id         kernel.UUID
	details    Details
	datePosted time.Time
	status     Status
	guard      guard.ConstructorGuard
}

// NewLoad creates a load in the Posted status.
//
// Example:
//
//	facility, _ := load.NewFacility("Mumbai Port", "Delhi Warehouse", pickup, dropoff)
//	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
//	    ShipperID:   "SHIPPER001",
//	    Facility:    facility,
//	    ProductType: "Electronics",
//	    TruckType:   "Container",
//	    NoOfTrucks:  2,
//	    Weight:      decimal.RequireFromString("15.5"),
//	}, time.Now())
func NewLoad(id kernel.UUID, details Details, postedAt time.Time) (*Load, error) {
	return RestoreLoad(id, details, postedAt, Posted)
}

// RestoreLoad rebuilds a load read from storage, keeping its persisted status.
func RestoreLoad(id kernel.UUID, details Details, datePosted time.Time, status Status) (*Load, error) {
	l := &Load{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setDetails(details),
		l.setDatePosted(datePosted),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	l.status = status
	return l, nil
}

// Validate ensures the load was built by one of the constructors.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID {
	return l.id
}

func (l *Load) Details() Details {
	return l.details
}

func (l *Load) ShipperID() string {
	return l.details.ShipperID
}

func (l *Load) Facility() Facility {
	return l.details.Facility
}

func (l *Load) ProductType() string {
	return l.details.ProductType
}

func (l *Load) TruckType() string {
	return l.details.TruckType
}

func (l *Load) NoOfTrucks() int {
	return l.details.NoOfTrucks
}

func (l *Load) Weight() decimal.Decimal {
	return l.details.Weight
}

func (l *Load) Comment() string {
	return l.details.Comment
}

func (l *Load) DatePosted() time.Time {
	return l.datePosted
}

func (l *Load) Status() Status {
	return l.status
}

// Update replaces the shipper-editable attributes. Status and posting date are
// left untouched. On error the load is unchanged.
func (l *Load) Update(details Details) error {
	return l.setDetails(details)
}

// SetStatus overwrites the status. Any valid status is accepted from any other,
// including Cancelled to Posted; transition policy lives in the booking lifecycle.
func (l *Load) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setDatePosted(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("datePosted")
	}
	l.datePosted = normalizeTime(t)
	return nil
}

func (l *Load) setDetails(d Details) error {
	d.ShipperID = strings.TrimSpace(d.ShipperID)
	d.ProductType = strings.TrimSpace(d.ProductType)
	d.TruckType = strings.TrimSpace(d.TruckType)

	var errList []error
	if d.ShipperID == "" {
		errList = append(errList, ErrShipperIDIsRequired)
	}
	if err := d.Facility.Validate(); err != nil {
		errList = append(errList, err)
	}
	if d.ProductType == "" {
		errList = append(errList, ErrProductTypeIsRequired)
	}
	if d.TruckType == "" {
		errList = append(errList, ErrTruckTypeIsRequired)
	}
	if d.NoOfTrucks <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"noOfTrucks is invalid", fmt.Errorf("%d is not greater than 0", d.NoOfTrucks)))
	}
	if !d.Weight.IsPositive() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid", fmt.Errorf("%s is not greater than 0", d.Weight)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	l.details = d
	return nil
}

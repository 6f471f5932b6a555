package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadboard/internal/pkg/errs"
)

// ErrFacilityIsNotConstructed is returned for a zero Facility.
var ErrFacilityIsNotConstructed = errs.NewValueIsRequiredError("facility")

// Facility describes the pickup and drop-off of a load. It is an immutable value
// object; two facilities with the same fields are equal.
type Facility struct {
	loadingPoint   string
	unloadingPoint string
	loadingDate    time.Time
	unloadingDate  time.Time

	isConstructed bool
}

// NewFacility validates and builds a Facility. Dates are stored in UTC with
// microsecond precision so they survive a database round trip unchanged.
func NewFacility(loadingPoint, unloadingPoint string, loadingDate, unloadingDate time.Time) (Facility, error) {
	loadingPoint = strings.TrimSpace(loadingPoint)
	unloadingPoint = strings.TrimSpace(unloadingPoint)

	var errList []error
	if loadingPoint == "" {
		errList = append(errList, errs.NewValueIsRequiredError("loadingPoint"))
	}
	if unloadingPoint == "" {
		errList = append(errList, errs.NewValueIsRequiredError("unloadingPoint"))
	}
	if loadingDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("loadingDate"))
	}
	if unloadingDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("unloadingDate"))
	}
	if err := errors.Join(errList...); err != nil {
		return Facility{}, err
	}

	loadingDate = normalizeTime(loadingDate)
	unloadingDate = normalizeTime(unloadingDate)
	if !unloadingDate.After(loadingDate) {
		return Facility{}, errs.NewValueIsInvalidErrorWithCause(
			"unloadingDate is invalid",
			fmt.Errorf("%s is not after loading date %s",
				unloadingDate.Format(time.RFC3339), loadingDate.Format(time.RFC3339)),
		)
	}

	return Facility{
		loadingPoint:   loadingPoint,
		unloadingPoint: unloadingPoint,
		loadingDate:    loadingDate,
		unloadingDate:  unloadingDate,
		isConstructed:  true,
	}, nil
}

func (f Facility) LoadingPoint() string {
	return f.loadingPoint
}

func (f Facility) UnloadingPoint() string {
	return f.unloadingPoint
}

func (f Facility) LoadingDate() time.Time {
	return f.loadingDate
}

func (f Facility) UnloadingDate() time.Time {
	return f.unloadingDate
}

func (f Facility) IsEqual(other Facility) bool {
	return f.loadingPoint == other.loadingPoint &&
		f.unloadingPoint == other.unloadingPoint &&
		f.loadingDate.Equal(other.loadingDate) &&
		f.unloadingDate.Equal(other.unloadingDate)
}

func (f Facility) Validate() error {
	if !f.isConstructed {
		return ErrFacilityIsNotConstructed
	}
	return nil
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Package load provides the Load aggregate: a shipment posted by a shipper that
// transporters bid on through bookings.
//
// The package includes:
//   - Load: the aggregate root holding shipment details and the current status
//   - Facility: the value object describing where and when cargo moves
//   - Status: the closed set of load states (Posted, Booked, Cancelled)
//
// Key business rules:
//   - A load is always created Posted, whatever status a caller asks for
//   - Trucks count and weight are strictly positive
//   - The unloading date is strictly after the loading date
//   - Status changes are plain overwrites; the booking lifecycle decides when
//     they happen and the aggregate does not restrict transitions
package load

// Package services provides domain services that span the load and booking
// aggregates.
//
// The package includes:
//   - BookingPolicy: the rules that tie booking changes to load status and to
//     sibling bookings on the same load
//
// Services here never touch storage. The application layer loads aggregates,
// asks the policy what must change, and persists the result atomically.
package services

// Package booking provides the Booking aggregate: a transporter's bid on a load.
//
// A booking references its load by id only and never changes that reference.
// It is created Pending and moves between Pending, Accepted and Rejected with
// no transition guard; the booking lifecycle reacts to those moves by updating
// the load and the sibling bookings.
package booking

// Package kernel holds the value objects shared by the load and booking
// aggregates. Today that is the UUID identifier; both aggregates reference
// each other only through it.
package kernel

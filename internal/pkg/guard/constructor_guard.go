// Package guard detects values that bypassed their constructor.
//
// Commands, queries and aggregates embed a ConstructorGuard set by their
// NewX function; a zero-value literal fails Validate, so handlers never act
// on input that skipped validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor.
// The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

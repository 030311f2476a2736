// Package guard provides a defensive pattern that ensures value objects
// and entities are only created through their designated constructors.
//
// Embedding a ConstructorGuard in a struct makes the zero value detectable:
// only instances built through a constructor that calls NewConstructorGuard
// pass validation. This keeps domain invariants intact when objects travel
// through persistence or deserialization boundaries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as constructed through its factory
// function. The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owner as properly
// constructed. Call it inside the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the owner was built through its constructor.
// Returns validationError (or ErrDefaultConstructorGuard when nil) for
// zero-value guards, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

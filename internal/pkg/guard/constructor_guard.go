// Package guard holds the constructor guard embedded by domain objects and
// command/query values so that zero values can be told apart from values
// built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor.
//
// Embed it in a struct, set it with NewConstructorGuard inside the constructor
// and call Validate from the struct's own Validate method:
//
//	type CreateCouponCommand struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateCouponCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateCouponCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

// Package errs provides the error taxonomy shared by the storefront service.
//
// Every error class has a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...),
// a struct carrying the details, constructors with and without a cause, and an
// Unwrap method returning the sentinel. Domain packages declare their own error
// variables with these constructors, so callers can match either the concrete
// domain error or its class:
//
//	errors.Is(err, coupon.ErrUsageLimitReached) // the specific rule
//	errors.Is(err, errs.ErrStateConflict)       // the class, mapped to HTTP 409
//
// Classes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: bad input
//   - ObjectNotFoundError: a referenced user, order, product or coupon is missing
//   - StateConflictError: illegal transition, capacity, stock, coupon limit, stale write
//   - ForbiddenError: the principal may not perform the action
//
// Anything outside these classes is treated as an upstream failure.
package errs

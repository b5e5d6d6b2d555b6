// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, notification and locking.
package ports

import (
	"storefront/internal/pkg/errs"
)

var (
	// ErrConcurrentModification is returned by Update when the stored
	// version no longer matches the aggregate's version.
	ErrConcurrentModification = errs.NewStateConflictError("aggregate", "concurrent modification")

	// ErrDuplicateIdempotencyKey is returned by OrderRepository.Add when an
	// order with the same idempotency key already exists.
	ErrDuplicateIdempotencyKey = errs.NewStateConflictError("order", "duplicate idempotency key")
)

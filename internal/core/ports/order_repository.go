package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add inserts a new order with its items and history. A repeated
	// idempotency key yields ErrDuplicateIdempotencyKey.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable state of an order guarded by its version:
	// zero matched rows yield ErrConcurrentModification. New history entries
	// are appended; existing ones are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIdempotencyKey finds the order a user created with key.
	GetByIdempotencyKey(ctx context.Context, userID kernel.UUID, key string) (*order.Order, error)

	// GetOldestUnassigned returns the oldest order waiting for a deliveryman,
	// ignoring the orders in exclude.
	GetOldestUnassigned(ctx context.Context, exclude []kernel.UUID) (*order.Order, error)
}

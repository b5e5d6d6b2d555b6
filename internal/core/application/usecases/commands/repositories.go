// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryManRepoFactory interface {
		DeliveryManRepository() ports.DeliveryManRepository
	}

	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CheckoutRepoFactory groups the repositories only checkout writes to.
	CheckoutRepoFactory interface {
		ProductRepository() ports.ProductRepository
		CartRepository() ports.CartRepository
		SellerOrderRepository() ports.SellerOrderRepository
	}

	// UoW covers every aggregate. Used by checkout, assignment, delivery
	// and return handlers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   deliveryManRepo := uow.DeliveryManRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DeliveryManRepoFactory
		CouponRepoFactory
		UserRepoFactory
		CheckoutRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// CouponUoW manages transactions for coupon-only operations.
	CouponUoW interface {
		TxManager
		CouponRepoFactory
	}

	CouponUoWFactory interface {
		Create() CouponUoW
	}

	// DeliveryManUoW manages transactions for delivery profile operations.
	DeliveryManUoW interface {
		TxManager
		DeliveryManRepoFactory
		UserRepoFactory
	}

	DeliveryManUoWFactory interface {
		Create() DeliveryManUoW
	}
)

// Clock returns the current time. Handlers take it explicitly so tests can
// pin time-dependent rules such as return windows and coupon validity.
type Clock func() time.Time

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories
// obtained after Begin share its transaction; client code manages the
// lifecycle explicitly and rolls back on every early return.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DeliveryManRepository() DeliveryManRepository
	ProductRepository() ProductRepository
	CouponRepository() CouponRepository
	UserRepository() UserRepository
	CartRepository() CartRepository
	SellerOrderRepository() SellerOrderRepository
}

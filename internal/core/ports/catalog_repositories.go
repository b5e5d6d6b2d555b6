package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"
)

// ProductRepository reads products and changes stock with conditional
// single-row updates.
type ProductRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock subtracts quantity only when enough stock remains,
	// otherwise it returns product.ErrInsufficientStock.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}

// CouponRepository persists coupons. Deleted coupons are soft deleted and
// invisible to every lookup.
type CouponRepository interface {
	Add(ctx context.Context, aggregate *coupon.Coupon) error
	Update(ctx context.Context, aggregate *coupon.Coupon) error
	Get(ctx context.Context, id kernel.UUID) (*coupon.Coupon, error)

	// GetByCode matches the normalized code; unknown codes return
	// coupon.ErrCouponNotFound.
	GetByCode(ctx context.Context, code string) (*coupon.Coupon, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// Redeem increments usedCount when the coupon is active and below its
	// limit, otherwise it returns coupon.ErrUsageLimitReached.
	Redeem(ctx context.Context, id kernel.UUID) error

	// DeactivateExpired switches off active coupons whose end date is
	// before now and reports how many changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type UserRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	Update(ctx context.Context, aggregate *user.User) error
}

// CartRepository only needs clearing: cart editing is a client concern.
type CartRepository interface {
	Clear(ctx context.Context, userID kernel.UUID) error
}

// SellerOrderRepository maintains each seller's list of orders.
type SellerOrderRepository interface {
	Append(ctx context.Context, sellerID, orderID kernel.UUID) error
}

package postgres

import (
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/couponrepo"
	"storefront/internal/adapters/out/postgres/deliverymanrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table in creation order: referenced tables first.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.CartItemDTO{},
		&catalogrepo.SellerOrderDTO{},
		&couponrepo.CouponDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&deliverymanrepo.DeliveryManDTO{},
		&deliverymanrepo.AssignedOrderDTO{},
		&deliverymanrepo.DeliveryRecordDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TruncateAll empties every table. Used by integration tests between cases.
func TruncateAll(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE
		delivery_records, delivery_man_orders, delivery_men,
		order_status_history, order_items, orders,
		coupons, seller_orders, cart_items, products, users
		CASCADE`).Error
}

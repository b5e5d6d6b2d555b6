package queries

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	var args []any
	if owner := query.UserID(); owner != nil {
		where = "WHERE user_id = ?"
		args = append(args, owner.Bytes())
	}

	return loadOrders(ctx, h.db, where, args...)
}

const orderColumns = `
	id, user_id,
	shipping_full_name, shipping_address, shipping_city,
	shipping_postal_code, shipping_country, shipping_phone,
	payment_method, items_price, coupon_code, coupon_discount,
	tax_price, shipping_price, total_price,
	is_paid, paid_at, is_delivered, delivered_at,
	delivery_status, delivery_man_id, delivery_earnings,
	return_status, created_at`

// loadOrders selects orders matching where (a full WHERE clause or empty),
// newest first, and attaches their items.
func loadOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		%s
		ORDER BY created_at DESC, id`, orderColumns, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			v             OrderView
			id, userID    uuid.UUID
			deliveryManID *uuid.UUID
			earnings      decimal.NullDecimal
		)
		err = rows.Scan(
			&id, &userID,
			&v.ShippingAddress.FullName, &v.ShippingAddress.Address, &v.ShippingAddress.City,
			&v.ShippingAddress.PostalCode, &v.ShippingAddress.Country, &v.ShippingAddress.Phone,
			&v.PaymentMethod, &v.ItemsPrice, &v.CouponCode, &v.CouponDiscount,
			&v.TaxPrice, &v.ShippingPrice, &v.TotalPrice,
			&v.IsPaid, &v.PaidAt, &v.IsDelivered, &v.DeliveredAt,
			&v.DeliveryStatus, &deliveryManID, &earnings,
			&v.ReturnStatus, &v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if v.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if v.DeliveryManID, err = kernel.UUIDPtr(deliveryManID); err != nil {
			return nil, err
		}
		if earnings.Valid {
			v.DeliveryEarnings = &earnings.Decimal
		}
		v.CreatedAt = v.CreatedAt.UTC()
		v.Items = make([]OrderItemView, 0, 1)

		index[id] = len(orders)
		orders = append(orders, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}
	if err = attachItems(ctx, db, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, product_id, name, quantity, price, size, color, seller_id, image
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, line`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                       OrderItemView
			orderID, productID, seller uuid.UUID
		)
		if err = rows.Scan(&orderID, &productID, &item.Name, &item.Quantity, &item.Price,
			&item.Size, &item.Color, &seller, &item.Image); err != nil {
			return err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		if item.SellerID, err = kernel.UUIDFromBytes(seller[:]); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	return rows.Err()
}

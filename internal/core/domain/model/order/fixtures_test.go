package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newItem(t *testing.T, price string, qty int, seller kernel.UUID) order.Item {
	t.Helper()
	item, err := order.NewItem(order.ItemParams{
		ProductID: kernel.NewUUID(),
		Name:      "Cotton tee",
		Quantity:  qty,
		Price:     decimal.RequireFromString(price),
		SellerID:  seller,
	})
	require.NoError(t, err)
	return item
}

func newAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	addr, err := order.NewShippingAddress("Ayesha Khan", "12 Mall Road", "Lahore", "54000", "PK", "+92300000000")
	require.NoError(t, err)
	return addr
}

func pricing(items, discount, tax, shipping string) order.Pricing {
	p := order.Pricing{
		ItemsPrice:     decimal.RequireFromString(items),
		CouponDiscount: decimal.RequireFromString(discount),
		TaxPrice:       decimal.RequireFromString(tax),
		ShippingPrice:  decimal.RequireFromString(shipping),
	}
	p.TotalPrice = p.ItemsPrice.Sub(p.CouponDiscount).Add(p.TaxPrice).Add(p.ShippingPrice)
	return p
}

func newOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          kernel.NewUUID(),
		Items:           []order.Item{newItem(t, "100", 2, kernel.NewUUID())},
		ShippingAddress: newAddress(t),
		PaymentMethod:   method,
		Pricing:         pricing("200", "0", "0", "0"),
		CreatedAt:       createdAt,
	})
	require.NoError(t, err)
	return o
}

// deliveredOrder walks an order through the full delivery workflow.
func deliveredOrder(t *testing.T, deliveryMan kernel.UUID, at time.Time) *order.Order {
	t.Helper()
	o := newOrder(t, order.CashOnDelivery)
	require.NoError(t, o.Assign(deliveryMan, kernel.NewUUID(), at))
	require.NoError(t, o.Advance(order.Processing, deliveryMan, at))
	require.NoError(t, o.Advance(order.OutForDelivery, deliveryMan, at))
	_, err := o.Deliver(deliveryMan, at, decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	return o
}

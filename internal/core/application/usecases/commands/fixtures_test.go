package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func principal(t *testing.T, role user.Role) user.Principal {
	t.Helper()
	p, err := user.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func newProduct(t *testing.T, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(product.Params{
		ID:       kernel.NewUUID(),
		Name:     "Linen shirt",
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		SellerID: kernel.NewUUID(),
	})
	require.NoError(t, err)
	return p
}

func lahoreAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	addr, err := order.NewShippingAddress("Ayesha Khan", "12 Mall Road", "Lahore", "54000", "PK", "+92300000000")
	require.NoError(t, err)
	return addr
}

func newOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(order.ItemParams{
		ProductID: kernel.NewUUID(),
		Name:      "Linen shirt",
		Quantity:  2,
		Price:     decimal.RequireFromString("50"),
		SellerID:  kernel.NewUUID(),
	})
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          owner,
		Items:           []order.Item{item},
		ShippingAddress: lahoreAddress(t),
		PaymentMethod:   order.CashOnDelivery,
		Pricing: order.Pricing{
			ItemsPrice:     decimal.RequireFromString("100"),
			CouponDiscount: decimal.Zero,
			TaxPrice:       decimal.Zero,
			ShippingPrice:  decimal.Zero,
			TotalPrice:     decimal.RequireFromString("100"),
		},
		CreatedAt: fixedNow.Add(-time.Hour),
	})
	require.NoError(t, err)
	return o
}

func newDeliveryMan(t *testing.T, area string) *deliveryman.DeliveryMan {
	t.Helper()
	a, err := kernel.NewArea(area)
	require.NoError(t, err)
	d, err := deliveryman.NewDeliveryMan(kernel.NewUUID(), "Bilal", "bilal@example.com", a)
	require.NoError(t, err)
	return d
}

// assignedPair returns an order already assigned to a Lahore deliveryman.
func assignedPair(t *testing.T) (*order.Order, *deliveryman.DeliveryMan) {
	t.Helper()
	o := newOrder(t, kernel.NewUUID())
	d := newDeliveryMan(t, "Lahore Cantt")
	require.NoError(t, d.TakeOrder(o.ID(), o.ShippingAddress().City(), deliveryman.StandardPolicy()))
	require.NoError(t, o.Assign(d.ID(), kernel.NewUUID(), fixedNow.Add(-time.Hour)))
	return o, d
}

// deliveredPair walks an assigned order to delivered.
func deliveredPair(t *testing.T, deliveredAt time.Time) (*order.Order, *deliveryman.DeliveryMan) {
	t.Helper()
	o, d := assignedPair(t)
	require.NoError(t, o.Advance(order.Processing, d.ID(), deliveredAt))
	require.NoError(t, o.Advance(order.OutForDelivery, d.ID(), deliveredAt))
	earned, err := o.Deliver(d.ID(), deliveredAt, decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	require.NoError(t, d.CompleteDelivery(o.ID(), earned, deliveredAt))
	return o, d
}

package pgtest

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTracker records TrackAggregate calls made by repositories.
type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// NewOrder builds a cash on delivery order of two shirts shipped to city.
func NewOrder(owner kernel.UUID, city string, createdAt time.Time) (*order.Order, error) {
	item, err := order.NewItem(order.ItemParams{
		ProductID: kernel.NewUUID(),
		Name:      "Linen shirt",
		Quantity:  2,
		Price:     decimal.RequireFromString("25.50"),
		Size:      "M",
		Color:     "white",
		SellerID:  kernel.NewUUID(),
	})
	if err != nil {
		return nil, err
	}
	addr, err := order.NewShippingAddress("Ayesha Khan", "12 Mall Road", city, "54000", "PK", "+92300000000")
	if err != nil {
		return nil, err
	}

	return order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          owner,
		Items:           []order.Item{item},
		ShippingAddress: addr,
		PaymentMethod:   order.CashOnDelivery,
		Pricing: order.Pricing{
			ItemsPrice:     decimal.RequireFromString("51.00"),
			CouponDiscount: decimal.Zero,
			TaxPrice:       decimal.Zero,
			ShippingPrice:  decimal.RequireFromString("5.00"),
			TotalPrice:     decimal.RequireFromString("56.00"),
		},
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	})
}

// Package queries contains read operations for retrieving system state.
// Query handlers read straight from the database into read models shaped
// for the HTTP responses; they never go through the aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders visible to the caller. Admins see every order,
// optionally narrowed to one customer; everybody else sees only their own.
type ListOrdersQuery struct {
	viewer user.Principal
	userID *kernel.UUID
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. The userID filter is honoured for
// admins and ignored for everybody else.
func NewListOrdersQuery(viewer user.Principal, userID *kernel.UUID) (ListOrdersQuery, error) {
	if err := viewer.UserID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	owner := &viewer.UserID
	if viewer.IsAdmin() {
		owner = userID
	}
	return ListOrdersQuery{viewer: viewer, userID: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID is the owner filter actually applied, nil for "all orders".
func (q ListOrdersQuery) UserID() *kernel.UUID { return q.userID }

// OrderView is the read model of an order.
type OrderView struct {
	ID               kernel.UUID      `json:"id"`
	UserID           kernel.UUID      `json:"userId"`
	Items            []OrderItemView  `json:"orderItems"`
	ShippingAddress  AddressView      `json:"shippingAddress"`
	PaymentMethod    string           `json:"paymentMethod"`
	ItemsPrice       decimal.Decimal  `json:"itemsPrice"`
	CouponCode       string           `json:"couponCode,omitempty"`
	CouponDiscount   decimal.Decimal  `json:"couponDiscount"`
	TaxPrice         decimal.Decimal  `json:"taxPrice"`
	ShippingPrice    decimal.Decimal  `json:"shippingPrice"`
	TotalPrice       decimal.Decimal  `json:"totalPrice"`
	IsPaid           bool             `json:"isPaid"`
	PaidAt           *time.Time       `json:"paidAt,omitempty"`
	IsDelivered      bool             `json:"isDelivered"`
	DeliveredAt      *time.Time       `json:"deliveredAt,omitempty"`
	DeliveryStatus   string           `json:"deliveryStatus"`
	DeliveryManID    *kernel.UUID     `json:"deliveryMan,omitempty"`
	DeliveryEarnings *decimal.Decimal `json:"deliveryEarnings,omitempty"`
	ReturnStatus     string           `json:"returnStatus"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type OrderItemView struct {
	ProductID kernel.UUID     `json:"product"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	SellerID  kernel.UUID     `json:"sellerId"`
	Image     string          `json:"image,omitempty"`
}

type AddressView struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

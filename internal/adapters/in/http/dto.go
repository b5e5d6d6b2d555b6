package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	OrderItems      []OrderLineRequest `json:"orderItems"`
	ShippingAddress AddressRequest     `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	CouponCode      string             `json:"couponCode,omitempty"`
	IdempotencyKey  string             `json:"idempotencyKey,omitempty"`
}

// OrderLineRequest carries no price: the server reads it from the product.
type OrderLineRequest struct {
	Product  openapi_types.UUID `json:"product"`
	Quantity int                `json:"quantity"`
	Size     string             `json:"size,omitempty"`
	Color    string             `json:"color,omitempty"`
}

type AddressRequest struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type AssignRequest struct {
	OrderID          openapi_types.UUID  `json:"orderId"`
	DeliveryManID    *openapi_types.UUID `json:"deliveryManId,omitempty"`
	DeliveryManEmail string              `json:"deliveryManEmail,omitempty"`
	NewStatus        string              `json:"newStatus,omitempty"`
}

type OnboardDeliveryManRequest struct {
	UserID openapi_types.UUID `json:"userId"`
	Area   string             `json:"area"`
}

type DeliveryStatusRequest struct {
	OrderID openapi_types.UUID `json:"orderId"`
	Status  string             `json:"status"`
}

type AvailabilityRequest struct {
	AvailableForDelivery *bool `json:"availableForDelivery"`
}

type ReturnRequest struct {
	OrderID openapi_types.UUID `json:"orderId"`
	Reason  string             `json:"reason"`
}

type ProcessReturnRequest struct {
	OrderID       openapi_types.UUID `json:"orderId"`
	Status        string             `json:"status"`
	ScheduledDate *time.Time         `json:"scheduledDate,omitempty"`
}

type CouponRequest struct {
	Code            string          `json:"code"`
	DiscountType    string          `json:"discountType"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	MinimumPurchase decimal.Decimal `json:"minimumPurchase"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	UsageLimit      *int            `json:"usageLimit,omitempty"`
	IsActive        *bool           `json:"isActive,omitempty"`
}

// params converts the body. Coupons are active unless stated otherwise.
func (r CouponRequest) params() (coupon.Params, error) {
	discountType, err := coupon.ParseDiscountType(r.DiscountType)
	if err != nil {
		return coupon.Params{}, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return coupon.Params{
		Code:            r.Code,
		DiscountType:    discountType,
		DiscountAmount:  r.DiscountAmount,
		MinimumPurchase: r.MinimumPurchase,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		UsageLimit:      r.UsageLimit,
		IsActive:        active,
	}, nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeliveryManResponse struct {
	ID             kernel.UUID     `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Area           string          `json:"area"`
	Available      bool            `json:"availableForDelivery"`
	Earnings       decimal.Decimal `json:"earnings"`
	AssignedOrders []kernel.UUID   `json:"assignedOrders"`
}

func newDeliveryManResponse(d *deliveryman.DeliveryMan) DeliveryManResponse {
	assigned := d.AssignedOrders()
	if assigned == nil {
		assigned = []kernel.UUID{}
	}
	return DeliveryManResponse{
		ID:             d.ID(),
		Name:           d.Name(),
		Email:          d.Email(),
		Area:           d.Area().String(),
		Available:      d.IsAvailable(),
		Earnings:       d.Earnings(),
		AssignedOrders: assigned,
	}
}

func newCouponView(c *coupon.Coupon) queries.CouponView {
	return queries.CouponView{
		ID:              c.ID(),
		Code:            c.Code(),
		DiscountType:    c.DiscountType().String(),
		DiscountAmount:  c.DiscountAmount(),
		MinimumPurchase: c.MinimumPurchase(),
		StartDate:       c.StartDate(),
		EndDate:         c.EndDate(),
		UsageLimit:      c.UsageLimit(),
		UsedCount:       c.UsedCount(),
		IsActive:        c.IsActive(),
	}
}

// domainID converts a wire id. The zero id is passed through so that command
// constructors report it as a missing field.
func domainID(raw openapi_types.UUID) kernel.UUID {
	id, _ := kernel.UUIDFromBytes(raw[:])
	return id
}

func domainIDPtr(raw *openapi_types.UUID) *kernel.UUID {
	if raw == nil {
		return nil
	}
	id := domainID(*raw)
	return &id
}

package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root of the storefront. It owns the checkout
// snapshot (items, address, prices), the delivery state machine and the
// return sub-workflow.
//
// Invariants:
//   - items is non-empty and immutable after checkout
//   - deliveryManID is set exactly when deliveryStatus != unassigned
//   - statusHistory only grows
//   - deliveryEarnings is set once, at delivered
type Order struct {
	id              kernel.UUID
	userID          kernel.UUID
	items           []Item
	shippingAddress ShippingAddress
	paymentMethod   PaymentMethod
	pricing         Pricing

	isPaid      bool
	paidAt      *time.Time
	isDelivered bool
	deliveredAt *time.Time

	couponID   *kernel.UUID
	couponCode string

	deliveryStatus   DeliveryStatus
	deliveryManID    *kernel.UUID
	statusHistory    []StatusChange
	deliveryEarnings *decimal.Decimal
	returnRequest    ReturnRequest

	idempotencyKey string
	version        int
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewOrderParams is the checkout snapshot for NewOrder.
type NewOrderParams struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Items           []Item
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	Pricing         Pricing
	CouponID        *kernel.UUID
	CouponCode      string
	IdempotencyKey  string
	CreatedAt       time.Time
}

// NewOrder creates an unassigned order. Card orders are captured by the
// payment gateway before checkout and start out paid; cash on delivery
// orders are paid at delivery.
func NewOrder(p NewOrderParams) (*Order, error) {
	o := &Order{
		couponCode:     strings.ToUpper(strings.TrimSpace(p.CouponCode)),
		deliveryStatus: Unassigned,
		returnRequest:  noReturn(),
		idempotencyKey: strings.TrimSpace(p.IdempotencyKey),
		createdAt:      p.CreatedAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setUser(p.UserID),
		o.setItems(p.Items),
		o.setShippingAddress(p.ShippingAddress),
		o.setPaymentMethod(p.PaymentMethod),
		o.setPricing(p.Pricing),
		o.setCoupon(p.CouponID),
	); err != nil {
		return nil, err
	}
	if o.createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	if o.paymentMethod == Card {
		paidAt := o.createdAt
		o.isPaid = true
		o.paidAt = &paidAt
	}

	o.statusHistory = []StatusChange{{
		Status:    Unassigned,
		Timestamp: o.createdAt,
		UpdatedBy: o.userID,
		Note:      "order placed",
	}}
	return o, nil
}

// RestoreParams carries the full persisted state of an order.
type RestoreParams struct {
	NewOrderParams
	IsPaid           bool
	PaidAt           *time.Time
	IsDelivered      bool
	DeliveredAt      *time.Time
	DeliveryStatus   DeliveryStatus
	DeliveryManID    *kernel.UUID
	StatusHistory    []StatusChange
	DeliveryEarnings *decimal.Decimal
	ReturnRequest    ReturnRequest
	Version          int
}

// RestoreOrder rehydrates an order from storage and re-checks the
// status/deliveryman consistency.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o, err := NewOrder(p.NewOrderParams)
	if err != nil {
		return nil, err
	}

	if err = p.DeliveryStatus.Validate(); err != nil {
		return nil, err
	}
	if p.DeliveryStatus.HasDeliveryMan() != (p.DeliveryManID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryMan",
			fmt.Errorf("status %s is inconsistent with deliveryman presence", p.DeliveryStatus))
	}

	o.isPaid = p.IsPaid
	o.paidAt = p.PaidAt
	o.isDelivered = p.IsDelivered
	o.deliveredAt = p.DeliveredAt
	o.deliveryStatus = p.DeliveryStatus
	o.deliveryManID = p.DeliveryManID
	o.statusHistory = append([]StatusChange(nil), p.StatusHistory...)
	o.deliveryEarnings = p.DeliveryEarnings
	o.returnRequest = p.ReturnRequest
	if o.returnRequest.Status == "" {
		o.returnRequest.Status = ReturnNone
	}
	o.version = p.Version
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                  { return o.id }
func (o *Order) UserID() kernel.UUID              { return o.userID }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) PaymentMethod() PaymentMethod     { return o.paymentMethod }
func (o *Order) Pricing() Pricing                 { return o.pricing }
func (o *Order) TotalPrice() decimal.Decimal      { return o.pricing.TotalPrice }
func (o *Order) IsPaid() bool                     { return o.isPaid }
func (o *Order) PaidAt() *time.Time               { return o.paidAt }
func (o *Order) IsDelivered() bool                { return o.isDelivered }
func (o *Order) DeliveredAt() *time.Time          { return o.deliveredAt }
func (o *Order) CouponID() *kernel.UUID           { return o.couponID }
func (o *Order) CouponCode() string               { return o.couponCode }
func (o *Order) DeliveryStatus() DeliveryStatus   { return o.deliveryStatus }
func (o *Order) DeliveryManID() *kernel.UUID      { return o.deliveryManID }
func (o *Order) DeliveryEarnings() *decimal.Decimal {
	return o.deliveryEarnings
}
func (o *Order) ReturnRequest() ReturnRequest { return o.returnRequest }
func (o *Order) IdempotencyKey() string       { return o.idempotencyKey }
func (o *Order) Version() int                 { return o.version }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) StatusHistory() []StatusChange {
	return append([]StatusChange(nil), o.statusHistory...)
}

// SellerIDs returns the distinct sellers of the order's items in item order.
func (o *Order) SellerIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.items))
	sellers := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.sellerID]; ok {
			continue
		}
		seen[item.sellerID] = struct{}{}
		sellers = append(sellers, item.sellerID)
	}
	return sellers
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// IsAssignedTo reports whether the order is held by the given deliveryman.
func (o *Order) IsAssignedTo(deliveryManID kernel.UUID) bool {
	return o.deliveryManID != nil && o.deliveryManID.IsEqual(deliveryManID)
}

// Assign hands an unassigned order to a deliveryman.
func (o *Order) Assign(deliveryManID kernel.UUID, by kernel.UUID, now time.Time) error {
	if err := deliveryManID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryManId", err)
	}
	if o.deliveryStatus != Unassigned {
		return fmt.Errorf("%w: order %s is %s", ErrOrderNotPending, o.id, o.deliveryStatus)
	}

	next, err := o.deliveryStatus.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	id := deliveryManID
	o.deliveryManID = &id
	o.deliveryStatus = next
	o.record(next, by, now, "assigned to deliveryman "+deliveryManID.String())
	return nil
}

// Unassign takes the order back from its deliveryman and returns that
// deliveryman's id so capacity can be released.
func (o *Order) Unassign(by kernel.UUID, now time.Time) (kernel.UUID, error) {
	if o.deliveryStatus == Delivered {
		return kernel.UUID{}, fmt.Errorf("%w: order %s", ErrAlreadyDelivered, o.id)
	}
	if o.deliveryManID == nil || o.deliveryStatus == Unassigned {
		return kernel.UUID{}, fmt.Errorf("%w: order %s", ErrNotAssigned, o.id)
	}

	next, err := o.deliveryStatus.TransitionTo(Unassigned)
	if err != nil {
		return kernel.UUID{}, err
	}

	previous := *o.deliveryManID
	o.deliveryManID = nil
	o.deliveryStatus = next
	o.record(next, by, now, "unassigned from deliveryman "+previous.String())
	return previous, nil
}

// Advance moves an assigned order forward to processing or
// out_for_delivery. Assignment, unassignment and delivery have their own
// methods and are rejected here.
func (o *Order) Advance(next DeliveryStatus, by kernel.UUID, now time.Time) error {
	if next != Processing && next != OutForDelivery {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.deliveryStatus, next)
	}

	status, err := o.deliveryStatus.TransitionTo(next)
	if err != nil {
		return err
	}

	o.deliveryStatus = status
	o.record(status, by, now, "")
	return nil
}

// Deliver settles the order: it becomes delivered, cash on delivery orders
// become paid and the deliveryman's earnings (total × payRate, in cents) are
// fixed and returned.
func (o *Order) Deliver(by kernel.UUID, now time.Time, payRate decimal.Decimal) (decimal.Decimal, error) {
	if o.isDelivered || o.deliveryStatus == Delivered {
		return decimal.Zero, fmt.Errorf("%w: order %s", ErrAlreadyDelivered, o.id)
	}
	if payRate.IsNegative() {
		return decimal.Zero, errs.NewValueIsOutOfRangeError("payRate", payRate.String(), 0, 1)
	}

	next, err := o.deliveryStatus.TransitionTo(Delivered)
	if err != nil {
		return decimal.Zero, err
	}

	at := now.UTC()
	earnings := o.pricing.TotalPrice.Mul(payRate).Round(2)

	o.deliveryStatus = next
	o.isDelivered = true
	o.deliveredAt = &at
	o.deliveryEarnings = &earnings
	if !o.isPaid {
		o.isPaid = true
		o.paidAt = &at
	}
	o.record(next, by, now, "")
	return earnings, nil
}

// RequestReturn opens a return for a delivered order within window of its
// delivery.
func (o *Order) RequestReturn(reason string, now time.Time, window time.Duration) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !o.isDelivered || o.deliveredAt == nil {
		return fmt.Errorf("%w: order %s", ErrNotDelivered, o.id)
	}
	if !o.returnRequest.Status.canTransitionTo(ReturnPending) {
		return fmt.Errorf("%w: return %s -> %s", ErrInvalidTransition, o.returnRequest.Status, ReturnPending)
	}
	if now.Sub(*o.deliveredAt) > window {
		return fmt.Errorf("%w: delivered %s", ErrReturnWindowExpired, o.deliveredAt.Format(time.RFC3339))
	}

	at := now.UTC()
	o.returnRequest = ReturnRequest{
		Status:      ReturnPending,
		RequestDate: &at,
		Reason:      reason,
	}
	return nil
}

// ProcessReturn moves the return forward. scheduledDate is the pickup date
// and is only recorded on approval.
func (o *Order) ProcessReturn(next ReturnStatus, by kernel.UUID, scheduledDate *time.Time, now time.Time) error {
	current := o.returnRequest.Status
	if !current.canTransitionTo(next) || next == ReturnPending {
		return fmt.Errorf("%w: return %s -> %s", ErrInvalidTransition, current, next)
	}

	at := now.UTC()
	processor := by
	o.returnRequest.Status = next
	o.returnRequest.ProcessedDate = &at
	o.returnRequest.ProcessedBy = &processor
	if next == ReturnApproved && scheduledDate != nil {
		pickup := scheduledDate.UTC()
		o.returnRequest.ScheduledDate = &pickup
	}
	return nil
}

func (o *Order) record(status DeliveryStatus, by kernel.UUID, now time.Time, note string) {
	o.statusHistory = append(o.statusHistory, StatusChange{
		Status:    status,
		Timestamp: now.UTC(),
		UpdatedBy: by,
		Note:      note,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setUser(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.quantity < 1 || item.productID.IsZero() {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d is not constructed", i))
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setShippingAddress(a ShippingAddress) error {
	if a.isZero() {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = a
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	parsed, err := ParsePaymentMethod(string(m))
	if err != nil {
		return err
	}
	o.paymentMethod = parsed
	return nil
}

func (o *Order) setPricing(p Pricing) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.pricing = p
	return nil
}

func (o *Order) setCoupon(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("couponId", err)
	}
	copied := *id
	o.couponID = &copied
	return nil
}

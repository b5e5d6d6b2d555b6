package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CartLine is one requested purchase. Prices are never taken from the
// client; the handler reads them from the product.
type CartLine struct {
	ProductID kernel.UUID
	Quantity  int
	Size      string
	Color     string
}

// CreateOrderCommand places an order for the authenticated caller.
//
// Example:
//
//	addr, _ := order.NewShippingAddress("Ayesha", "12 Mall Rd", "Lahore", "54000", "PK", "0300")
//	cmd, err := NewCreateOrderCommand(principal, lines, addr, order.CashOnDelivery, "SUMMER10", "key-1")
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	principal       user.Principal
	lines           []CartLine
	shippingAddress order.ShippingAddress
	paymentMethod   order.PaymentMethod
	couponCode      string
	idempotencyKey  string
	guard           guard.ConstructorGuard
}

func NewCreateOrderCommand(
	principal user.Principal,
	lines []CartLine,
	shippingAddress order.ShippingAddress,
	paymentMethod order.PaymentMethod,
	couponCode string,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	var problems []error
	if err := principal.UserID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user", err))
	}
	if len(lines) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("orderItems"))
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause("orderItems.product", err))
		}
		if line.Quantity < 1 {
			problems = append(problems, errs.NewValueIsOutOfRangeError("orderItems.quantity", line.Quantity, 1, "unbounded"))
		}
	}
	if shippingAddress.City() == "" {
		problems = append(problems, errs.NewValueIsRequiredError("shippingAddress"))
	}
	method, err := order.ParsePaymentMethod(string(paymentMethod))
	if err != nil {
		problems = append(problems, err)
	}
	if err = errors.Join(problems...); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		principal:       principal,
		lines:           append([]CartLine(nil), lines...),
		shippingAddress: shippingAddress,
		paymentMethod:   method,
		couponCode:      strings.TrimSpace(couponCode),
		idempotencyKey:  strings.TrimSpace(idempotencyKey),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() user.Principal              { return c.principal }
func (c CreateOrderCommand) Lines() []CartLine                      { return append([]CartLine(nil), c.lines...) }
func (c CreateOrderCommand) ShippingAddress() order.ShippingAddress { return c.shippingAddress }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod     { return c.paymentMethod }
func (c CreateOrderCommand) CouponCode() string                     { return c.couponCode }
func (c CreateOrderCommand) IdempotencyKey() string                 { return c.idempotencyKey }

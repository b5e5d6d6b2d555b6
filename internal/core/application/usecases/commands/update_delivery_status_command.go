package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is issued by the deliveryman holding an order
// to move it to processing, out_for_delivery or delivered.
type UpdateDeliveryStatusCommand struct {
	principal user.Principal
	orderID   kernel.UUID
	status    order.DeliveryStatus
	guard     guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	principal user.Principal,
	orderID kernel.UUID,
	status order.DeliveryStatus,
) (UpdateDeliveryStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := status.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		principal: principal,
		orderID:   orderID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) Principal() user.Principal    { return c.principal }
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID         { return c.orderID }
func (c UpdateDeliveryStatusCommand) Status() order.DeliveryStatus { return c.status }

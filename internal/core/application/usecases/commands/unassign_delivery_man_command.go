package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUnassignDeliveryManCommandIsNotConstructed = errors.New(
	"UnassignDeliveryManCommand must be created via NewUnassignDeliveryManCommand constructor",
)

// UnassignDeliveryManCommand returns an in-flight order to the unassigned pool.
type UnassignDeliveryManCommand struct {
	orderID kernel.UUID
	actor   kernel.UUID
	guard   guard.ConstructorGuard
}

func NewUnassignDeliveryManCommand(orderID, actor kernel.UUID) (UnassignDeliveryManCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return UnassignDeliveryManCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return UnassignDeliveryManCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignDeliveryManCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDeliveryManCommandIsNotConstructed)
}

func (c UnassignDeliveryManCommand) OrderID() kernel.UUID { return c.orderID }
func (c UnassignDeliveryManCommand) Actor() kernel.UUID   { return c.actor }

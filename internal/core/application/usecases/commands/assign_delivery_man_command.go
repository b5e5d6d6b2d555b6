package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAssignDeliveryManCommandIsNotConstructed = errors.New(
	"AssignDeliveryManCommand must be created via NewAssignDeliveryManCommand constructor",
)

// AssignDeliveryManCommand assigns an unassigned order to a deliveryman
// identified either by id or by email.
type AssignDeliveryManCommand struct {
	orderID          kernel.UUID
	deliveryManID    *kernel.UUID
	deliveryManEmail string
	actor            kernel.UUID
	policy           deliveryman.AssignmentPolicy
	guard            guard.ConstructorGuard
}

func NewAssignDeliveryManCommand(
	orderID kernel.UUID,
	deliveryManID *kernel.UUID,
	deliveryManEmail string,
	actor kernel.UUID,
	policy deliveryman.AssignmentPolicy,
) (AssignDeliveryManCommand, error) {
	email := strings.ToLower(strings.TrimSpace(deliveryManEmail))

	var problems []error
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if deliveryManID == nil && email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliveryManId or deliveryManEmail"))
	}
	if deliveryManID != nil {
		if err := deliveryManID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("deliveryManId", err))
		}
	}
	if err := actor.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := errors.Join(problems...); err != nil {
		return AssignDeliveryManCommand{}, err
	}

	return AssignDeliveryManCommand{
		orderID:          orderID,
		deliveryManID:    deliveryManID,
		deliveryManEmail: email,
		actor:            actor,
		policy:           policy,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryManCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryManCommandIsNotConstructed)
}

func (c AssignDeliveryManCommand) OrderID() kernel.UUID                 { return c.orderID }
func (c AssignDeliveryManCommand) DeliveryManID() *kernel.UUID          { return c.deliveryManID }
func (c AssignDeliveryManCommand) DeliveryManEmail() string             { return c.deliveryManEmail }
func (c AssignDeliveryManCommand) Actor() kernel.UUID                   { return c.actor }
func (c AssignDeliveryManCommand) Policy() deliveryman.AssignmentPolicy { return c.policy }

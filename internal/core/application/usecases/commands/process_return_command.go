package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrProcessReturnCommandIsNotConstructed = errors.New(
	"ProcessReturnCommand must be created via NewProcessReturnCommand constructor",
)

// ProcessReturnCommand approves, rejects or completes a return.
type ProcessReturnCommand struct {
	principal     user.Principal
	orderID       kernel.UUID
	status        order.ReturnStatus
	scheduledDate *time.Time
	guard         guard.ConstructorGuard
}

func NewProcessReturnCommand(
	principal user.Principal,
	orderID kernel.UUID,
	status order.ReturnStatus,
	scheduledDate *time.Time,
) (ProcessReturnCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProcessReturnCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	switch status {
	case order.ReturnApproved, order.ReturnRejected, order.ReturnCompleted:
	default:
		return ProcessReturnCommand{}, errs.NewValueIsInvalidError("status")
	}

	return ProcessReturnCommand{
		principal:     principal,
		orderID:       orderID,
		status:        status,
		scheduledDate: scheduledDate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessReturnCommand) Validate() error {
	return c.guard.Validate(ErrProcessReturnCommandIsNotConstructed)
}

func (c ProcessReturnCommand) Principal() user.Principal  { return c.principal }
func (c ProcessReturnCommand) OrderID() kernel.UUID       { return c.orderID }
func (c ProcessReturnCommand) Status() order.ReturnStatus { return c.status }
func (c ProcessReturnCommand) ScheduledDate() *time.Time  { return c.scheduledDate }

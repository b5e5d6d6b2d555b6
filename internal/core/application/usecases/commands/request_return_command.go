package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand opens a return on a delivered order owned by the caller.
type RequestReturnCommand struct {
	principal user.Principal
	orderID   kernel.UUID
	reason    string
	guard     guard.ConstructorGuard
}

func NewRequestReturnCommand(principal user.Principal, orderID kernel.UUID, reason string) (RequestReturnCommand, error) {
	reason = strings.TrimSpace(reason)

	var problems []error
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if reason == "" {
		problems = append(problems, errs.NewValueIsRequiredError("reason"))
	}
	if err := errors.Join(problems...); err != nil {
		return RequestReturnCommand{}, err
	}

	return RequestReturnCommand{
		principal: principal,
		orderID:   orderID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

func (c RequestReturnCommand) Principal() user.Principal { return c.principal }
func (c RequestReturnCommand) OrderID() kernel.UUID      { return c.orderID }
func (c RequestReturnCommand) Reason() string            { return c.reason }

package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAutoAssignCommandIsNotConstructed = errors.New(
	"AutoAssignCommand must be created via NewAutoAssignCommand constructor",
)

// AutoAssignCommand triggers assignment of the oldest unassigned order, other
// than the skipped ones, to the least loaded eligible deliveryman in its area.
type AutoAssignCommand struct {
	skip  []kernel.UUID
	guard guard.ConstructorGuard
}

func NewAutoAssignCommand(skip ...kernel.UUID) AutoAssignCommand {
	return AutoAssignCommand{
		skip:  append([]kernel.UUID(nil), skip...),
		guard: guard.NewConstructorGuard(),
	}
}

func (c AutoAssignCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignCommandIsNotConstructed)
}

// Skip lists orders already known to have nobody eligible.
func (c AutoAssignCommand) Skip() []kernel.UUID {
	return append([]kernel.UUID(nil), c.skip...)
}

// AutoAssignResult names the order the handler worked on. OrderID is set
// whenever an order was picked, including when nobody could take it.
type AutoAssignResult struct {
	OrderID       kernel.UUID
	DeliveryManID kernel.UUID
}

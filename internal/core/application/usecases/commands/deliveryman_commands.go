package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrOnboardDeliveryManCommandIsNotConstructed = errors.New(
		"OnboardDeliveryManCommand must be created via NewOnboardDeliveryManCommand constructor")
	ErrSetAvailabilityCommandIsNotConstructed = errors.New(
		"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor")
)

// OnboardDeliveryManCommand creates a delivery profile for an existing user.
type OnboardDeliveryManCommand struct {
	userID kernel.UUID
	area   kernel.Area
	guard  guard.ConstructorGuard
}

func NewOnboardDeliveryManCommand(userID kernel.UUID, area string) (OnboardDeliveryManCommand, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("userId", err))
	}
	a, err := kernel.NewArea(area)
	if err != nil {
		problems = append(problems, err)
	}
	if err = errors.Join(problems...); err != nil {
		return OnboardDeliveryManCommand{}, err
	}

	return OnboardDeliveryManCommand{userID: userID, area: a, guard: guard.NewConstructorGuard()}, nil
}

func (c OnboardDeliveryManCommand) Validate() error {
	return c.guard.Validate(ErrOnboardDeliveryManCommandIsNotConstructed)
}

func (c OnboardDeliveryManCommand) UserID() kernel.UUID { return c.userID }
func (c OnboardDeliveryManCommand) Area() kernel.Area   { return c.area }

// SetAvailabilityCommand switches the calling deliveryman on or off.
type SetAvailabilityCommand struct {
	principal user.Principal
	available bool
	guard     guard.ConstructorGuard
}

func NewSetAvailabilityCommand(principal user.Principal, available bool) SetAvailabilityCommand {
	return SetAvailabilityCommand{principal: principal, available: available, guard: guard.NewConstructorGuard()}
}

func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

func (c SetAvailabilityCommand) Principal() user.Principal { return c.principal }
func (c SetAvailabilityCommand) Available() bool           { return c.available }

package commands

import (
	"errors"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateCouponCommandIsNotConstructed = errors.New(
		"CreateCouponCommand must be created via NewCreateCouponCommand constructor")
	ErrUpdateCouponCommandIsNotConstructed = errors.New(
		"UpdateCouponCommand must be created via NewUpdateCouponCommand constructor")
	ErrDeleteCouponCommandIsNotConstructed = errors.New(
		"DeleteCouponCommand must be created via NewDeleteCouponCommand constructor")
	ErrDeactivateExpiredCouponsCommandIsNotConstructed = errors.New(
		"DeactivateExpiredCouponsCommand must be created via NewDeactivateExpiredCouponsCommand constructor")
)

// CreateCouponCommand adds a coupon. Attribute rules are enforced by
// coupon.NewCoupon in the handler.
type CreateCouponCommand struct {
	params coupon.Params
	guard  guard.ConstructorGuard
}

func NewCreateCouponCommand(params coupon.Params) CreateCouponCommand {
	return CreateCouponCommand{params: params, guard: guard.NewConstructorGuard()}
}

func (c CreateCouponCommand) Validate() error {
	return c.guard.Validate(ErrCreateCouponCommandIsNotConstructed)
}

func (c CreateCouponCommand) Params() coupon.Params { return c.params }

// UpdateCouponCommand replaces the editable attributes of a coupon.
type UpdateCouponCommand struct {
	id     kernel.UUID
	params coupon.Params
	guard  guard.ConstructorGuard
}

func NewUpdateCouponCommand(id kernel.UUID, params coupon.Params) (UpdateCouponCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateCouponCommand{}, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	return UpdateCouponCommand{id: id, params: params, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCouponCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCouponCommandIsNotConstructed)
}

func (c UpdateCouponCommand) ID() kernel.UUID       { return c.id }
func (c UpdateCouponCommand) Params() coupon.Params { return c.params }

// DeleteCouponCommand soft deletes a coupon.
type DeleteCouponCommand struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewDeleteCouponCommand(id kernel.UUID) (DeleteCouponCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteCouponCommand{}, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	return DeleteCouponCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCouponCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCouponCommandIsNotConstructed)
}

func (c DeleteCouponCommand) ID() kernel.UUID { return c.id }

// DeactivateExpiredCouponsCommand switches off coupons past their end date.
type DeactivateExpiredCouponsCommand struct {
	guard guard.ConstructorGuard
}

func NewDeactivateExpiredCouponsCommand() DeactivateExpiredCouponsCommand {
	return DeactivateExpiredCouponsCommand{guard: guard.NewConstructorGuard()}
}

func (c DeactivateExpiredCouponsCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateExpiredCouponsCommandIsNotConstructed)
}

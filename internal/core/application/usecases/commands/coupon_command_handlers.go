package commands

import (
	"context"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
)

// CreateCouponCommandHandler persists a new coupon. A code already in use
// is reported by the repository as coupon.ErrCouponCodeTaken.
type CreateCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewCreateCouponCommandHandler(uowFactory CouponUoWFactory) CreateCouponCommandHandler {
	return CreateCouponCommandHandler{uowFactory: uowFactory}
}

func (h CreateCouponCommandHandler) Handle(ctx context.Context, command CreateCouponCommand) (*coupon.Coupon, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	c, err := coupon.NewCoupon(kernel.NewUUID(), command.Params())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CouponRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

type UpdateCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewUpdateCouponCommandHandler(uowFactory CouponUoWFactory) UpdateCouponCommandHandler {
	return UpdateCouponCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCouponCommandHandler) Handle(ctx context.Context, command UpdateCouponCommand) (*coupon.Coupon, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CouponRepository()

	c, err := repo.Get(ctx, command.ID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(command.Params()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

type DeleteCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewDeleteCouponCommandHandler(uowFactory CouponUoWFactory) DeleteCouponCommandHandler {
	return DeleteCouponCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCouponCommandHandler) Handle(ctx context.Context, command DeleteCouponCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CouponRepository()

	if _, err := repo.Get(ctx, command.ID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, command.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeactivateExpiredCouponsCommandHandler runs a single conditional update;
// it needs no transaction of its own.
type DeactivateExpiredCouponsCommandHandler struct {
	uowFactory CouponUoWFactory
	now        Clock
}

func NewDeactivateExpiredCouponsCommandHandler(uowFactory CouponUoWFactory, now Clock) DeactivateExpiredCouponsCommandHandler {
	return DeactivateExpiredCouponsCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle returns the number of coupons switched off.
func (h DeactivateExpiredCouponsCommandHandler) Handle(ctx context.Context, command DeactivateExpiredCouponsCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	return h.uowFactory.Create().CouponRepository().DeactivateExpired(ctx, h.now())
}

package commands

import (
	"context"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/services"
)

// AssignDeliveryManCommandHandler performs a manual (admin) assignment.
// The order and the deliveryman are written in one transaction; both writes
// are version guarded, so a concurrent assignment that raced this one fails
// with ports.ErrConcurrentModification instead of overbooking.
type AssignDeliveryManCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.DeliveryAssigner
	now        Clock
}

func NewAssignDeliveryManCommandHandler(uowFactory UoWFactory, now Clock) AssignDeliveryManCommandHandler {
	return AssignDeliveryManCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewDeliveryAssigner(),
		now:        now,
	}
}

func (h AssignDeliveryManCommandHandler) Handle(ctx context.Context, command AssignDeliveryManCommand) error {
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

	orderRepo := uow.OrderRepository()
	deliveryManRepo := uow.DeliveryManRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	var d *deliveryman.DeliveryMan
	if id := command.DeliveryManID(); id != nil {
		d, err = deliveryManRepo.Get(ctx, *id)
	} else {
		d, err = deliveryManRepo.GetByEmail(ctx, command.DeliveryManEmail())
	}
	if err != nil {
		return err
	}

	if err = h.assigner.Assign(o, d, command.Actor(), h.now(), command.Policy()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = deliveryManRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

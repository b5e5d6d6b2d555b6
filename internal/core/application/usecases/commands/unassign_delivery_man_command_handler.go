package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/services"
)

// UnassignDeliveryManCommandHandler clears the order's deliveryman and
// releases that deliveryman's capacity in the same transaction. An order
// whose deliveryman profile no longer exists is still unassigned.
type UnassignDeliveryManCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.DeliveryAssigner
	now        Clock
}

func NewUnassignDeliveryManCommandHandler(uowFactory UoWFactory, now Clock) UnassignDeliveryManCommandHandler {
	return UnassignDeliveryManCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewDeliveryAssigner(),
		now:        now,
	}
}

func (h UnassignDeliveryManCommandHandler) Handle(ctx context.Context, command UnassignDeliveryManCommand) error {
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
	if id := o.DeliveryManID(); id != nil {
		d, err = deliveryManRepo.Get(ctx, *id)
		if err != nil && !errors.Is(err, deliveryman.ErrDeliveryManNotFound) {
			return err
		}
	}

	if err = h.assigner.Unassign(o, d, command.Actor(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if d != nil {
		if err = deliveryManRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// UpdateDeliveryStatusCommandHandler advances an order on behalf of its
// deliveryman. The delivered transition also settles the delivery: the
// order, the deliveryman's earnings and history and the freed capacity are
// committed together, and the customer is notified afterwards.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.DeliveryAssigner
	notifier   ports.Notifier
	payRate    decimal.Decimal
	now        Clock
}

func NewUpdateDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	payRate decimal.Decimal,
	now Clock,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewDeliveryAssigner(),
		notifier:   notifier,
		payRate:    payRate,
		now:        now,
	}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, command UpdateDeliveryStatusCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	principal := command.Principal()
	if !principal.IsDeliveryMan() {
		return nil, errs.NewForbiddenError("update delivery status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.IsAssignedTo(principal.UserID) {
		return nil, errs.NewForbiddenError(fmt.Sprintf("update delivery status of order %s", o.ID()))
	}

	now := h.now()
	if command.Status() != order.Delivered {
		if err = o.Advance(command.Status(), principal.UserID, now); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return o, nil
	}

	deliveryManRepo := uow.DeliveryManRepository()
	d, err := deliveryManRepo.Get(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	if _, err = h.assigner.Deliver(o, d, now, h.payRate); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = deliveryManRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.notifier.Notify(ctx, ports.OrderEvent{
		Type:       ports.OrderDelivered,
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		Status:     o.DeliveryStatus().String(),
		TotalPrice: o.TotalPrice(),
		OccurredAt: now,
	})

	return o, nil
}

package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ProcessReturnCommandHandler moves a return forward. Admins and the
// deliveryman who delivered the order may process it. Completing a return
// puts every returned line back into stock in the same transaction.
type ProcessReturnCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	now        Clock
}

func NewProcessReturnCommandHandler(uowFactory UoWFactory, notifier ports.Notifier, now Clock) ProcessReturnCommandHandler {
	return ProcessReturnCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        now,
	}
}

func (h ProcessReturnCommandHandler) Handle(ctx context.Context, command ProcessReturnCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	principal := command.Principal()
	if !principal.IsAdmin() && !(principal.IsDeliveryMan() && o.IsAssignedTo(principal.UserID)) {
		return nil, errs.NewForbiddenError(fmt.Sprintf("process return of order %s", o.ID()))
	}

	now := h.now()
	if err = o.ProcessReturn(command.Status(), principal.UserID, command.ScheduledDate(), now); err != nil {
		return nil, err
	}

	if command.Status() == order.ReturnCompleted {
		productRepo := uow.ProductRepository()
		for _, item := range o.Items() {
			if err = productRepo.IncrementStock(ctx, item.ProductID(), item.Quantity()); err != nil {
				return nil, err
			}
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.notifier.Notify(ctx, ports.OrderEvent{
		Type:       ports.ReturnStatusMoved,
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		Status:     o.ReturnRequest().Status.String(),
		TotalPrice: o.TotalPrice(),
		OccurredAt: now,
	})

	return o, nil
}

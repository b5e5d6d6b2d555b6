package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// RequestReturnCommandHandler lets a customer request the return of an order
// delivered no longer than the configured window ago.
type RequestReturnCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	window     time.Duration
	now        Clock
}

func NewRequestReturnCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	window time.Duration,
	now Clock,
) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		window:     window,
		now:        now,
	}
}

func (h RequestReturnCommandHandler) Handle(ctx context.Context, command RequestReturnCommand) (*order.Order, error) {
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
	if !o.IsOwnedBy(command.Principal().UserID) {
		return nil, errs.NewForbiddenError(fmt.Sprintf("request return of order %s", o.ID()))
	}

	now := h.now()
	if err = o.RequestReturn(command.Reason(), now, h.window); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.notifier.Notify(ctx, ports.OrderEvent{
		Type:       ports.ReturnRequested,
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		Status:     o.ReturnRequest().Status.String(),
		TotalPrice: o.TotalPrice(),
		OccurredAt: now,
	})

	return o, nil
}

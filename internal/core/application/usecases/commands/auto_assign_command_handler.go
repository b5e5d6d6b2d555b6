package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

var ErrNoOrderFound = errors.New("no unassigned order found")

// AutoAssignCommandHandler is the scheduled counterpart of the admin
// assignment. It applies the standard policy and records the chosen
// deliveryman as the actor of the history entry.
//
// Example:
//
//	result, err := handler.Handle(ctx, NewAutoAssignCommand(skipped...))
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    // nothing to do
//	case errors.Is(err, services.ErrNoEligibleDeliveryMan):
//	    skipped = append(skipped, result.OrderID)
//	}
type AutoAssignCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.DeliveryAssigner
	now        Clock
}

func NewAutoAssignCommandHandler(uowFactory UoWFactory, now Clock) AutoAssignCommandHandler {
	return AutoAssignCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewDeliveryAssigner(),
		now:        now,
	}
}

func (h AutoAssignCommandHandler) Handle(ctx context.Context, command AutoAssignCommand) (AutoAssignResult, error) {
	if err := command.Validate(); err != nil {
		return AutoAssignResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutoAssignResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryManRepo := uow.DeliveryManRepository()

	o, err := orderRepo.GetOldestUnassigned(ctx, command.Skip())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AutoAssignResult{}, ErrNoOrderFound
	}
	if err != nil {
		return AutoAssignResult{}, err
	}
	result := AutoAssignResult{OrderID: o.ID()}

	candidates, err := deliveryManRepo.ListAvailable(ctx)
	if err != nil {
		return result, err
	}

	chosen, err := h.assigner.Pick(o, candidates)
	if err != nil {
		return result, err
	}

	if err = h.assigner.Assign(o, chosen, chosen.ID(), h.now(), deliveryman.StandardPolicy()); err != nil {
		return result, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return result, err
	}

	if err = deliveryManRepo.Update(ctx, chosen); err != nil {
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	result.DeliveryManID = chosen.ID()
	return result, nil
}

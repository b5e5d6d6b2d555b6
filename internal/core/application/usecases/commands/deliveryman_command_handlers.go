package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/pkg/errs"
)

// ErrAlreadyDeliveryMan is returned when onboarding a user who already has
// a delivery profile.
var ErrAlreadyDeliveryMan = errs.NewStateConflictError("deliveryman", "profile already exists")

// OnboardDeliveryManCommandHandler promotes a user to the deliveryman role
// and creates the profile in one transaction.
type OnboardDeliveryManCommandHandler struct {
	uowFactory DeliveryManUoWFactory
}

func NewOnboardDeliveryManCommandHandler(uowFactory DeliveryManUoWFactory) OnboardDeliveryManCommandHandler {
	return OnboardDeliveryManCommandHandler{uowFactory: uowFactory}
}

func (h OnboardDeliveryManCommandHandler) Handle(ctx context.Context, command OnboardDeliveryManCommand) (*deliveryman.DeliveryMan, error) {
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

	userRepo := uow.UserRepository()
	deliveryManRepo := uow.DeliveryManRepository()

	u, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return nil, err
	}

	_, err = deliveryManRepo.Get(ctx, u.ID())
	if err == nil {
		return nil, ErrAlreadyDeliveryMan
	}
	if !errors.Is(err, deliveryman.ErrDeliveryManNotFound) {
		return nil, err
	}

	if err = u.PromoteToDeliveryMan(); err != nil {
		return nil, err
	}

	d, err := deliveryman.NewDeliveryMan(u.ID(), u.Name(), u.Email(), command.Area())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = deliveryManRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

type SetAvailabilityCommandHandler struct {
	uowFactory DeliveryManUoWFactory
}

func NewSetAvailabilityCommandHandler(uowFactory DeliveryManUoWFactory) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, command SetAvailabilityCommand) (*deliveryman.DeliveryMan, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if !command.Principal().IsDeliveryMan() {
		return nil, errs.NewForbiddenError("change delivery availability")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryManRepository()

	d, err := repo.Get(ctx, command.Principal().UserID)
	if err != nil {
		return nil, err
	}

	d.SetAvailability(command.Available())

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

package order

import (
	"errors"

	"storefront/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	ErrOrderNotPending     = errs.NewStateConflictError("order", "not pending assignment")
	ErrNotAssigned         = errs.NewStateConflictError("order", "not assigned to a deliveryman")
	ErrAlreadyDelivered    = errs.NewStateConflictError("order", "already delivered")
	ErrInvalidTransition   = errs.NewStateConflictError("order", "invalid status transition")
	ErrNotDelivered        = errs.NewStateConflictError("order", "not delivered")
	ErrReturnWindowExpired = errs.NewStateConflictError("order", "return window expired")
)

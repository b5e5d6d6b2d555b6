package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// DeliveryStatus is the position of an order in the delivery workflow.
type DeliveryStatus string

const (
	Unassigned     DeliveryStatus = "unassigned"
	Assigned       DeliveryStatus = "assigned"
	Processing     DeliveryStatus = "processing"
	OutForDelivery DeliveryStatus = "out_for_delivery"
	Delivered      DeliveryStatus = "delivered"
)

// transitions lists the legal next states. Delivered is terminal.
var transitions = map[DeliveryStatus][]DeliveryStatus{
	Unassigned:     {Assigned},
	Assigned:       {Processing, Unassigned},
	Processing:     {OutForDelivery, Unassigned},
	OutForDelivery: {Delivered, Unassigned},
	Delivered:      {},
}

// ParseDeliveryStatus accepts the stored names plus the legacy alias
// "pending" for unassigned.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "pending" {
		return Unassigned, nil
	}

	status := DeliveryStatus(normalized)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s DeliveryStatus) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the move is legal, ErrInvalidTransition otherwise.
func (s DeliveryStatus) TransitionTo(next DeliveryStatus) (DeliveryStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}

// HasDeliveryMan reports whether orders in this status carry a deliveryman.
func (s DeliveryStatus) HasDeliveryMan() bool {
	return s != Unassigned
}

// IsInFlight reports whether the order occupies deliveryman capacity.
func (s DeliveryStatus) IsInFlight() bool {
	return s == Assigned || s == Processing || s == OutForDelivery
}

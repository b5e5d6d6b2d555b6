package services

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrNoEligibleDeliveryMan is returned when automatic assignment finds no
// candidate for an order.
var ErrNoEligibleDeliveryMan = errors.New("no eligible deliveryman found")

// DeliveryAssigner applies assignment, unassignment and settlement to an
// order and a deliveryman together, so that the order's deliveryMan and the
// deliveryman's assignedOrders never disagree.
//
// Example:
//
//	assigner := NewDeliveryAssigner()
//	if err := assigner.Assign(o, d, adminID, time.Now(), deliveryman.AdminPolicy()); err != nil {
//	    return err
//	}
//	// persist o and d in the same transaction
type DeliveryAssigner struct{}

func NewDeliveryAssigner() DeliveryAssigner {
	return DeliveryAssigner{}
}

// Assign checks the order first (it must be unassigned), then the
// deliveryman under policy, and only then mutates both.
func (DeliveryAssigner) Assign(
	o *order.Order,
	d *deliveryman.DeliveryMan,
	by kernel.UUID,
	now time.Time,
	policy deliveryman.AssignmentPolicy,
) error {
	if err := errors.Join(o.Validate(), d.Validate()); err != nil {
		return err
	}
	if o.DeliveryStatus() != order.Unassigned {
		return order.ErrOrderNotPending
	}
	if err := d.CheckEligible(o.ShippingAddress().City(), policy); err != nil {
		return err
	}

	if err := d.TakeOrder(o.ID(), o.ShippingAddress().City(), policy); err != nil {
		return err
	}
	return o.Assign(d.ID(), by, now)
}

// Unassign returns the order to the pool and frees capacity on d, which must
// be the deliveryman currently holding it. A nil d is allowed when the
// profile no longer exists.
func (DeliveryAssigner) Unassign(o *order.Order, d *deliveryman.DeliveryMan, by kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	previous, err := o.Unassign(by, now)
	if err != nil {
		return err
	}
	if d == nil || !d.ID().IsEqual(previous) {
		return nil
	}
	if !d.Holds(o.ID()) {
		return nil
	}
	return d.ReleaseOrder(o.ID())
}

// Deliver settles a delivered order: the order records earnings and payment,
// and the deliveryman is credited and gets the capacity back.
func (DeliveryAssigner) Deliver(
	o *order.Order,
	d *deliveryman.DeliveryMan,
	now time.Time,
	payRate decimal.Decimal,
) (decimal.Decimal, error) {
	if err := errors.Join(o.Validate(), d.Validate()); err != nil {
		return decimal.Zero, err
	}
	if !o.IsAssignedTo(d.ID()) {
		return decimal.Zero, order.ErrNotAssigned
	}

	earned, err := o.Deliver(d.ID(), now, payRate)
	if err != nil {
		return decimal.Zero, err
	}
	if err = d.CompleteDelivery(o.ID(), earned, now); err != nil {
		return decimal.Zero, err
	}
	return earned, nil
}

// Rank keeps the candidates eligible for city under the standard policy,
// lightest load first. Ties keep input order.
func (DeliveryAssigner) Rank(candidates []*deliveryman.DeliveryMan, city string) []*deliveryman.DeliveryMan {
	eligible := make([]*deliveryman.DeliveryMan, 0, len(candidates))
	for _, d := range candidates {
		if d.Validate() != nil || !d.IsEligibleFor(city) {
			continue
		}
		eligible = append(eligible, d)
	}

	slices.SortStableFunc(eligible, func(a, b *deliveryman.DeliveryMan) int {
		return cmp.Compare(a.Load(), b.Load())
	})
	return eligible
}

// Pick returns the least loaded eligible candidate for the order.
func (a DeliveryAssigner) Pick(o *order.Order, candidates []*deliveryman.DeliveryMan) (*deliveryman.DeliveryMan, error) {
	ranked := a.Rank(candidates, o.ShippingAddress().City())
	if len(ranked) == 0 {
		return nil, ErrNoEligibleDeliveryMan
	}
	return ranked[0], nil
}

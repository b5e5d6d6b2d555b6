package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrDeliveryManOrdersQueryIsNotConstructed = errors.New(
	"DeliveryManOrdersQuery must be created via NewDeliveryManOrdersQuery constructor",
)

// DeliveryManOrdersQuery lists orders handed to one deliveryman. By default
// only orders still on the road are returned; IncludeDelivered adds the
// delivered ones, which the deliveryman needs for return pickups.
type DeliveryManOrdersQuery struct {
	deliveryManID    kernel.UUID
	includeDelivered bool
	guard            guard.ConstructorGuard
}

func NewDeliveryManOrdersQuery(deliveryManID kernel.UUID, includeDelivered bool) (DeliveryManOrdersQuery, error) {
	if err := deliveryManID.Validate(); err != nil {
		return DeliveryManOrdersQuery{}, err
	}
	return DeliveryManOrdersQuery{
		deliveryManID:    deliveryManID,
		includeDelivered: includeDelivered,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q DeliveryManOrdersQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryManOrdersQueryIsNotConstructed)
}

func (q DeliveryManOrdersQuery) DeliveryManID() kernel.UUID { return q.deliveryManID }
func (q DeliveryManOrdersQuery) IncludeDelivered() bool     { return q.includeDelivered }

var deliveredStatus = order.Delivered.String()

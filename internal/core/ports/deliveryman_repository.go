package ports

import (
	"context"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
)

// DeliveryManRepository persists delivery profiles. Lookups of unknown
// profiles return deliveryman.ErrDeliveryManNotFound.
type DeliveryManRepository interface {
	Add(ctx context.Context, aggregate *deliveryman.DeliveryMan) error

	// Update is version guarded like OrderRepository.Update.
	Update(ctx context.Context, aggregate *deliveryman.DeliveryMan) error

	Get(ctx context.Context, userID kernel.UUID) (*deliveryman.DeliveryMan, error)
	GetByEmail(ctx context.Context, email string) (*deliveryman.DeliveryMan, error)

	// ListAvailable returns every profile switched on for delivery.
	ListAvailable(ctx context.Context) ([]*deliveryman.DeliveryMan, error)
}

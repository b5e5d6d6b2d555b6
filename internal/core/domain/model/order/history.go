package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// StatusChange is one append-only entry of the order's status history.
type StatusChange struct {
	Status    DeliveryStatus
	Timestamp time.Time
	UpdatedBy kernel.UUID
	Note      string
}

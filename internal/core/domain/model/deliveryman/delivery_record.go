package deliveryman

import (
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryRecord is one append-only entry of the delivery history.
type DeliveryRecord struct {
	OrderID      kernel.UUID
	EarnedAmount decimal.Decimal
	DeliveryDate time.Time
	Status       string
}

const RecordDelivered = "delivered"

package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDeliveryManProfileQueryIsNotConstructed = errors.New(
	"DeliveryManProfileQuery must be created via NewDeliveryManProfileQuery constructor",
)

// DeliveryManProfileQuery reads a deliveryman's earnings, held orders and
// delivery history.
type DeliveryManProfileQuery struct {
	deliveryManID kernel.UUID
	guard         guard.ConstructorGuard
}

func NewDeliveryManProfileQuery(deliveryManID kernel.UUID) (DeliveryManProfileQuery, error) {
	if err := deliveryManID.Validate(); err != nil {
		return DeliveryManProfileQuery{}, err
	}
	return DeliveryManProfileQuery{deliveryManID: deliveryManID, guard: guard.NewConstructorGuard()}, nil
}

func (q DeliveryManProfileQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryManProfileQueryIsNotConstructed)
}

func (q DeliveryManProfileQuery) DeliveryManID() kernel.UUID { return q.deliveryManID }

type DeliveryManProfileView struct {
	ID             kernel.UUID          `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Area           string               `json:"area"`
	Available      bool                 `json:"availableForDelivery"`
	Earnings       decimal.Decimal      `json:"earnings"`
	AssignedOrders []kernel.UUID        `json:"assignedOrders"`
	History        []DeliveryRecordView `json:"deliveryHistory"`
}

type DeliveryRecordView struct {
	OrderID      kernel.UUID     `json:"orderId"`
	EarnedAmount decimal.Decimal `json:"earnedAmount"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	Status       string          `json:"status"`
}

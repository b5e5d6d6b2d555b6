package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// EventType names a notification published to customers.
type EventType string

const (
	OrderConfirmed    EventType = "order.confirmed"
	OrderDelivered    EventType = "order.delivered"
	ReturnRequested   EventType = "order.return_requested"
	ReturnStatusMoved EventType = "order.return_status_changed"
)

// OrderEvent is the payload of a customer notification.
type OrderEvent struct {
	Type       EventType       `json:"type"`
	OrderID    kernel.UUID     `json:"orderId"`
	UserID     kernel.UUID     `json:"userId"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// Notifier delivers events. Callers treat it as best effort: failures are
// logged and never undo a committed change.
type Notifier interface {
	Notify(ctx context.Context, event OrderEvent) error
}

// Locker grants a short-lived exclusive lease so that only one replica runs a
// scheduled job at a time.
type Locker interface {
	// TryLock returns acquired=false without error when another holder owns key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}

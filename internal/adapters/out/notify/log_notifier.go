package notify

import (
	"context"

	"storefront/internal/core/ports"

	log "github.com/sirupsen/logrus"
)

// LogNotifier stands in for a broker in local setups.
type LogNotifier struct {
	logger *log.Entry
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: log.WithField("component", "log-notifier")}
}

func (n *LogNotifier) Notify(_ context.Context, event ports.OrderEvent) error {
	n.logger.WithFields(log.Fields{
		"type":        event.Type,
		"order_id":    event.OrderID.String(),
		"user_id":     event.UserID.String(),
		"status":      event.Status,
		"total_price": event.TotalPrice.StringFixed(2),
	}).Info("customer notification")
	return nil
}

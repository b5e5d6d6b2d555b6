package notify

import (
	"context"
	"sync"
	"time"

	"storefront/internal/core/ports"

	log "github.com/sirupsen/logrus"
)

type notificationRecorder interface {
	NotificationSent(eventType string, err error)
}

// Async hands each event to the wrapped notifier on its own goroutine and
// returns immediately. Delivery gets a fresh timeout that outlives the
// caller's context; failures are logged and counted, never returned.
type Async struct {
	next     ports.Notifier
	timeout  time.Duration
	recorder notificationRecorder
	logger   *log.Entry
	wg       sync.WaitGroup
}

func NewAsync(next ports.Notifier, timeout time.Duration, recorder notificationRecorder) *Async {
	return &Async{
		next:     next,
		timeout:  timeout,
		recorder: recorder,
		logger:   log.WithField("component", "notifier"),
	}
}

func (a *Async) Notify(ctx context.Context, event ports.OrderEvent) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()

		err := a.next.Notify(sendCtx, event)
		if a.recorder != nil {
			a.recorder.NotificationSent(string(event.Type), err)
		}
		if err != nil {
			a.logger.WithError(err).WithFields(log.Fields{
				"type":     event.Type,
				"order_id": event.OrderID.String(),
			}).Warn("notification failed")
		}
	}()
	return nil
}

// Wait blocks until every pending notification finished. Called on shutdown.
func (a *Async) Wait() {
	a.wg.Wait()
}

// Package metrics holds the Prometheus collectors of the storefront.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups every collector the service exports on /metrics.
type Metrics struct {
	ordersCreated    *prometheus.CounterVec
	checkoutFailures *prometheus.CounterVec
	deliveries       prometheus.Counter
	assignments      *prometheus.CounterVec
	notifications    *prometheus.CounterVec
	jobRuns          *prometheus.CounterVec
	jobDuration      *prometheus.HistogramVec
	httpDuration     *prometheus.HistogramVec
}

// New registers the collectors with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the collectors with registerer. Collectors
// already registered under the same name are reused.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersCreated: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Orders created at checkout",
		}, []string{"payment_method"})),
		checkoutFailures: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_checkout_failures_total",
			Help: "Checkouts rejected, by error class",
		}, []string{"reason"})),
		deliveries: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_deliveries_completed_total",
			Help: "Orders settled as delivered",
		})),
		assignments: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_assignments_total",
			Help: "Orders assigned to a deliveryman, by source",
		}, []string{"source"})),
		notifications: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_notifications_total",
			Help: "Customer notifications, by event type and result",
		}, []string{"type", "result"})),
		jobRuns: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_job_runs_total",
			Help: "Scheduled job ticks, by job and result",
		}, []string{"job", "result"})),
		jobDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_job_duration_seconds",
			Help:    "Duration of scheduled job ticks",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"})),
		httpDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			existing, ok := already.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type: %v", err))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

func (m *Metrics) OrderCreated(paymentMethod string) {
	m.ordersCreated.WithLabelValues(paymentMethod).Inc()
}

func (m *Metrics) CheckoutFailed(reason string) {
	m.checkoutFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) DeliveryCompleted() {
	m.deliveries.Inc()
}

// OrderAssigned counts an assignment made by source ("admin" or "auto").
func (m *Metrics) OrderAssigned(source string) {
	m.assignments.WithLabelValues(source).Inc()
}

func (m *Metrics) NotificationSent(eventType string, err error) {
	m.notifications.WithLabelValues(eventType, result(err)).Inc()
}

func (m *Metrics) JobRun(job string, started time.Time, err error) {
	m.jobRuns.WithLabelValues(job, result(err)).Inc()
	m.jobDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())
}

// JobSkipped counts a tick that did not run because another replica held
// the lock.
func (m *Metrics) JobSkipped(job string) {
	m.jobRuns.WithLabelValues(job, "skipped").Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, fmt.Sprint(status)).Observe(elapsed.Seconds())
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

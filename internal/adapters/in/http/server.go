package http

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/order"
)

// Handler is any command or query handler that produces a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Action is a command handler that only reports success.
type Action[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers are the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder          Handler[commands.CreateOrderCommand, commands.CreateOrderResult]
	AssignDeliveryMan    Action[commands.AssignDeliveryManCommand]
	UnassignDeliveryMan  Action[commands.UnassignDeliveryManCommand]
	OnboardDeliveryMan   Handler[commands.OnboardDeliveryManCommand, *deliveryman.DeliveryMan]
	UpdateDeliveryStatus Handler[commands.UpdateDeliveryStatusCommand, *order.Order]
	SetAvailability      Handler[commands.SetAvailabilityCommand, *deliveryman.DeliveryMan]
	RequestReturn        Handler[commands.RequestReturnCommand, *order.Order]
	ProcessReturn        Handler[commands.ProcessReturnCommand, *order.Order]
	CreateCoupon         Handler[commands.CreateCouponCommand, *coupon.Coupon]
	UpdateCoupon         Handler[commands.UpdateCouponCommand, *coupon.Coupon]
	DeleteCoupon         Action[commands.DeleteCouponCommand]

	// Query handlers
	ListOrders         Handler[queries.ListOrdersQuery, []queries.OrderView]
	ListEligible       Handler[queries.ListEligibleDeliveryMenQuery, []queries.EligibleDeliveryManView]
	DeliveryManOrders  Handler[queries.DeliveryManOrdersQuery, []queries.OrderView]
	DeliveryManProfile Handler[queries.DeliveryManProfileQuery, queries.DeliveryManProfileView]
	ListCoupons        Handler[queries.ListCouponsQuery, []queries.CouponView]
	ValidateCoupon     Handler[queries.ValidateCouponQuery, queries.CouponPreview]
	SellerAnalytics    Handler[queries.SellerAnalyticsQuery, queries.SellerAnalytics]
}

// Recorder receives business and transport metrics.
type Recorder interface {
	OrderCreated(paymentMethod string)
	CheckoutFailed(reason string)
	DeliveryCompleted()
	OrderAssigned(source string)
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Server maps HTTP requests onto use cases.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	recorder Recorder
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, recorder Recorder) *Server {
	return &Server{handlers: handlers, recorder: recorder}
}

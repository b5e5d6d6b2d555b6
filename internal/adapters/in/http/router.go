package http

import (
	"net/http"
	"time"

	_ "storefront/internal/adapters/in/http/docs" // swagger document
	"storefront/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const APIPrefix = "/api/v1"

// NewRouter builds the echo instance with every route of the API plus the
// health, metrics and swagger endpoints.
func NewRouter(server *Server, auth Authenticator, metricsHandler http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HandleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(server.observe)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix)
	api.GET("/coupons/validate", server.ValidateCoupon)

	authed := api.Group("", auth.Middleware)
	authed.POST("/orders", server.CreateOrder)
	authed.GET("/orders", server.ListOrders)
	authed.POST("/orders/return", server.RequestReturn)

	admin := authed.Group("", RequireRole(user.Admin))
	admin.PATCH("/admin/orders/assign", server.AssignOrder)
	admin.GET("/admin/delivery-men/eligible", server.ListEligibleDeliveryMen)
	admin.POST("/admin/delivery-men", server.OnboardDeliveryMan)
	admin.POST("/coupons", server.CreateCoupon)
	admin.GET("/coupons", server.ListCoupons)
	admin.PUT("/coupons/:id", server.UpdateCoupon)
	admin.DELETE("/coupons/:id", server.DeleteCoupon)

	delivery := authed.Group("/delivery", RequireRole(user.DeliveryMan))
	delivery.PUT("", server.UpdateDeliveryStatus)
	delivery.GET("/orders", server.DeliveryManOrders)
	delivery.GET("/profile", server.DeliveryManProfile)
	delivery.PATCH("/availability", server.SetAvailability)

	authed.PATCH("/delivery/return-orders", server.ProcessReturn, RequireRole(user.DeliveryMan, user.Admin))
	authed.GET("/seller/analytics", server.SellerAnalytics, RequireRole(user.Seller, user.Admin))

	return e
}

// observe records the latency of every request under its route template.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		started := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusFor(err)
		}
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		s.recorder.ObserveHTTP(c.Request().Method, route, status, time.Since(started))
		return err
	}
}

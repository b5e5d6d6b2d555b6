package http

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const idempotencyKeyHeader = "Idempotency-Key"

// CreateOrder handles POST /api/v1/orders - places an order for the caller.
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		Idempotency-Key	header		string				false	"replay protection key"
//	@Param		order			body		CreateOrderRequest	true	"cart lines, address, payment"
//	@Success	201				{object}	queries.OrderView
//	@Success	200				{object}	queries.OrderView	"replayed request"
//	@Failure	400				{object}	Error
//	@Failure	409				{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	lines := make([]commands.CartLine, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		lines = append(lines, commands.CartLine{
			ProductID: domainID(item.Product),
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	a := req.ShippingAddress
	address, err := order.NewShippingAddress(a.FullName, a.Address, a.City, a.PostalCode, a.Country, a.Phone)
	if err != nil {
		return s.checkoutFailed(err)
	}

	key := strings.TrimSpace(c.Request().Header.Get(idempotencyKeyHeader))
	if key == "" {
		key = req.IdempotencyKey
	}

	cmd, err := commands.NewCreateOrderCommand(
		principal, lines, address, order.PaymentMethod(req.PaymentMethod), req.CouponCode, key,
	)
	if err != nil {
		return s.checkoutFailed(err)
	}

	result, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.checkoutFailed(err)
	}

	if !result.Created {
		return c.JSON(http.StatusOK, queries.NewOrderView(result.Order))
	}
	s.recorder.OrderCreated(result.Order.PaymentMethod().String())
	return c.JSON(http.StatusCreated, queries.NewOrderView(result.Order))
}

// checkoutFailed counts the failure and turns an unusable coupon into a bad
// request rather than a missing resource.
func (s *Server) checkoutFailed(err error) error {
	switch {
	case errors.Is(err, coupon.ErrCouponNotFound):
		s.recorder.CheckoutFailed("coupon")
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	case errors.Is(err, coupon.ErrUsageLimitReached), errors.Is(err, coupon.ErrMinimumPurchaseNotMet):
		s.recorder.CheckoutFailed("coupon")
	case errors.Is(err, product.ErrInsufficientStock):
		s.recorder.CheckoutFailed("stock")
	case errs.IsValidation(err):
		s.recorder.CheckoutFailed("validation")
	case errors.Is(err, errs.ErrStateConflict):
		s.recorder.CheckoutFailed("conflict")
	default:
		s.recorder.CheckoutFailed("error")
	}
	return err
}

// ListOrders handles GET /api/v1/orders - admins see every order, everybody
// else their own.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userId	query		string	false	"owner filter, admins only"
//	@Success	200		{array}		queries.OrderView
//	@Failure	400		{object}	Error
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var rawUserID *string
	if err := runtime.BindQueryParameter("form", true, false, "userId", c.QueryParams(), &rawUserID); err != nil {
		return badRequest(err.Error())
	}

	var userID *kernel.UUID
	if rawUserID != nil && *rawUserID != "" {
		id, err := kernel.UUIDFromString(*rawUserID)
		if err != nil {
			return err
		}
		userID = &id
	}

	query, err := queries.NewListOrdersQuery(principal, userID)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(views))
}

// RequestReturn handles POST /api/v1/orders/return - the owner asks to return
// a delivered order.
//
//	@Summary	Request a return
//	@Tags		returns
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		ReturnRequest	true	"order and reason"
//	@Success	200		{object}	queries.OrderView
//	@Failure	400		{object}	Error
//	@Failure	403		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/orders/return [post]
func (s *Server) RequestReturn(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req ReturnRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewRequestReturnCommand(principal, domainID(req.OrderID), req.Reason)
	if err != nil {
		return err
	}

	updated, err := s.handlers.RequestReturn.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, queries.NewOrderView(updated))
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// isSet reads an optional boolean query flag; absent means false.
func isSet(flag *bool) bool {
	return flag != nil && *flag
}

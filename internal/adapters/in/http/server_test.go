package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/metrics"
	"storefront/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

type mockHandler[In, Out any] struct{ mock.Mock }

func (m *mockHandler[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(Out)
	return out, args.Error(1)
}

type mockAction[In any] struct{ mock.Mock }

func (m *mockAction[In]) Handle(ctx context.Context, in In) error {
	return m.Called(ctx, in).Error(0)
}

func signToken(t *testing.T, secret string, id kernel.UUID, role user.Role, ttl time.Duration) string {
	t.Helper()

	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(order.ItemParams{
		ProductID: kernel.NewUUID(),
		Name:      "Linen shirt",
		Quantity:  2,
		Price:     decimal.RequireFromString("25.50"),
		Size:      "M",
		Color:     "white",
		SellerID:  kernel.NewUUID(),
	})
	require.NoError(t, err)
	addr, err := order.NewShippingAddress("Ayesha Khan", "12 Mall Road", "Lahore", "54000", "PK", "+92300000000")
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		UserID:          owner,
		Items:           []order.Item{item},
		ShippingAddress: addr,
		PaymentMethod:   order.CashOnDelivery,
		Pricing: order.Pricing{
			ItemsPrice:     decimal.RequireFromString("51.00"),
			CouponDiscount: decimal.Zero,
			TaxPrice:       decimal.Zero,
			ShippingPrice:  decimal.RequireFromString("5.00"),
			TotalPrice:     decimal.RequireFromString("56.00"),
		},
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return o
}

type ServerTestSuite struct {
	suite.Suite

	createOrder     *mockHandler[commands.CreateOrderCommand, commands.CreateOrderResult]
	listOrders      *mockHandler[queries.ListOrdersQuery, []queries.OrderView]
	assign          *mockAction[commands.AssignDeliveryManCommand]
	unassign        *mockAction[commands.UnassignDeliveryManCommand]
	onboard         *mockHandler[commands.OnboardDeliveryManCommand, *deliveryman.DeliveryMan]
	updateStatus    *mockHandler[commands.UpdateDeliveryStatusCommand, *order.Order]
	setAvailability *mockHandler[commands.SetAvailabilityCommand, *deliveryman.DeliveryMan]
	requestReturn   *mockHandler[commands.RequestReturnCommand, *order.Order]
	processReturn   *mockHandler[commands.ProcessReturnCommand, *order.Order]
	createCoupon    *mockHandler[commands.CreateCouponCommand, *coupon.Coupon]
	updateCoupon    *mockHandler[commands.UpdateCouponCommand, *coupon.Coupon]
	deleteCoupon    *mockAction[commands.DeleteCouponCommand]
	listEligible    *mockHandler[queries.ListEligibleDeliveryMenQuery, []queries.EligibleDeliveryManView]
	dmOrders        *mockHandler[queries.DeliveryManOrdersQuery, []queries.OrderView]
	dmProfile       *mockHandler[queries.DeliveryManProfileQuery, queries.DeliveryManProfileView]
	listCoupons     *mockHandler[queries.ListCouponsQuery, []queries.CouponView]
	validateCoupon  *mockHandler[queries.ValidateCouponQuery, queries.CouponPreview]
	sellerAnalytics *mockHandler[queries.SellerAnalyticsQuery, queries.SellerAnalytics]

	registry *prometheus.Registry
	router   *echo.Echo

	customerID    kernel.UUID
	adminID       kernel.UUID
	deliveryManID kernel.UUID
	sellerID      kernel.UUID
}

func (s *ServerTestSuite) SetupTest() {
	s.createOrder = &mockHandler[commands.CreateOrderCommand, commands.CreateOrderResult]{}
	s.listOrders = &mockHandler[queries.ListOrdersQuery, []queries.OrderView]{}
	s.assign = &mockAction[commands.AssignDeliveryManCommand]{}
	s.unassign = &mockAction[commands.UnassignDeliveryManCommand]{}
	s.onboard = &mockHandler[commands.OnboardDeliveryManCommand, *deliveryman.DeliveryMan]{}
	s.updateStatus = &mockHandler[commands.UpdateDeliveryStatusCommand, *order.Order]{}
	s.setAvailability = &mockHandler[commands.SetAvailabilityCommand, *deliveryman.DeliveryMan]{}
	s.requestReturn = &mockHandler[commands.RequestReturnCommand, *order.Order]{}
	s.processReturn = &mockHandler[commands.ProcessReturnCommand, *order.Order]{}
	s.createCoupon = &mockHandler[commands.CreateCouponCommand, *coupon.Coupon]{}
	s.updateCoupon = &mockHandler[commands.UpdateCouponCommand, *coupon.Coupon]{}
	s.deleteCoupon = &mockAction[commands.DeleteCouponCommand]{}
	s.listEligible = &mockHandler[queries.ListEligibleDeliveryMenQuery, []queries.EligibleDeliveryManView]{}
	s.dmOrders = &mockHandler[queries.DeliveryManOrdersQuery, []queries.OrderView]{}
	s.dmProfile = &mockHandler[queries.DeliveryManProfileQuery, queries.DeliveryManProfileView]{}
	s.listCoupons = &mockHandler[queries.ListCouponsQuery, []queries.CouponView]{}
	s.validateCoupon = &mockHandler[queries.ValidateCouponQuery, queries.CouponPreview]{}
	s.sellerAnalytics = &mockHandler[queries.SellerAnalyticsQuery, queries.SellerAnalytics]{}

	s.registry = prometheus.NewRegistry()
	server := NewServer(Handlers{
		CreateOrder:          s.createOrder,
		AssignDeliveryMan:    s.assign,
		UnassignDeliveryMan:  s.unassign,
		OnboardDeliveryMan:   s.onboard,
		UpdateDeliveryStatus: s.updateStatus,
		SetAvailability:      s.setAvailability,
		RequestReturn:        s.requestReturn,
		ProcessReturn:        s.processReturn,
		CreateCoupon:         s.createCoupon,
		UpdateCoupon:         s.updateCoupon,
		DeleteCoupon:         s.deleteCoupon,
		ListOrders:           s.listOrders,
		ListEligible:         s.listEligible,
		DeliveryManOrders:    s.dmOrders,
		DeliveryManProfile:   s.dmProfile,
		ListCoupons:          s.listCoupons,
		ValidateCoupon:       s.validateCoupon,
		SellerAnalytics:      s.sellerAnalytics,
	}, metrics.NewWithRegisterer(s.registry))

	s.router = NewRouter(server, NewAuthenticator(testSecret), promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.customerID = kernel.NewUUID()
	s.adminID = kernel.NewUUID()
	s.deliveryManID = kernel.NewUUID()
	s.sellerID = kernel.NewUUID()
}

func (s *ServerTestSuite) token(id kernel.UUID, role user.Role) string {
	return signToken(s.T(), testSecret, id, role, time.Hour)
}

func (s *ServerTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		s.Require().NoError(err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) errorBody(rec *httptest.ResponseRecorder) Error {
	var body Error
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ServerTestSuite) validOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		OrderItems: []OrderLineRequest{{Product: kernel.NewUUID().Bytes(), Quantity: 2, Size: "M"}},
		ShippingAddress: AddressRequest{
			FullName: "Ayesha Khan", Address: "12 Mall Road", City: "Lahore",
			PostalCode: "54000", Country: "PK", Phone: "+92300000000",
		},
		PaymentMethod: "cash_on_delivery",
	}
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestMetricsEndpointExposesRequestLatency() {
	s.do(http.MethodGet, "/health", nil, "")

	rec := s.do(http.MethodGet, "/metrics", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "storefront_http_request_duration_seconds")
}

func (s *ServerTestSuite) TestAuthentication() {
	s.Run("missing token", func() {
		rec := s.do(http.MethodGet, "/api/v1/orders", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal(http.StatusUnauthorized, s.errorBody(rec).Code)
	})

	s.Run("foreign signature", func() {
		rec := s.do(http.MethodGet, "/api/v1/orders", nil,
			signToken(s.T(), "another-secret", s.customerID, user.Customer, time.Hour))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("expired token", func() {
		rec := s.do(http.MethodGet, "/api/v1/orders", nil,
			signToken(s.T(), testSecret, s.customerID, user.Customer, -time.Minute))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("unknown role", func() {
		rec := s.do(http.MethodGet, "/api/v1/orders", nil,
			signToken(s.T(), testSecret, s.customerID, user.Role("guest"), time.Hour))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.listOrders.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestRoleGuards() {
	customer := s.token(s.customerID, user.Customer)

	for _, route := range []struct{ method, path string }{
		{http.MethodPatch, "/api/v1/admin/orders/assign"},
		{http.MethodGet, "/api/v1/admin/delivery-men/eligible?area=lahore"},
		{http.MethodPost, "/api/v1/coupons"},
		{http.MethodPut, "/api/v1/delivery"},
		{http.MethodPatch, "/api/v1/delivery/return-orders"},
		{http.MethodGet, "/api/v1/seller/analytics"},
	} {
		rec := s.do(route.method, route.path, map[string]any{}, customer)
		s.Equal(http.StatusForbidden, rec.Code, "%s %s", route.method, route.path)
	}
}

func (s *ServerTestSuite) TestCreateOrder_Created() {
	created := newTestOrder(s.T(), s.customerID)
	s.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.Principal().UserID.IsEqual(s.customerID) && cmd.IdempotencyKey() == "key-1"
	})).Return(commands.CreateOrderResult{Order: created, Created: true}, nil).Once()

	req := s.validOrderRequest()
	req.IdempotencyKey = "key-1"
	rec := s.do(http.MethodPost, "/api/v1/orders", req, s.token(s.customerID, user.Customer))

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var view map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	s.Equal(created.ID().String(), view["id"])
	s.Equal("unassigned", view["deliveryStatus"])
	s.Equal("56", view["totalPrice"])

	count, err := testutil.GatherAndCount(s.registry, "storefront_orders_created_total")
	s.Require().NoError(err)
	s.Equal(1, count)
	s.createOrder.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestCreateOrder_HeaderKeyWinsAndReplayIsOK() {
	existing := newTestOrder(s.T(), s.customerID)
	s.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.IdempotencyKey() == "header-key"
	})).Return(commands.CreateOrderResult{Order: existing}, nil).Once()

	req := s.validOrderRequest()
	req.IdempotencyKey = "body-key"
	payload, err := json.Marshal(req)
	s.Require().NoError(err)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(payload))
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token(s.customerID, user.Customer))
	httpReq.Header.Set(idempotencyKeyHeader, "header-key")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httpReq)

	s.Equal(http.StatusOK, rec.Code)
	s.createOrder.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestCreateOrder_RejectsIncompleteRequestBeforeHandler() {
	req := s.validOrderRequest()
	req.OrderItems = nil
	req.PaymentMethod = "bitcoin"

	rec := s.do(http.MethodPost, "/api/v1/orders", req, s.token(s.customerID, user.Customer))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.createOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestCreateOrder_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown coupon is a bad request", coupon.ErrCouponNotFound, http.StatusBadRequest},
		{"minimum purchase", coupon.ErrMinimumPurchaseNotMet, http.StatusBadRequest},
		{"coupon exhausted", coupon.ErrUsageLimitReached, http.StatusConflict},
		{"out of stock", product.ErrInsufficientStock, http.StatusConflict},
		{"upstream failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.createOrder.ExpectedCalls = nil
			s.createOrder.On("Handle", mock.Anything, mock.Anything).Return(commands.CreateOrderResult{}, tt.err).Once()

			rec := s.do(http.MethodPost, "/api/v1/orders", s.validOrderRequest(), s.token(s.customerID, user.Customer))

			s.Equal(tt.status, rec.Code)
			body := s.errorBody(rec)
			s.Equal(tt.status, body.Code)
			if tt.status == http.StatusInternalServerError {
				s.NotContains(body.Message, "connection reset")
			}
		})
	}

	count, err := testutil.GatherAndCount(s.registry, "storefront_checkout_failures_total")
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *ServerTestSuite) TestListOrders_CustomerCannotWidenFilter() {
	other := kernel.NewUUID()
	s.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.UserID() != nil && q.UserID().IsEqual(s.customerID)
	})).Return([]queries.OrderView(nil), nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders?userId="+other.String(), nil, s.token(s.customerID, user.Customer))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
	s.listOrders.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestListOrders_AdminFilters() {
	s.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.UserID() != nil && q.UserID().IsEqual(s.customerID)
	})).Return([]queries.OrderView{queries.NewOrderView(newTestOrder(s.T(), s.customerID))}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders?userId="+s.customerID.String(), nil, s.token(s.adminID, user.Admin))

	s.Equal(http.StatusOK, rec.Code)
	s.listOrders.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestListOrders_MalformedFilter() {
	rec := s.do(http.MethodGet, "/api/v1/orders?userId=nope", nil, s.token(s.adminID, user.Admin))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestAssignOrder() {
	orderID := kernel.NewUUID()
	admin := s.token(s.adminID, user.Admin)

	s.Run("assign by email with admin policy", func() {
		s.assign.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignDeliveryManCommand) bool {
			return cmd.OrderID().IsEqual(orderID) &&
				cmd.DeliveryManEmail() == "rider@example.com" &&
				cmd.Policy() == deliveryman.AdminPolicy()
		})).Return(nil).Once()

		rec := s.do(http.MethodPatch, "/api/v1/admin/orders/assign", map[string]any{
			"orderId":          orderID.String(),
			"deliveryManEmail": "Rider@Example.com",
		}, admin)

		s.Equal(http.StatusOK, rec.Code)
		s.assign.AssertExpectations(s.T())
	})

	s.Run("unassign", func() {
		s.unassign.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := s.do(http.MethodPatch, "/api/v1/admin/orders/assign", map[string]any{
			"orderId":   orderID.String(),
			"newStatus": "unassigned",
		}, admin)

		s.Equal(http.StatusOK, rec.Code)
		s.unassign.AssertExpectations(s.T())
	})

	s.Run("other statuses are rejected", func() {
		rec := s.do(http.MethodPatch, "/api/v1/admin/orders/assign", map[string]any{
			"orderId":   orderID.String(),
			"newStatus": "delivered",
		}, admin)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("capacity conflict", func() {
		s.assign.ExpectedCalls = nil
		s.assign.On("Handle", mock.Anything, mock.Anything).Return(deliveryman.ErrCapacityExceeded).Once()

		rec := s.do(http.MethodPatch, "/api/v1/admin/orders/assign", map[string]any{
			"orderId":       orderID.String(),
			"deliveryManId": s.deliveryManID.String(),
		}, admin)

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown deliveryman", func() {
		s.assign.ExpectedCalls = nil
		s.assign.On("Handle", mock.Anything, mock.Anything).Return(deliveryman.ErrDeliveryManNotFound).Once()

		rec := s.do(http.MethodPatch, "/api/v1/admin/orders/assign", map[string]any{
			"orderId":          orderID.String(),
			"deliveryManEmail": "ghost@example.com",
		}, admin)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ServerTestSuite) TestListEligibleDeliveryMen_RequiresArea() {
	rec := s.do(http.MethodGet, "/api/v1/admin/delivery-men/eligible", nil, s.token(s.adminID, user.Admin))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.listEligible.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestOnboardDeliveryMan() {
	profile, err := deliveryman.NewDeliveryMan(s.deliveryManID, "Bilal", "bilal@example.com", mustArea(s.T(), "Lahore"))
	s.Require().NoError(err)
	s.onboard.On("Handle", mock.Anything, mock.Anything).Return(profile, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/admin/delivery-men", map[string]any{
		"userId": s.deliveryManID.String(),
		"area":   "Lahore",
	}, s.token(s.adminID, user.Admin))

	s.Require().Equal(http.StatusCreated, rec.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(s.deliveryManID.String(), body["id"])
	s.Equal("lahore", body["area"])
	s.Equal(true, body["availableForDelivery"])
}

func (s *ServerTestSuite) TestUpdateDeliveryStatus_DeliveredCountsDelivery() {
	o := newTestOrder(s.T(), s.customerID)
	now := time.Now()
	s.Require().NoError(o.Assign(s.deliveryManID, s.adminID, now))
	s.Require().NoError(o.Advance(order.Processing, s.deliveryManID, now))
	s.Require().NoError(o.Advance(order.OutForDelivery, s.deliveryManID, now))
	_, err := o.Deliver(s.deliveryManID, now, decimal.RequireFromString("0.10"))
	s.Require().NoError(err)

	s.updateStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateDeliveryStatusCommand) bool {
		return cmd.Principal().UserID.IsEqual(s.deliveryManID) && cmd.Status() == order.Delivered
	})).Return(o, nil).Once()

	rec := s.do(http.MethodPut, "/api/v1/delivery", map[string]any{
		"orderId": o.ID().String(),
		"status":  "delivered",
	}, s.token(s.deliveryManID, user.DeliveryMan))

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var view map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	s.Equal(true, view["isPaid"])
	s.Equal("5.6", view["deliveryEarnings"])

	count, err := testutil.GatherAndCount(s.registry, "storefront_deliveries_completed_total")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ServerTestSuite) TestUpdateDeliveryStatus_InvalidTransition() {
	s.updateStatus.On("Handle", mock.Anything, mock.Anything).Return(nil, order.ErrInvalidTransition).Once()

	rec := s.do(http.MethodPut, "/api/v1/delivery", map[string]any{
		"orderId": kernel.NewUUID().String(),
		"status":  "out_for_delivery",
	}, s.token(s.deliveryManID, user.DeliveryMan))

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestUpdateDeliveryStatus_UnknownStatus() {
	rec := s.do(http.MethodPut, "/api/v1/delivery", map[string]any{
		"orderId": kernel.NewUUID().String(),
		"status":  "teleported",
	}, s.token(s.deliveryManID, user.DeliveryMan))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.updateStatus.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestSetAvailability() {
	s.Run("flag is required", func() {
		rec := s.do(http.MethodPatch, "/api/v1/delivery/availability", map[string]any{}, s.token(s.deliveryManID, user.DeliveryMan))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("switch off", func() {
		profile, err := deliveryman.NewDeliveryMan(s.deliveryManID, "Bilal", "bilal@example.com", mustArea(s.T(), "Lahore"))
		s.Require().NoError(err)
		profile.SetAvailability(false)
		s.setAvailability.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetAvailabilityCommand) bool {
			return !cmd.Available()
		})).Return(profile, nil).Once()

		rec := s.do(http.MethodPatch, "/api/v1/delivery/availability", map[string]any{
			"availableForDelivery": false,
		}, s.token(s.deliveryManID, user.DeliveryMan))

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"availableForDelivery":false`)
		s.Contains(rec.Body.String(), `"assignedOrders":[]`)
	})
}

func (s *ServerTestSuite) TestReturns() {
	o := newTestOrder(s.T(), s.customerID)

	s.Run("customer requests", func() {
		s.requestReturn.On("Handle", mock.Anything, mock.Anything).Return(o, nil).Once()

		rec := s.do(http.MethodPost, "/api/v1/orders/return", map[string]any{
			"orderId": o.ID().String(),
			"reason":  "wrong size",
		}, s.token(s.customerID, user.Customer))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("window expired", func() {
		s.requestReturn.ExpectedCalls = nil
		s.requestReturn.On("Handle", mock.Anything, mock.Anything).Return(nil, order.ErrReturnWindowExpired).Once()

		rec := s.do(http.MethodPost, "/api/v1/orders/return", map[string]any{
			"orderId": o.ID().String(),
			"reason":  "wrong size",
		}, s.token(s.customerID, user.Customer))

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("admin approves with pickup date", func() {
		pickup := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
		s.processReturn.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ProcessReturnCommand) bool {
			return cmd.Status() == order.ReturnApproved && cmd.ScheduledDate() != nil && cmd.ScheduledDate().Equal(pickup)
		})).Return(o, nil).Once()

		rec := s.do(http.MethodPatch, "/api/v1/delivery/return-orders", map[string]any{
			"orderId":       o.ID().String(),
			"status":        "approved",
			"scheduledDate": pickup.Format(time.RFC3339),
		}, s.token(s.adminID, user.Admin))

		s.Equal(http.StatusOK, rec.Code)
		s.processReturn.AssertExpectations(s.T())
	})

	s.Run("pending is not a processing target", func() {
		rec := s.do(http.MethodPatch, "/api/v1/delivery/return-orders", map[string]any{
			"orderId": o.ID().String(),
			"status":  "pending",
		}, s.token(s.deliveryManID, user.DeliveryMan))

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ServerTestSuite) TestValidateCoupon_IsPublic() {
	s.validateCoupon.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ValidateCouponQuery) bool {
		return q.Code() == "summer10" && q.Total().Equal(decimal.RequireFromString("120"))
	})).Return(queries.CouponPreview{
		Code:           "SUMMER10",
		DiscountType:   "percentage",
		DiscountAmount: decimal.NewFromInt(10),
		Discount:       decimal.NewFromInt(12),
		TotalAfter:     decimal.NewFromInt(108),
	}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/coupons/validate?code=summer10&total=120", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totalAfterDiscount":"108"`)
}

func (s *ServerTestSuite) TestValidateCoupon_BadTotal() {
	rec := s.do(http.MethodGet, "/api/v1/coupons/validate?code=SUMMER10&total=lots", nil, "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestCouponCRUD() {
	admin := s.token(s.adminID, user.Admin)
	limit := 3
	start := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	body := map[string]any{
		"code":           "winter",
		"discountType":   "fixed",
		"discountAmount": "15",
		"startDate":      start.Format(time.RFC3339),
		"endDate":        start.Add(48 * time.Hour).Format(time.RFC3339),
		"usageLimit":     limit,
	}

	c, err := coupon.NewCoupon(kernel.NewUUID(), coupon.Params{
		Code: "winter", DiscountType: coupon.Fixed, DiscountAmount: decimal.NewFromInt(15),
		StartDate: start, EndDate: start.Add(48 * time.Hour), UsageLimit: &limit, IsActive: true,
	})
	s.Require().NoError(err)

	s.Run("create defaults to active", func() {
		s.createCoupon.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCouponCommand) bool {
			return cmd.Params().IsActive && cmd.Params().DiscountType == coupon.Fixed
		})).Return(c, nil).Once()

		rec := s.do(http.MethodPost, "/api/v1/coupons", body, admin)

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"code":"WINTER"`)
	})

	s.Run("duplicate code", func() {
		s.createCoupon.ExpectedCalls = nil
		s.createCoupon.On("Handle", mock.Anything, mock.Anything).Return(nil, coupon.ErrCouponCodeTaken).Once()

		rec := s.do(http.MethodPost, "/api/v1/coupons", body, admin)

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown discount type", func() {
		bad := map[string]any{"code": "x", "discountType": "bogus"}
		rec := s.do(http.MethodPost, "/api/v1/coupons", bad, admin)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("update", func() {
		s.updateCoupon.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateCouponCommand) bool {
			return cmd.ID().IsEqual(c.ID())
		})).Return(c, nil).Once()

		rec := s.do(http.MethodPut, "/api/v1/coupons/"+c.ID().String(), body, admin)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("update with malformed id", func() {
		rec := s.do(http.MethodPut, "/api/v1/coupons/not-a-uuid", body, admin)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("delete", func() {
		s.deleteCoupon.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := s.do(http.MethodDelete, "/api/v1/coupons/"+c.ID().String(), nil, admin)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("list", func() {
		s.listCoupons.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListCouponsQuery) bool {
			return q.ActiveOnly()
		})).Return([]queries.CouponView{newCouponView(c)}, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/coupons?activeOnly=true", nil, admin)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"usageLimit":3`)
	})

	s.Run("list without flag includes inactive", func() {
		s.listCoupons.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListCouponsQuery) bool {
			return !q.ActiveOnly()
		})).Return([]queries.CouponView(nil), nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/coupons", nil, admin)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("list with malformed flag", func() {
		rec := s.do(http.MethodGet, "/api/v1/coupons?activeOnly=maybe", nil, admin)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ServerTestSuite) TestSellerAnalytics() {
	s.Run("seller sees own figures", func() {
		s.sellerAnalytics.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.SellerAnalyticsQuery) bool {
			return q.SellerID().IsEqual(s.sellerID)
		})).Return(queries.SellerAnalytics{Revenue: decimal.Zero}, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/seller/analytics?sellerId="+kernel.NewUUID().String(), nil, s.token(s.sellerID, user.Seller))

		s.Equal(http.StatusOK, rec.Code)
		s.sellerAnalytics.AssertExpectations(s.T())
	})

	s.Run("admin must name a seller", func() {
		rec := s.do(http.MethodGet, "/api/v1/seller/analytics", nil, s.token(s.adminID, user.Admin))

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ServerTestSuite) TestDeliveryManViews() {
	s.dmOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.DeliveryManOrdersQuery) bool {
		return q.DeliveryManID().IsEqual(s.deliveryManID) && q.IncludeDelivered()
	})).Return([]queries.OrderView(nil), nil).Once()
	s.dmProfile.On("Handle", mock.Anything, mock.Anything).Return(queries.DeliveryManProfileView{}, deliveryman.ErrDeliveryManNotFound).Once()

	token := s.token(s.deliveryManID, user.DeliveryMan)

	rec := s.do(http.MethodGet, "/api/v1/delivery/orders?includeDelivered=true", nil, token)
	s.Equal(http.StatusOK, rec.Code)

	s.dmOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.DeliveryManOrdersQuery) bool {
		return q.DeliveryManID().IsEqual(s.deliveryManID) && !q.IncludeDelivered()
	})).Return([]queries.OrderView(nil), nil).Once()

	rec = s.do(http.MethodGet, "/api/v1/delivery/orders", nil, token)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
	s.dmOrders.AssertExpectations(s.T())

	rec = s.do(http.MethodGet, "/api/v1/delivery/profile", nil, token)
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusTeapot, statusFor(echo.NewHTTPError(http.StatusTeapot)))
	assert.Equal(t, http.StatusBadRequest, statusFor(errors.Join(order.ErrInvalidTransition, coupon.ErrMinimumPurchaseNotMet)))
	assert.Equal(t, http.StatusForbidden, statusFor(errs.NewForbiddenError("process return")))
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("load: %w", deliveryman.ErrDeliveryManNotFound)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(order.ErrOrderIsNotConstructed))
}

func mustArea(t *testing.T, name string) kernel.Area {
	t.Helper()
	area, err := kernel.NewArea(name)
	require.NoError(t, err)
	return area
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/user"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func loadOpenAPIDocument(t *testing.T) *openapi3.T {
	t.Helper()

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var v2 openapi2.T
	require.NoError(t, json.Unmarshal([]byte(raw), &v2))

	doc, err := openapi2conv.ToV3(&v2)
	require.NoError(t, err)
	require.NoError(t, openapi3.NewLoader().ResolveRefsIn(doc, nil))
	return doc
}

func TestOpenAPIDocumentIsValid(t *testing.T) {
	doc := loadOpenAPIDocument(t)

	require.NoError(t, doc.Validate(context.Background()))
}

func TestOpenAPIDocumentCoversEveryRoute(t *testing.T) {
	doc := loadOpenAPIDocument(t)
	router := NewRouter(NewServer(Handlers{}, nil), NewAuthenticator(testSecret), nil)

	methods := map[string]bool{
		http.MethodGet: true, http.MethodPost: true, http.MethodPut: true,
		http.MethodPatch: true, http.MethodDelete: true,
	}
	for _, route := range router.Routes() {
		if !methods[route.Method] || !strings.HasPrefix(route.Path, APIPrefix+"/") {
			continue
		}

		path := strings.TrimPrefix(route.Path, APIPrefix)
		path = strings.ReplaceAll(path, ":id", "{id}")

		item := doc.Paths.Find(path)
		require.NotNil(t, item, "path %s is not documented", path)
		require.NotNil(t, item.GetOperation(route.Method), "%s %s is not documented", route.Method, path)
	}
}

// matchesDocument validates a response body against the documented schema.
func (s *ServerTestSuite) matchesDocument(doc *openapi3.T, method, path string, status int, body []byte) {
	item := doc.Paths.Find(path)
	s.Require().NotNil(item, path)
	op := item.GetOperation(method)
	s.Require().NotNil(op, method+" "+path)

	response := op.Responses.Status(status)
	s.Require().NotNil(response, "%s %s does not document %d", method, path, status)
	media := response.Value.Content.Get("application/json")
	s.Require().NotNil(media)

	var decoded any
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Require().NoError(media.Schema.Value.VisitJSON(decoded), string(body))
}

func (s *ServerTestSuite) TestResponsesMatchOpenAPIDocument() {
	doc := loadOpenAPIDocument(s.T())

	created := newTestOrder(s.T(), s.customerID)
	s.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(commands.CreateOrderResult{Order: created, Created: true}, nil).Once()
	rec := s.do(http.MethodPost, "/api/v1/orders", s.validOrderRequest(), s.token(s.customerID, user.Customer))
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.matchesDocument(doc, http.MethodPost, "/orders", http.StatusCreated, rec.Body.Bytes())

	s.listOrders.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.OrderView{queries.NewOrderView(created)}, nil).Once()
	rec = s.do(http.MethodGet, "/api/v1/orders", nil, s.token(s.customerID, user.Customer))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.matchesDocument(doc, http.MethodGet, "/orders", http.StatusOK, rec.Body.Bytes())

	s.validateCoupon.On("Handle", mock.Anything, mock.Anything).Return(queries.CouponPreview{
		Code:           "SUMMER10",
		DiscountType:   coupon.Percentage.String(),
		DiscountAmount: decimal.NewFromInt(10),
		Discount:       decimal.NewFromInt(5),
		TotalAfter:     decimal.NewFromInt(45),
	}, nil).Once()
	rec = s.do(http.MethodGet, "/api/v1/coupons/validate?code=SUMMER10&total=50", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.matchesDocument(doc, http.MethodGet, "/coupons/validate", http.StatusOK, rec.Body.Bytes())

	s.validateCoupon.On("Handle", mock.Anything, mock.Anything).
		Return(queries.CouponPreview{}, coupon.ErrCouponNotFound).Once()
	rec = s.do(http.MethodGet, "/api/v1/coupons/validate?code=NOPE&total=50", nil, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.matchesDocument(doc, http.MethodGet, "/coupons/validate", http.StatusNotFound, rec.Body.Bytes())

	rec = s.do(http.MethodGet, "/api/v1/orders", nil, "")
	s.matchesDocument(doc, http.MethodGet, "/orders", http.StatusUnauthorized, rec.Body.Bytes())
}

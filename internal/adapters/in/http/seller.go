package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// SellerAnalytics handles GET /api/v1/seller/analytics. Sellers see their own
// figures; admins pass sellerId.
//
//	@Summary	Sales figures of a seller
//	@Tags		seller
//	@Produce	json
//	@Security	BearerAuth
//	@Param		sellerId	query		string	false	"seller to report on, admins only"
//	@Success	200			{object}	queries.SellerAnalytics
//	@Failure	400			{object}	Error
//	@Router		/seller/analytics [get]
func (s *Server) SellerAnalytics(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	sellerID := principal.UserID
	if principal.IsAdmin() {
		var raw string
		if err := runtime.BindQueryParameter("form", true, true, "sellerId", c.QueryParams(), &raw); err != nil {
			return badRequest(err.Error())
		}
		if sellerID, err = kernel.UUIDFromString(raw); err != nil {
			return err
		}
	}

	query, err := queries.NewSellerAnalyticsQuery(sellerID)
	if err != nil {
		return err
	}

	analytics, err := s.handlers.SellerAnalytics.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analytics)
}

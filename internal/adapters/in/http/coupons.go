package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// CreateCoupon handles POST /api/v1/coupons.
//
//	@Summary	Create a coupon
//	@Tags		coupons
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		coupon	body		CouponRequest	true	"coupon attributes"
//	@Success	201		{object}	queries.CouponView
//	@Failure	400		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/coupons [post]
func (s *Server) CreateCoupon(c echo.Context) error {
	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	params, err := req.params()
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateCoupon.Handle(c.Request().Context(), commands.NewCreateCouponCommand(params))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newCouponView(created))
}

// ListCoupons handles GET /api/v1/coupons.
//
//	@Summary	List coupons
//	@Tags		coupons
//	@Produce	json
//	@Security	BearerAuth
//	@Param		activeOnly	query	bool	false	"hide inactive coupons"
//	@Success	200			{array}	queries.CouponView
//	@Router		/coupons [get]
func (s *Server) ListCoupons(c echo.Context) error {
	var activeOnly *bool
	if err := runtime.BindQueryParameter("form", true, false, "activeOnly", c.QueryParams(), &activeOnly); err != nil {
		return badRequest(err.Error())
	}

	views, err := s.handlers.ListCoupons.Handle(c.Request().Context(), queries.NewListCouponsQuery(isSet(activeOnly)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(views))
}

// ValidateCoupon handles GET /api/v1/coupons/validate - previews the
// discount without redeeming the coupon.
//
//	@Summary	Preview a coupon discount
//	@Tags		coupons
//	@Produce	json
//	@Param		code	query		string	true	"coupon code"
//	@Param		total	query		string	true	"candidate order total"
//	@Success	200		{object}	queries.CouponPreview
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/coupons/validate [get]
func (s *Server) ValidateCoupon(c echo.Context) error {
	var code, rawTotal string
	if err := runtime.BindQueryParameter("form", true, true, "code", c.QueryParams(), &code); err != nil {
		return badRequest(err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, true, "total", c.QueryParams(), &rawTotal); err != nil {
		return badRequest(err.Error())
	}

	total, err := decimal.NewFromString(rawTotal)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("total", err)
	}

	query, err := queries.NewValidateCouponQuery(code, total)
	if err != nil {
		return err
	}

	preview, err := s.handlers.ValidateCoupon.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, preview)
}

// UpdateCoupon handles PUT /api/v1/coupons/:id.
//
//	@Summary	Replace a coupon's attributes
//	@Tags		coupons
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"coupon id"
//	@Param		coupon	body		CouponRequest	true	"coupon attributes"
//	@Success	200		{object}	queries.CouponView
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/coupons/{id} [put]
func (s *Server) UpdateCoupon(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	params, err := req.params()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCouponCommand(id, params)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateCoupon.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCouponView(updated))
}

// DeleteCoupon handles DELETE /api/v1/coupons/:id (soft delete).
//
//	@Summary	Delete a coupon
//	@Tags		coupons
//	@Security	BearerAuth
//	@Param		id	path	string	true	"coupon id"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/coupons/{id} [delete]
func (s *Server) DeleteCoupon(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCouponCommand(id)
	if err != nil {
		return err
	}

	if err := s.handlers.DeleteCoupon.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"net/http"
	"strings"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// AssignOrder handles PATCH /api/v1/admin/orders/assign. newStatus
// "assigned" (the default) assigns, "unassigned" takes the order back.
//
//	@Summary	Assign or unassign a deliveryman
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		AssignRequest	true	"order and deliveryman"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/admin/orders/assign [patch]
func (s *Server) AssignOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	status := order.Assigned
	if strings.TrimSpace(req.NewStatus) != "" {
		if status, err = order.ParseDeliveryStatus(req.NewStatus); err != nil {
			return err
		}
	}

	ctx := c.Request().Context()
	switch status {
	case order.Assigned:
		cmd, err := commands.NewAssignDeliveryManCommand(
			domainID(req.OrderID), domainIDPtr(req.DeliveryManID), req.DeliveryManEmail,
			principal.UserID, deliveryman.AdminPolicy(),
		)
		if err != nil {
			return err
		}
		if err := s.handlers.AssignDeliveryMan.Handle(ctx, cmd); err != nil {
			return err
		}
		s.recorder.OrderAssigned("admin")
		return c.JSON(http.StatusOK, MessageResponse{Message: "order assigned"})

	case order.Unassigned:
		cmd, err := commands.NewUnassignDeliveryManCommand(domainID(req.OrderID), principal.UserID)
		if err != nil {
			return err
		}
		if err := s.handlers.UnassignDeliveryMan.Handle(ctx, cmd); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "order unassigned"})

	default:
		return errs.NewValueIsInvalidError("newStatus")
	}
}

// ListEligibleDeliveryMen handles GET /api/v1/admin/delivery-men/eligible.
//
//	@Summary	List deliverymen who can take an order in an area
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		area	query		string	true	"order city"
//	@Success	200		{array}		queries.EligibleDeliveryManView
//	@Failure	400		{object}	Error
//	@Router		/admin/delivery-men/eligible [get]
func (s *Server) ListEligibleDeliveryMen(c echo.Context) error {
	var area string
	if err := runtime.BindQueryParameter("form", true, true, "area", c.QueryParams(), &area); err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewListEligibleDeliveryMenQuery(area)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListEligible.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(views))
}

// OnboardDeliveryMan handles POST /api/v1/admin/delivery-men.
//
//	@Summary	Create a delivery profile for an existing user
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		OnboardDeliveryManRequest	true	"user and area"
//	@Success	201		{object}	DeliveryManResponse
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/admin/delivery-men [post]
func (s *Server) OnboardDeliveryMan(c echo.Context) error {
	var req OnboardDeliveryManRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewOnboardDeliveryManCommand(domainID(req.UserID), req.Area)
	if err != nil {
		return err
	}

	created, err := s.handlers.OnboardDeliveryMan.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newDeliveryManResponse(created))
}

// UpdateDeliveryStatus handles PUT /api/v1/delivery - the assigned
// deliveryman advances an order.
//
//	@Summary	Advance an assigned order
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		DeliveryStatusRequest	true	"order and next status"
//	@Success	200		{object}	queries.OrderView
//	@Failure	400		{object}	Error
//	@Failure	403		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/delivery [put]
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req DeliveryStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	status, err := order.ParseDeliveryStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(principal, domainID(req.OrderID), status)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	if updated.DeliveryStatus() == order.Delivered {
		s.recorder.DeliveryCompleted()
	}
	return c.JSON(http.StatusOK, queries.NewOrderView(updated))
}

// DeliveryManOrders handles GET /api/v1/delivery/orders.
//
//	@Summary	Orders held by the calling deliveryman
//	@Tags		delivery
//	@Produce	json
//	@Security	BearerAuth
//	@Param		includeDelivered	query		bool	false	"also list delivered orders"
//	@Success	200					{array}		queries.OrderView
//	@Router		/delivery/orders [get]
func (s *Server) DeliveryManOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var includeDelivered *bool
	if err := runtime.BindQueryParameter("form", true, false, "includeDelivered", c.QueryParams(), &includeDelivered); err != nil {
		return badRequest(err.Error())
	}

	query, err := queries.NewDeliveryManOrdersQuery(principal.UserID, isSet(includeDelivered))
	if err != nil {
		return err
	}

	views, err := s.handlers.DeliveryManOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(views))
}

// DeliveryManProfile handles GET /api/v1/delivery/profile.
//
//	@Summary	Earnings and delivery history of the caller
//	@Tags		delivery
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	queries.DeliveryManProfileView
//	@Failure	404	{object}	Error
//	@Router		/delivery/profile [get]
func (s *Server) DeliveryManProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewDeliveryManProfileQuery(principal.UserID)
	if err != nil {
		return err
	}

	view, err := s.handlers.DeliveryManProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// SetAvailability handles PATCH /api/v1/delivery/availability.
//
//	@Summary	Switch the caller on or off for new assignments
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		AvailabilityRequest	true	"availability"
//	@Success	200		{object}	DeliveryManResponse
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Router		/delivery/availability [patch]
func (s *Server) SetAvailability(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.AvailableForDelivery == nil {
		return errs.NewValueIsRequiredError("availableForDelivery")
	}

	updated, err := s.handlers.SetAvailability.Handle(
		c.Request().Context(), commands.NewSetAvailabilityCommand(principal, *req.AvailableForDelivery),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDeliveryManResponse(updated))
}

// ProcessReturn handles PATCH /api/v1/delivery/return-orders.
//
//	@Summary	Approve, reject or complete a return
//	@Tags		returns
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		ProcessReturnRequest	true	"order, next return status, pickup date"
//	@Success	200		{object}	queries.OrderView
//	@Failure	400		{object}	Error
//	@Failure	403		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/delivery/return-orders [patch]
func (s *Server) ProcessReturn(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req ProcessReturnRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	status, err := order.ParseReturnStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewProcessReturnCommand(principal, domainID(req.OrderID), status, req.ScheduledDate)
	if err != nil {
		return err
	}

	updated, err := s.handlers.ProcessReturn.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, queries.NewOrderView(updated))
}

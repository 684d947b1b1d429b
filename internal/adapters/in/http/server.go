// Package http exposes the workflow service to the rendering layer: order
// list and detail view models, the single action dispatch endpoint, profile
// and support data, and the session-teardown event.
package http

import (
	"errors"
	"net/http"

	"courierapp/internal/core/application/usecases/commands"
	"courierapp/internal/core/application/usecases/queries"
	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// courierIDHeader carries the authenticated courier's identity, resolved by
// the gateway in front of this service.
const courierIDHeader = "X-Courier-Id"

// SupportContacts are the support screen links served from configuration.
type SupportContacts struct {
	Phone    string
	Email    string
	Telegram string
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	dispatchActionHandler  commands.DispatchOrderActionCommandHandler
	teardownSessionHandler commands.TeardownSessionCommandHandler

	// Query handlers
	getOrdersHandler  queries.GetOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	getProfileHandler queries.GetProfileQueryHandler

	support SupportContacts
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	dispatchActionHandler commands.DispatchOrderActionCommandHandler,
	teardownSessionHandler commands.TeardownSessionCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
	support SupportContacts,
) *Server {
	return &Server{
		dispatchActionHandler:  dispatchActionHandler,
		teardownSessionHandler: teardownSessionHandler,
		getOrdersHandler:       getOrdersHandler,
		getOrderHandler:        getOrderHandler,
		getProfileHandler:      getProfileHandler,
		support:                support,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/actions", s.DispatchOrderAction)
	api.GET("/profile", s.GetProfile)
	api.GET("/support", s.GetSupport)
	api.POST("/session/teardown", s.TeardownSession)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// GetOrders handles GET /api/v1/orders - the list screen fetch.
// Optional query parameters: status, courierId. Both are forwarded to the
// backend, which owns filtering.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Unknown status filter: "+raw)
		}
		status = &parsed
	}

	courierID, err := optionalUUID(ctx.QueryParam("courierId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid courierId filter")
	}

	viewerID, err := viewerFromHeader(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid "+courierIDHeader+" header")
	}

	query, err := queries.NewGetOrdersQuery(status, courierID, viewerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orders := make([]OrderSummary, len(resp.Orders))
	for i, summary := range resp.Orders {
		orders[i] = toOrderSummaryDTO(summary)
	}
	return ctx.JSON(http.StatusOK, OrdersResponse{Orders: orders, Total: resp.Total})
}

// GetOrder handles GET /api/v1/orders/:id - the detail screen fetch.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	viewerID, err := viewerFromHeader(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid "+courierIDHeader+" header")
	}

	query, err := queries.NewGetOrderQuery(orderID, viewerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailDTO(resp))
}

// DispatchOrderAction handles POST /api/v1/orders/:id/actions - the single
// mutation endpoint behind every order button.
func (s *Server) DispatchOrderAction(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	viewerID, err := viewerFromHeader(ctx)
	if err != nil || viewerID == nil {
		return errorJSON(ctx, http.StatusBadRequest, "Missing or invalid "+courierIDHeader+" header")
	}

	var req DispatchActionRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewDispatchOrderActionCommand(
		orderID, req.Action, *viewerID, req.Confirmed, req.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.dispatchActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	// Re-render from the backend-confirmed snapshot, as the viewer sees it.
	summary, err := queries.NewOrderSummaryForViewer(*updated, viewerID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderSummaryDTO(summary))
}

// GetProfile handles GET /api/v1/profile - the profile screen fetch.
func (s *Server) GetProfile(ctx echo.Context) error {
	resp, err := s.getProfileHandler.Handle(ctx.Request().Context(), queries.NewGetProfileQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfileDTO(resp))
}

// GetSupport handles GET /api/v1/support - support contact links.
func (s *Server) GetSupport(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Support{
		Phone:    s.support.Phone,
		Email:    s.support.Email,
		Telegram: s.support.Telegram,
	})
}

// TeardownSession handles POST /api/v1/session/teardown - the logout event
// that wipes session-scoped local state.
func (s *Server) TeardownSession(ctx echo.Context) error {
	cmd := commands.NewTeardownSessionCommand()
	if err := s.teardownSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// errorResponse maps application errors onto the endpoint contract:
// 409 duplicate submission, 422 unconfirmed destructive action, 403 guard
// violation, 404 unknown order, 400 unknown action or status, 502 backend
// failure.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrMutationInFlight):
		return errorJSON(ctx, http.StatusConflict, "Status mutation already in flight for this order")
	case errors.Is(err, commands.ErrConfirmationRequired):
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Action requires explicit confirmation")
	case errors.Is(err, commands.ErrUnknownAction):
		return errorJSON(ctx, http.StatusBadRequest, "Unknown order action")
	case errors.Is(err, errs.ErrUnauthorized):
		return errorJSON(ctx, http.StatusForbidden, "Action is not permitted for this courier")
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, errs.ErrInvalidState):
		return errorJSON(ctx, http.StatusBadRequest, "Order status is not actionable")
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrRequestFailed):
		return errorJSON(ctx, http.StatusBadGateway, "Order backend is unavailable")
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// viewerFromHeader resolves the optional authenticated courier identity.
func viewerFromHeader(ctx echo.Context) (*kernel.UUID, error) {
	return optionalUUID(ctx.Request().Header.Get(courierIDHeader))
}

func optionalUUID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

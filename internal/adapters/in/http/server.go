// Package http serves the loan audit API over echo. Handlers translate wire
// types from the servers package into commands and queries and map domain
// errors to status codes.
package http

import (
	"log/slog"
	"net/http"
	"strings"

	"loanaudit/internal/core/application/usecases/commands"
	"loanaudit/internal/core/application/usecases/queries"
	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	applyAuditActionHandler commands.ApplyAuditActionCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	getInboxHandler      queries.GetInboxQueryHandler
	countByStatusHandler queries.CountByStatusQueryHandler

	clock  kernel.Clock
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	applyAuditActionHandler commands.ApplyAuditActionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getInboxHandler queries.GetInboxQueryHandler,
	countByStatusHandler queries.CountByStatusQueryHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *Server {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createOrderHandler:      createOrderHandler,
		applyAuditActionHandler: applyAuditActionHandler,
		getOrderHandler:         getOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		getInboxHandler:         getInboxHandler,
		countByStatusHandler:    countByStatusHandler,
		clock:                   clock,
		logger:                  logger.With("component", "http"),
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var statuses []order.Status
	if params.Status != nil {
		statuses = make([]order.Status, 0, len(*params.Status))
		for _, raw := range *params.Status {
			status, err := order.ParseStatus(string(raw))
			if err != nil {
				return s.fail(ctx, err)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewListOrdersQuery(statuses, deref(params.Search))
	if err != nil {
		return s.fail(ctx, err)
	}

	summaries, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body", nil)
	}

	cmd, err := commands.NewCreateOrderCommand(order.GenerateID(s.clock.Now()), toProfile(body))
	if err != nil {
		return s.fail(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.createOrderHandler.Handle(reqCtx, cmd); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(cmd.OrderID(), order.Initiator)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.getOrderHandler.Handle(reqCtx, query)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+cmd.OrderID().String())
	return ctx.JSON(http.StatusCreated, toOrder(created.Order))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID, params servers.GetOrderParams) error {
	orderID, err := order.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	role, err := order.ParseRole(string(params.Role))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, role)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(resp))
}

// ApplyAction handles POST /api/v1/orders/{id}/actions. The response shows the
// order as the acting role sees it after the transition.
func (s *Server) ApplyAction(ctx echo.Context, id servers.OrderID) error {
	var body servers.ApplyActionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body", nil)
	}

	orderID, err := order.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	role, err := order.ParseRole(string(body.Role))
	if err != nil {
		return s.fail(ctx, err)
	}
	action, err := order.ParseAction(string(body.Action))
	if err != nil {
		return s.fail(ctx, err)
	}

	expectedVersion := 0
	if body.ExpectedVersion != nil {
		expectedVersion = *body.ExpectedVersion
	}

	cmd, err := commands.NewApplyAuditActionCommand(orderID, role, action, toProposal(body.Proposal), expectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.applyAuditActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(queries.GetOrderQueryResponse{
		Order:   updated,
		View:    selectView(role, updated),
		Actions: order.AvailableActions(role, updated.Status()),
	}))
}

// GetInbox handles GET /api/v1/inbox.
func (s *Server) GetInbox(ctx echo.Context, params servers.GetInboxParams) error {
	role, err := order.ParseRole(string(params.Role))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetInboxQuery(role)
	if err != nil {
		return s.fail(ctx, err)
	}

	summaries, err := s.getInboxHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	resp, err := s.countByStatusHandler.Handle(ctx.Request().Context(), queries.NewCountByStatusQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStats(resp))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

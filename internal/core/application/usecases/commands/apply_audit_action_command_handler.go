package commands

import (
	"context"
	"log/slog"

	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/domain/services"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/pkg/errs"
)

// ApplyAuditActionCommandHandler loads an order, runs the audit workflow and
// stores the result with a version check. After a successful commit it
// publishes an OrderStatusChanged event.
//
// Example:
//
//	handler := NewApplyAuditActionCommandHandler(uowFactory, kernel.SystemClock{}, publisher, logger)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the role cannot do this now
//	case errors.Is(err, errs.ErrValidation):
//	    // limit or product missing
//	}
type ApplyAuditActionCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	workflow   services.AuditWorkflow
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewApplyAuditActionCommandHandler wires the handler. A nil publisher skips
// event publication.
func NewApplyAuditActionCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ApplyAuditActionCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return ApplyAuditActionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		workflow:   services.NewAuditWorkflow(clock),
		publisher:  publisher,
		logger:     logger.With("component", "apply_audit_action"),
	}
}

// Handle applies the action and returns the stored order.
//
// Errors are returned unchanged from the layer that produced them:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.VersionConflictError when ExpectedVersion is stale or a concurrent
//     writer committed first
//   - *errs.InvalidTransitionError and *errs.ValidationError from the workflow
func (h *ApplyAuditActionCommandHandler) Handle(ctx context.Context, cmd ApplyAuditActionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if expected := cmd.ExpectedVersion(); expected > 0 && expected != current.Version() {
		return nil, errs.NewVersionConflictError(cmd.OrderID().String(), expected, current.Version())
	}

	next, err := h.workflow.Apply(current, cmd.Role(), cmd.Action(), cmd.Proposal())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, next); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publish(ctx, current, next, cmd)
	return next, nil
}

func (h *ApplyAuditActionCommandHandler) publish(ctx context.Context, from, to *order.Order, cmd ApplyAuditActionCommand) {
	if h.publisher == nil {
		return
	}

	event := ports.OrderStatusChanged{
		EventID:    kernel.NewUUID(),
		OrderID:    to.ID(),
		From:       from.Status(),
		To:         to.Status(),
		Role:       cmd.Role(),
		Action:     cmd.Action(),
		Version:    to.Version(),
		OccurredAt: h.clock.Now(),
	}

	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order status change",
			"order_id", to.ID().String(),
			"to", to.Status().String(),
			"error", err,
		)
		return
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", to.ID().String(),
		"from", from.Status().String(),
		"to", to.Status().String(),
		"version", to.Version(),
	)
}

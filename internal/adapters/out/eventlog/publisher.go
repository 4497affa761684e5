// Package eventlog publishes workflow events as structured log records. It is
// the publisher used when no message broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"loanaudit/internal/core/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger.With("component", "event_log")}
}

// PublishOrderStatusChanged writes one info record and never fails.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	p.logger.InfoContext(ctx, "OrderStatusChanged",
		"event_id", event.EventID.String(),
		"order_id", event.OrderID.String(),
		"from", event.From.String(),
		"to", event.To.String(),
		"role", event.Role.String(),
		"action", event.Action.String(),
		"version", event.Version,
		"occurred_at", event.OccurredAt,
	)
	return nil
}

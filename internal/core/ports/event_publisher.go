package ports

import (
	"context"
	"time"

	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/core/domain/model/order"
)

// OrderStatusChanged is emitted after a workflow transition was committed.
type OrderStatusChanged struct {
	EventID    kernel.UUID
	OrderID    order.ID
	From       order.Status
	To         order.Status
	Role       order.Role
	Action     order.Action
	Version    int
	OccurredAt time.Time
}

// EventPublisher delivers workflow events to interested parties. Publication
// happens after commit, so a failure never undoes a transition.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChanged) error
}

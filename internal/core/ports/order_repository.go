// Package ports defines the contracts between the loan audit core and its
// adapters: persistence of order aggregates, the read model used by queries,
// transaction boundaries and the publication of workflow events.
package ports

import (
	"context"

	"loanaudit/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and its ID unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists an order returned by the workflow. The write succeeds only
	// if the stored version is exactly aggregate.Version()-1, otherwise it fails
	// with *errs.VersionConflictError and nothing is written. A missing order
	// yields *errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns *errs.ObjectNotFoundError if there is none.
	Get(ctx context.Context, id order.ID) (*order.Order, error)
}

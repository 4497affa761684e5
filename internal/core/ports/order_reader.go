package ports

import (
	"context"
	"slices"

	"loanaudit/internal/core/domain/model/order"
)

// OrderFilter narrows an order listing. The zero value matches every order.
type OrderFilter struct {
	// Statuses keeps orders in any of the listed statuses; empty keeps all.
	Statuses []order.Status

	// Search is matched against the customer name (substring) or the order ID
	// (case-insensitive substring). Blank matches everything.
	Search string
}

// Matches applies the filter to a single order.
func (f OrderFilter) Matches(o *order.Order) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, o.Status()) {
		return false
	}
	return o.MatchesSearch(f.Search)
}

// OrderReader is the read model behind the query handlers. It never takes part
// in a unit of work and always sees committed state.
type OrderReader interface {
	// Get retrieves an order by its identifier.
	// Returns *errs.ObjectNotFoundError if there is none.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// List returns the orders matching filter, newest first. Orders created at
	// the same instant are ordered by ID.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// CountByStatus returns the number of orders per status. Statuses without
	// orders are absent from the map.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}

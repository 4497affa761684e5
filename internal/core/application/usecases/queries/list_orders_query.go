package queries

import (
	"errors"
	"strings"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists orders with an optional status filter and search term.
//
// Example:
//
//	query, _ := NewListOrdersQuery([]order.Status{order.PendingAudit}, "王")
//	summaries, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	statuses []order.Status
	search   string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery rejects invalid statuses. No statuses means all of them.
func NewListOrdersQuery(statuses []order.Status, search string) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	if err := query.setStatuses(statuses); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}

func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q *ListOrdersQuery) setStatuses(statuses []order.Status) error {
	errList := make([]error, 0, len(statuses))
	for _, status := range statuses {
		errList = append(errList, status.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	q.statuses = append([]order.Status(nil), statuses...)
	return nil
}

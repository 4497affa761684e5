package queries

import (
	"errors"

	"loanaudit/internal/pkg/guard"
)

var (
	ErrCountByStatusQueryIsNotConstructed = errors.New(
		"CountByStatusQuery must be created via NewCountByStatusQuery constructor",
	)
)

// CountByStatusQuery counts orders per status. It is parameterless.
type CountByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountByStatusQuery() CountByStatusQuery {
	return CountByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountByStatusQueryIsNotConstructed)
}

package queries

import (
	"errors"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/pkg/guard"
)

var (
	ErrGetInboxQueryIsNotConstructed = errors.New(
		"GetInboxQuery must be created via NewGetInboxQuery constructor",
	)
)

// GetInboxQuery retrieves the home work queue of a role.
type GetInboxQuery struct { //nolint:recvcheck //using for validation
	role order.Role

	guard guard.ConstructorGuard
}

func NewGetInboxQuery(role order.Role) (GetInboxQuery, error) {
	if err := role.Validate(); err != nil {
		return GetInboxQuery{}, err
	}
	return GetInboxQuery{role: role, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInboxQuery) Validate() error {
	return q.guard.Validate(ErrGetInboxQueryIsNotConstructed)
}

func (q GetInboxQuery) Role() order.Role {
	return q.role
}

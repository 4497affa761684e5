package queries

import (
	"errors"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order as seen by a role: the order itself, the
// panel the role should get and the actions it may take.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, order.Manager)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if resp.View == services.ViewManagerReview {
//	    // render approve and reject, resp.Actions lists both
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID order.ID
	role    order.Role

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID order.ID, role order.Role) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setRole(role),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() order.ID {
	return q.orderID
}

func (q GetOrderQuery) Role() order.Role {
	return q.role
}

func (q *GetOrderQuery) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}

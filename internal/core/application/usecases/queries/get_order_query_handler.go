package queries

import (
	"context"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/domain/services"
	"loanaudit/internal/core/ports"
)

// GetOrderQueryResponse is an order snapshot plus what the role can do with it.
// Actions is never nil.
type GetOrderQueryResponse struct {
	Order   *order.Order
	View    services.ViewKind
	Actions []order.Action
}

// GetOrderQueryHandler reads one order and decides its presentation.
type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns *errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:   o,
		View:    services.SelectView(query.Role(), o.Status()),
		Actions: order.AvailableActions(query.Role(), o.Status()),
	}, nil
}

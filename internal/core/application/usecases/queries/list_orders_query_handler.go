package queries

import (
	"context"

	"loanaudit/internal/core/ports"
)

// ListOrdersQueryHandler returns order summaries, newest first.
type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx, ports.OrderFilter{
		Statuses: query.Statuses(),
		Search:   query.Search(),
	})
	if err != nil {
		return nil, err
	}

	return summarizeAll(orders), nil
}

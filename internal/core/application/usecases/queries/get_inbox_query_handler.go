package queries

import (
	"context"

	"loanaudit/internal/core/ports"
)

// GetInboxQueryHandler lists the orders waiting on a role:
//   - initiator: orders to share and approved results
//   - delivery: orders to audit
//   - manager: proposals to decide
type GetInboxQueryHandler struct {
	reader ports.OrderReader
}

func NewGetInboxQueryHandler(reader ports.OrderReader) GetInboxQueryHandler {
	return GetInboxQueryHandler{reader: reader}
}

func (h GetInboxQueryHandler) Handle(ctx context.Context, query GetInboxQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx, ports.OrderFilter{Statuses: query.Role().InboxStatuses()})
	if err != nil {
		return nil, err
	}

	return summarizeAll(orders), nil
}

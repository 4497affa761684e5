package queries

import (
	"context"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/ports"
)

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status order.Status
	Count  int
}

// CountByStatusQueryResponse lists every valid status in lifecycle order,
// including those without orders.
type CountByStatusQueryResponse struct {
	Counts []StatusCount
	Total  int
}

// Count returns the number of orders in status.
func (r CountByStatusQueryResponse) Count(status order.Status) int {
	for _, c := range r.Counts {
		if c.Status == status {
			return c.Count
		}
	}
	return 0
}

type CountByStatusQueryHandler struct {
	reader ports.OrderReader
}

func NewCountByStatusQueryHandler(reader ports.OrderReader) CountByStatusQueryHandler {
	return CountByStatusQueryHandler{reader: reader}
}

func (h CountByStatusQueryHandler) Handle(ctx context.Context, query CountByStatusQuery) (CountByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountByStatusQueryResponse{}, err
	}

	counts, err := h.reader.CountByStatus(ctx)
	if err != nil {
		return CountByStatusQueryResponse{}, err
	}

	resp := CountByStatusQueryResponse{Counts: make([]StatusCount, 0, len(order.AllStatuses()))}
	for _, status := range order.AllStatuses() {
		resp.Counts = append(resp.Counts, StatusCount{Status: status, Count: counts[status]})
		resp.Total += counts[status]
	}
	return resp, nil
}

// Package queries contains read operations of the loan audit system.
// Implements the Query side of CQRS: each query is a value object created
// through a constructor, and each handler reads committed state through
// ports.OrderReader without opening a unit of work.
package queries

import (
	"time"

	"loanaudit/internal/core/domain/model/order"
)

// OrderSummary is the card shown for an order in lists and inboxes.
type OrderSummary struct {
	ID           order.ID
	CustomerName string
	Amount       string
	LoanType     string
	Channel      string
	Status       order.Status
	Version      int
	CreatedAt    time.Time
}

func summarize(o *order.Order) OrderSummary {
	profile := o.Profile()
	return OrderSummary{
		ID:           o.ID(),
		CustomerName: profile.CustomerName,
		Amount:       profile.Amount,
		LoanType:     profile.LoanType,
		Channel:      profile.Channel,
		Status:       o.Status(),
		Version:      o.Version(),
		CreatedAt:    o.CreatedAt(),
	}
}

func summarizeAll(orders []*order.Order) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, summarize(o))
	}
	return summaries
}

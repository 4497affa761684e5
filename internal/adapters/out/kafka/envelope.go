// Package kafka publishes workflow events to a Kafka topic. Each event is a
// JSON envelope keyed by order ID, so every change of one order lands on the
// same partition in commit order.
package kafka

import (
	"encoding/json"
	"time"

	"loanaudit/internal/core/ports"
)

const (
	EventOrderStatusChanged = "OrderStatusChanged"

	envelopeVersion = 1
)

// Envelope wraps every message on the topic.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// OrderStatusChangedPayload is the payload of an OrderStatusChanged envelope.
// Status, role and action use their wire names.
type OrderStatusChangedPayload struct {
	OrderID string `json:"order_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Role    string `json:"role"`
	Action  string `json:"action"`
	Version int    `json:"version"`
}

func newOrderStatusChangedEnvelope(producer string, event ports.OrderStatusChanged) (Envelope, error) {
	payload, err := json.Marshal(OrderStatusChangedPayload{
		OrderID: event.OrderID.String(),
		From:    event.From.String(),
		To:      event.To.String(),
		Role:    event.Role.String(),
		Action:  event.Action.String(),
		Version: event.Version,
	})
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:       event.EventID.String(),
		EventType:     EventOrderStatusChanged,
		EventVersion:  envelopeVersion,
		OccurredAt:    event.OccurredAt.UTC(),
		Producer:      producer,
		CorrelationID: event.OrderID.String(),
		Payload:       payload,
	}, nil
}

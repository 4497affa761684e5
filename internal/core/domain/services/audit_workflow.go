package services

import (
	"time"

	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/core/domain/model/order"
)

// AuditWorkflow is the domain service that moves an order through the
// initiator, delivery and manager hand-off.
//
// Business rules:
//   - only the (status, role, action) triples of the transition table are allowed
//   - delivery must provide a credit limit and a product with its proposal
//   - submittedAt and approvedAt are taken from the workflow's clock
//   - the order passed in is never modified, the caller persists the result
//
// Example usage:
//
//	workflow := services.NewAuditWorkflow(kernel.SystemClock{})
//	next, err := workflow.Apply(o, order.Manager, order.Approve, order.Proposal{})
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the manager cannot approve this order in its current status
//	    return
//	}
//	// next.Status() == order.AuditComplete
type AuditWorkflow struct {
	clock kernel.Clock
}

// NewAuditWorkflow creates a workflow reading timestamps from clock. A nil
// clock falls back to the system clock.
func NewAuditWorkflow(clock kernel.Clock) AuditWorkflow {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return AuditWorkflow{clock: clock}
}

// Apply runs action as role against o and returns the updated order.
//
// Returns:
//   - *order.Order: a new order with the next status, audit data and version
//   - error: *errs.InvalidTransitionError, *errs.ValidationError or
//     order.ErrOrderIsNotConstructed; o is unchanged in every case
func (w AuditWorkflow) Apply(o *order.Order, role order.Role, action order.Action, p order.Proposal) (*order.Order, error) {
	return order.ApplyAction(o, role, action, p, w.now())
}

// AvailableActions lists the actions role may apply to o right now.
func (w AuditWorkflow) AvailableActions(o *order.Order, role order.Role) []order.Action {
	if o.Validate() != nil {
		return []order.Action{}
	}
	return order.AvailableActions(role, o.Status())
}

func (w AuditWorkflow) now() time.Time {
	if w.clock == nil {
		return kernel.SystemClock{}.Now()
	}
	return w.clock.Now()
}

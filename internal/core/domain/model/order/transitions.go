package order

import (
	"errors"
	"time"

	"loanaudit/internal/pkg/errs"
)

var errAuditDataMissing = errors.New("audit data is missing")

type transitionKey struct {
	from   Status
	role   Role
	action Action
}

// effect computes the audit data after a transition. It must not modify current.
type effect func(current *AuditData, p Proposal, now time.Time) (*AuditData, error)

type transition struct {
	to     Status
	effect effect
}

// transitionTable is the whole workflow. A (status, role, action) triple that
// is not a key here is an invalid transition.
//
//	PendingUpload   + Initiator + Share          -> PendingAudit
//	PendingAudit    + Delivery  + SubmitProposal -> PendingApproval  (limit, product required)
//	PendingApproval + Manager   + Approve        -> AuditComplete    (approvedAt = now)
//	PendingApproval + Manager   + Reject         -> PendingAudit     (proposal kept, approvedAt cleared)
var transitionTable = map[transitionKey]transition{
	{PendingUpload, Initiator, Share}:        {to: PendingAudit, effect: keepAuditData},
	{PendingAudit, Delivery, SubmitProposal}: {to: PendingApproval, effect: submitProposal},
	{PendingApproval, Manager, Approve}:      {to: AuditComplete, effect: approveProposal},
	{PendingApproval, Manager, Reject}:       {to: PendingAudit, effect: rejectProposal},
}

// ApplyAction runs one workflow step and returns the resulting order. The input
// order is never modified: on error it is exactly as before, and on success the
// caller receives a new value with the next status, the new audit data and the
// version increased by one.
//
// Errors:
//   - *errs.InvalidTransitionError if the table has no entry for the order's
//     status, the role and the action (or approve/reject find no audit data)
//   - *errs.ValidationError if SubmitProposal is allowed but limit or product is empty
//   - ErrOrderIsNotConstructed for a nil or zero-value order
//
// now becomes submittedAt or approvedAt; pass the value of an injected clock.
func ApplyAction(o *Order, role Role, action Action, p Proposal, now time.Time) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	t, ok := transitionTable[transitionKey{from: o.status, role: role, action: action}]
	if !ok {
		return nil, errs.NewInvalidTransitionError(o.status.String(), role.String(), action.String())
	}

	auditData, err := t.effect(o.auditData, p, now)
	if err != nil {
		if errors.Is(err, errAuditDataMissing) {
			return nil, errs.NewInvalidTransitionErrorWithCause(o.status.String(), role.String(), action.String(), err)
		}
		return nil, err
	}

	if err = checkState(t.to, auditData); err != nil {
		return nil, err
	}

	next := o.Clone()
	next.status = t.to
	next.auditData = auditData
	next.version++
	return next, nil
}

// CanPerform reports whether role may apply action to an order in status.
func CanPerform(role Role, status Status, action Action) bool {
	_, ok := transitionTable[transitionKey{from: status, role: role, action: action}]
	return ok
}

// AvailableActions lists, in workflow order, the actions role may apply to an
// order in status. Presentation offers exactly these.
func AvailableActions(role Role, status Status) []Action {
	actions := make([]Action, 0, 2)
	for _, action := range AllActions() {
		if CanPerform(role, status, action) {
			actions = append(actions, action)
		}
	}
	return actions
}

func keepAuditData(current *AuditData, _ Proposal, _ time.Time) (*AuditData, error) {
	return copyAuditData(current), nil
}

func submitProposal(_ *AuditData, p Proposal, now time.Time) (*AuditData, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	next := proposedAuditData(p.Normalize(), now)
	return &next, nil
}

func approveProposal(current *AuditData, _ Proposal, now time.Time) (*AuditData, error) {
	if current == nil {
		return nil, errAuditDataMissing
	}
	next := current.approved(now)
	return &next, nil
}

func rejectProposal(current *AuditData, _ Proposal, _ time.Time) (*AuditData, error) {
	if current == nil {
		return nil, errAuditDataMissing
	}
	next := current.withoutApproval()
	return &next, nil
}

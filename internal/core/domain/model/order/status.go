package order

import (
	"fmt"
	"strings"

	"loanaudit/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	PendingUpload ──> PendingAudit ──> PendingApproval ──> AuditComplete ──> Completed
//	                       ^                  │
//	                       └──── rejected ────┘
type Status int

const (
	// Unknown (0) catches uninitialized Status values.
	Unknown Status = iota

	// PendingUpload is the initial status; the initiator is still collecting documents.
	PendingUpload

	// PendingAudit means the order was shared and delivery must propose terms.
	PendingAudit

	// PendingApproval means delivery submitted a proposal and the manager must decide.
	PendingApproval

	// AuditComplete means the manager approved the proposal.
	AuditComplete

	// Completed is terminal and reached outside the audit workflow.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		PendingUpload:   "PENDING_UPLOAD",
		PendingAudit:    "PENDING_AUDIT",
		PendingApproval: "PENDING_APPROVAL",
		AuditComplete:   "AUDIT_COMPLETE",
		Completed:       "COMPLETED",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown falls back to the default label
	return map[Status]string{
		PendingUpload:   "待上传资料",
		PendingAudit:    "进行中：交付审核",
		PendingApproval: "待管理确认",
		AuditComplete:   "初审完成",
		Completed:       "已完成",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{PendingUpload, PendingAudit, PendingApproval, AuditComplete, Completed}
}

// ParseStatus accepts the wire names returned by String, case-insensitively.
func ParseStatus(s string) (Status, error) {
	wanted := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if status.String() == wanted {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if s < PendingUpload || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, e.g. "PENDING_AUDIT". Invalid values print as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the text shown on the order card.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "未知状态"
}

// TimelineStep returns the active step of the four-step progress bar
// (upload, audit, approval, complete). Completed and invalid statuses show the
// bar as finished.
func (s Status) TimelineStep() int {
	switch s {
	case PendingUpload:
		return 0
	case PendingAudit:
		return 1
	case PendingApproval:
		return 2
	default:
		return 3
	}
}

// RequiresAuditData reports whether an order in this status must carry a proposal.
func (s Status) RequiresAuditData() bool {
	return s == PendingApproval || s == AuditComplete || s == Completed
}

// IsApproved reports whether the manager has approved the proposal.
func (s Status) IsApproved() bool {
	return s == AuditComplete || s == Completed
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed
}

package order

import (
	"fmt"
	"strings"

	"loanaudit/internal/pkg/errs"
)

// Role is the capacity in which a user acts on an order. Roles are asserted by
// the caller; nothing in the domain authenticates them.
type Role int

const (
	UnknownRole Role = iota

	// Initiator originates an order and shares it for underwriting.
	Initiator

	// Delivery proposes a credit limit and a matching product.
	Delivery

	// Manager approves the proposal or rejects it back to delivery.
	Manager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Initiator:   "INITIATOR",
		Delivery:    "DELIVERY",
		Manager:     "MANAGER",
	}
}

// AllRoles lists the valid roles.
func AllRoles() []Role {
	return []Role{Initiator, Delivery, Manager}
}

// ParseRole accepts the wire names returned by String, case-insensitively.
func ParseRole(s string) (Role, error) {
	wanted := strings.ToUpper(strings.TrimSpace(s))
	for _, role := range AllRoles() {
		if role.String() == wanted {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r < Initiator || r > Manager {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the badge text of the role.
func (r Role) Label() string {
	switch r {
	case Initiator:
		return "发起人"
	case Delivery:
		return "交付"
	case Manager:
		return "管理员"
	default:
		return "未知角色"
	}
}

// InboxStatuses returns the statuses that put an order on the role's home
// work queue: the initiator follows orders it must share and results it gets
// back, delivery works the audit queue, the manager works the approval queue.
func (r Role) InboxStatuses() []Status {
	switch r {
	case Initiator:
		return []Status{PendingUpload, AuditComplete}
	case Delivery:
		return []Status{PendingAudit}
	case Manager:
		return []Status{PendingApproval}
	default:
		return nil
	}
}

// InInbox reports whether an order in status s belongs on the role's work queue.
func (r Role) InInbox(s Status) bool {
	for _, status := range r.InboxStatuses() {
		if status == s {
			return true
		}
	}
	return false
}

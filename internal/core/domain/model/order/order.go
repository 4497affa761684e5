package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loanaudit/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is one loan application and the aggregate root of the audit workflow.
//
// Order follows these invariants:
//   - the ID is valid and never changes
//   - audit data is absent while the status is PendingUpload
//   - audit data is present, with limit and product, from PendingApproval on
//   - approvedAt is set if and only if the status is AuditComplete or Completed
//   - status and audit data change only through ApplyAction
//
// Fields are private; every Order handed out by this package is a fresh value,
// so holders never observe each other's changes.
type Order struct {
	id        ID
	profile   Profile
	status    Status
	auditData *AuditData
	version   int
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order in PendingUpload with no audit data at version 1.
//
// Example:
//
//	o, err := order.NewOrder(order.GenerateID(now), profile, now)
//	if err != nil {
//	    // profile or id is invalid
//	}
func NewOrder(id ID, profile Profile, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), profile.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		profile:       profile,
		status:        PendingUpload,
		version:       1,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order loaded from storage or seed data and checks
// every invariant, so a corrupted row never enters the domain.
func RestoreOrder(
	id ID,
	profile Profile,
	status Status,
	auditData *AuditData,
	version int,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		profile.Validate(),
		checkState(status, auditData),
		checkVersion(version),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		profile:       profile,
		status:        status,
		auditData:     copyAuditData(auditData),
		version:       version,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() ID {
	return o.id
}

func (o *Order) Profile() Profile {
	return o.profile
}

func (o *Order) Status() Status {
	return o.status
}

// AuditData returns a copy of the attached audit data, nil before the first proposal.
func (o *Order) AuditData() *AuditData {
	return copyAuditData(o.auditData)
}

// Version increases by one with every accepted transition.
func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.auditData = copyAuditData(o.auditData)
	return &c
}

// MatchesSearch reports whether term occurs in the customer name, or
// case-insensitively in the order ID. An empty term matches everything.
func (o *Order) MatchesSearch(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(o.profile.CustomerName, term) ||
		strings.Contains(strings.ToLower(o.id.String()), strings.ToLower(term))
}

func checkState(status Status, auditData *AuditData) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if auditData == nil {
		if status.RequiresAuditData() {
			return errs.NewValueIsRequiredErrorWithCause(
				"audit data",
				fmt.Errorf("%s requires audit data", status),
			)
		}
		return nil
	}

	if status == PendingUpload {
		return errs.NewValueIsInvalidErrorWithCause(
			"audit data",
			fmt.Errorf("%s must not carry audit data", status),
		)
	}
	if auditData.limit == "" || auditData.product == "" {
		return errs.NewValueIsRequiredErrorWithCause("audit data", errors.New("limit and product are required"))
	}
	if status.IsApproved() != auditData.IsApproved() {
		return errs.NewValueIsInvalidErrorWithCause(
			"audit data",
			fmt.Errorf("approvedAt must be set if and only if the order is approved, status is %s", status),
		)
	}
	return nil
}

func checkVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsOutOfRangeError("version", version, 1, "unbounded")
	}
	return nil
}

func copyAuditData(a *AuditData) *AuditData {
	if a == nil {
		return nil
	}
	c := *a
	c.submittedAt = copyTime(a.submittedAt)
	c.approvedAt = copyTime(a.approvedAt)
	return &c
}

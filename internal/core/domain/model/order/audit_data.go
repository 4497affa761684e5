package order

import (
	"errors"
	"strings"
	"time"

	"loanaudit/internal/pkg/errs"
)

// AuditData holds the credit terms delivery proposed for an order and, once the
// manager agrees, when they were approved. It is a value object: every change
// produces a new AuditData.
type AuditData struct {
	limit       string
	product     string
	remark      string
	submittedAt *time.Time
	approvedAt  *time.Time
}

// RestoreAuditData rebuilds audit data read from storage. Limit and product are
// mandatory; the remark and both timestamps are optional.
func RestoreAuditData(limit, product, remark string, submittedAt, approvedAt *time.Time) (AuditData, error) {
	var missing []error
	if strings.TrimSpace(limit) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("limit"))
	}
	if strings.TrimSpace(product) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("product"))
	}
	if err := errors.Join(missing...); err != nil {
		return AuditData{}, err
	}

	return AuditData{
		limit:       limit,
		product:     product,
		remark:      remark,
		submittedAt: copyTime(submittedAt),
		approvedAt:  copyTime(approvedAt),
	}, nil
}

// Limit is the proposed credit limit as entered, e.g. "500万".
func (a AuditData) Limit() string {
	return a.limit
}

// Product is the matched loan product, e.g. "工行经营贷".
func (a AuditData) Product() string {
	return a.product
}

func (a AuditData) Remark() string {
	return a.remark
}

// SubmittedAt is when delivery last submitted the proposal, nil if unknown.
func (a AuditData) SubmittedAt() *time.Time {
	return copyTime(a.submittedAt)
}

// ApprovedAt is when the manager approved the proposal, nil until then.
func (a AuditData) ApprovedAt() *time.Time {
	return copyTime(a.approvedAt)
}

func (a AuditData) IsApproved() bool {
	return a.approvedAt != nil
}

func proposedAuditData(p Proposal, now time.Time) AuditData {
	return AuditData{
		limit:       p.Limit,
		product:     p.Product,
		remark:      p.Remark,
		submittedAt: &now,
	}
}

func (a AuditData) approved(now time.Time) AuditData {
	a.approvedAt = &now
	return a
}

func (a AuditData) withoutApproval() AuditData {
	a.approvedAt = nil
	return a
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

package order

import (
	"strings"

	"loanaudit/internal/pkg/errs"
)

// Proposal is the payload delivery submits with SubmitProposal. Other actions
// ignore it.
type Proposal struct {
	Limit   string
	Product string
	Remark  string
}

// Normalize trims surrounding whitespace from every field.
func (p Proposal) Normalize() Proposal {
	return Proposal{
		Limit:   strings.TrimSpace(p.Limit),
		Product: strings.TrimSpace(p.Product),
		Remark:  strings.TrimSpace(p.Remark),
	}
}

// Validate returns an *errs.ValidationError naming every empty mandatory field.
func (p Proposal) Validate() error {
	n := p.Normalize()

	var fields []string
	if n.Limit == "" {
		fields = append(fields, "limit")
	}
	if n.Product == "" {
		fields = append(fields, "product")
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

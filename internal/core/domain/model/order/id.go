package order

import (
	"fmt"
	"strings"
	"time"

	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("order ID must be created via NewID or GenerateID")

// ID is the opaque, immutable identifier of an order, e.g. "OD20251120001".
type ID struct {
	value string
}

// NewID wraps an existing identifier. Blank values and values containing
// whitespace are rejected.
func NewID(value string) (ID, error) {
	if value == "" {
		return ID{}, ErrIDIsNotConstructed
	}
	if strings.ContainsAny(value, " \t\r\n") {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("order ID", fmt.Errorf("%q contains whitespace", value))
	}
	return ID{value: value}, nil
}

// GenerateID returns a fresh order number: "OD", the creation date and a random
// eight-character suffix.
func GenerateID(now time.Time) ID {
	return ID{value: "OD" + now.Format("20060102") + kernel.NewUUID().ShortCode()}
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}

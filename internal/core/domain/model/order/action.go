package order

import (
	"fmt"
	"strings"

	"loanaudit/internal/pkg/errs"
)

// Action is a user-triggered workflow step.
type Action int

const (
	UnknownAction Action = iota
	Share
	SubmitProposal
	Approve
	Reject
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction:  "unknown",
		Share:          "share",
		SubmitProposal: "submitProposal",
		Approve:        "approve",
		Reject:         "reject",
	}
}

// AllActions lists the valid actions in the order they appear in the workflow.
func AllActions() []Action {
	return []Action{Share, SubmitProposal, Approve, Reject}
}

// ParseAction accepts the wire names returned by String, case-insensitively.
func ParseAction(s string) (Action, error) {
	wanted := strings.TrimSpace(s)
	for _, action := range AllActions() {
		if strings.EqualFold(action.String(), wanted) {
			return action, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not a valid action", s))
}

func (a Action) Validate() error {
	if a < Share || a > Reject {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

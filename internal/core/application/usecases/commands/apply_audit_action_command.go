package commands

import (
	"errors"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/pkg/errs"
	"loanaudit/internal/pkg/guard"
)

var (
	ErrApplyAuditActionCommandIsNotConstructed = errors.New(
		"ApplyAuditActionCommand must be created via NewApplyAuditActionCommand constructor",
	)
)

// ApplyAuditActionCommand asks to run one workflow step on a stored order on
// behalf of a role. ExpectedVersion is the version the caller last saw; zero
// skips the check.
//
// Example:
//
//	cmd, err := NewApplyAuditActionCommand(orderID, order.Delivery, order.SubmitProposal,
//	    order.Proposal{Limit: "500万", Product: "工行经营贷"}, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrVersionConflict) {
//	    // someone else moved the order first, reload and retry
//	}
type ApplyAuditActionCommand struct { //nolint:recvcheck //using for validation
	orderID         order.ID
	role            order.Role
	action          order.Action
	proposal        order.Proposal
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewApplyAuditActionCommand validates the shape of the request. Whether the
// action is allowed is decided by the workflow, not here.
func NewApplyAuditActionCommand(
	orderID order.ID,
	role order.Role,
	action order.Action,
	proposal order.Proposal,
	expectedVersion int,
) (ApplyAuditActionCommand, error) {
	cmd := ApplyAuditActionCommand{
		proposal: proposal,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
		cmd.setAction(action),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return ApplyAuditActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyAuditActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyAuditActionCommandIsNotConstructed)
}

func (c ApplyAuditActionCommand) OrderID() order.ID {
	return c.orderID
}

func (c ApplyAuditActionCommand) Role() order.Role {
	return c.role
}

func (c ApplyAuditActionCommand) Action() order.Action {
	return c.action
}

// Proposal is only read by SubmitProposal.
func (c ApplyAuditActionCommand) Proposal() order.Proposal {
	return c.proposal
}

func (c ApplyAuditActionCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *ApplyAuditActionCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyAuditActionCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *ApplyAuditActionCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *ApplyAuditActionCommand) setExpectedVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("expected version", version, 0, "unbounded")
	}

	c.expectedVersion = version
	return nil
}

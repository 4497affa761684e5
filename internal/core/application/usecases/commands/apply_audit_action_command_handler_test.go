package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loanaudit/internal/core/application/usecases/commands"
	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var (
	proposalSubmittedAt = time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	decisionAt          = time.Date(2025, 11, 20, 16, 30, 0, 0, time.UTC)
)

func pendingApprovalOrder(t *testing.T) *order.Order {
	t.Helper()

	id, err := order.NewID("OD20251120003")
	require.NoError(t, err)
	auditData, err := order.RestoreAuditData("750万", "兴业银行快易贷", "", &proposalSubmittedAt, nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, validProfile(), order.PendingApproval, &auditData, 3, createdAt)
	require.NoError(t, err)
	return o
}

type applyFixture struct {
	repo      *MockOrderRepository
	uow       *MockOrderUoW
	factory   *MockOrderUoWFactory
	publisher *MockEventPublisher
	handler   commands.ApplyAuditActionCommandHandler
}

func newApplyFixture() *applyFixture {
	f := &applyFixture{
		repo:      new(MockOrderRepository),
		uow:       new(MockOrderUoW),
		factory:   new(MockOrderUoWFactory),
		publisher: new(MockEventPublisher),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewApplyAuditActionCommandHandler(f.factory, kernel.NewFixedClock(decisionAt), f.publisher, nil)
	return f
}

func (f *applyFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestApplyAuditActionCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	current := pendingApprovalOrder(t)
	cmd, err := commands.NewApplyAuditActionCommand(current.ID(), order.Manager, order.Approve, order.Proposal{}, 3)
	require.NoError(t, err)

	f := newApplyFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.repo).Once(),
		f.repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		f.repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.AuditComplete && o.Version() == 4
		})).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.MatchedBy(func(e ports.OrderStatusChanged) bool {
		return e.OrderID.IsEqual(current.ID()) &&
			e.From == order.PendingApproval &&
			e.To == order.AuditComplete &&
			e.Role == order.Manager &&
			e.Action == order.Approve &&
			e.Version == 4 &&
			e.OccurredAt.Equal(decisionAt) &&
			e.EventID.Validate() == nil
	})).Return(nil).Once()

	updated, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.AuditComplete, updated.Status())
	assert.Equal(t, decisionAt, *updated.AuditData().ApprovedAt())
	assert.Equal(t, "750万", updated.AuditData().Limit())
	assert.Equal(t, order.PendingApproval, current.Status(), "loaded order must not change")
	f.assertExpectations(t)
}

func TestApplyAuditActionCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	current := pendingApprovalOrder(t)
	cmd, err := commands.NewApplyAuditActionCommand(current.ID(), order.Manager, order.Reject, order.Proposal{}, 2)
	require.NoError(t, err)

	f := newApplyFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	updated, err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionConflict)
	var conflict *errs.VersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.Expected)
	assert.Equal(t, 3, conflict.Actual)
	assert.Nil(t, updated)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestApplyAuditActionCommandHandler_Handle_WorkflowErrors(t *testing.T) {
	testCases := []struct {
		name     string
		role     order.Role
		action   order.Action
		expected error
	}{
		{"approve as initiator", order.Initiator, order.Approve, errs.ErrInvalidTransition},
		{"submit while awaiting approval", order.Delivery, order.SubmitProposal, errs.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			current := pendingApprovalOrder(t)
			cmd, err := commands.NewApplyAuditActionCommand(current.ID(), tc.role, tc.action, order.Proposal{}, 0)
			require.NoError(t, err)

			f := newApplyFixture()
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.On("OrderRepository").Return(f.repo).Once()
			f.repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
			f.uow.On("Rollback", ctx).Return(nil).Once()

			_, err = f.handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, tc.expected)
			f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything)
			f.assertExpectations(t)
		})
	}
}

func TestApplyAuditActionCommandHandler_Handle_ProposalValidation(t *testing.T) {
	ctx := t.Context()
	id, err := order.NewID("OD20251120001")
	require.NoError(t, err)
	current, err := order.RestoreOrder(id, validProfile(), order.PendingAudit, nil, 2, createdAt)
	require.NoError(t, err)

	cmd, err := commands.NewApplyAuditActionCommand(id, order.Delivery, order.SubmitProposal,
		order.Proposal{Limit: "", Product: "工行经营贷"}, 2)
	require.NoError(t, err)

	f := newApplyFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, id).Return(current, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, order.PendingAudit, current.Status())
	f.assertExpectations(t)
}

func TestApplyAuditActionCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id, err := order.NewID("OD404")
	require.NoError(t, err)
	cmd, err := commands.NewApplyAuditActionCommand(id, order.Initiator, order.Share, order.Proposal{}, 0)
	require.NoError(t, err)

	f := newApplyFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestApplyAuditActionCommandHandler_Handle_ConcurrentWriter(t *testing.T) {
	ctx := t.Context()
	current := pendingApprovalOrder(t)
	cmd, err := commands.NewApplyAuditActionCommand(current.ID(), order.Manager, order.Approve, order.Proposal{}, 0)
	require.NoError(t, err)

	f := newApplyFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	f.repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewVersionConflictError(current.ID().String(), 3, 4)).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionConflict)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestApplyAuditActionCommandHandler_Handle_PublishFailureIsNotReturned(t *testing.T) {
	ctx := t.Context()
	current := pendingApprovalOrder(t)
	cmd, err := commands.NewApplyAuditActionCommand(current.ID(), order.Manager, order.Reject, order.Proposal{}, 0)
	require.NoError(t, err)

	f := newApplyFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	f.repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.publisher.On("PublishOrderStatusChanged", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	updated, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PendingAudit, updated.Status())
	assert.Equal(t, "750万", updated.AuditData().Limit())
	assert.Nil(t, updated.AuditData().ApprovedAt())
	f.assertExpectations(t)
}

func TestApplyAuditActionCommandHandler_Handle_WithoutPublisher(t *testing.T) {
	ctx := t.Context()
	current := pendingApprovalOrder(t)
	cmd, err := commands.NewApplyAuditActionCommand(current.ID(), order.Manager, order.Approve, order.Proposal{}, 3)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewApplyAuditActionCommandHandler(factory, kernel.NewFixedClock(decisionAt), nil, nil)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Version())
	uow.AssertExpectations(t)
}

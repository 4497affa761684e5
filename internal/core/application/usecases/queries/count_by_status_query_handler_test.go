package queries_test

import (
	"errors"
	"testing"

	"loanaudit/internal/core/application/usecases/queries"
	"loanaudit/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByStatusQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("CountByStatus", ctx).Return(map[order.Status]int{
		order.PendingAudit:    2,
		order.PendingApproval: 1,
		order.Completed:       4,
	}, nil).Once()

	resp, err := queries.NewCountByStatusQueryHandler(reader).Handle(ctx, queries.NewCountByStatusQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.StatusCount{
		{Status: order.PendingUpload, Count: 0},
		{Status: order.PendingAudit, Count: 2},
		{Status: order.PendingApproval, Count: 1},
		{Status: order.AuditComplete, Count: 0},
		{Status: order.Completed, Count: 4},
	}, resp.Counts)
	assert.Equal(t, 7, resp.Total)
	assert.Equal(t, 2, resp.Count(order.PendingAudit))
	assert.Equal(t, 0, resp.Count(order.Unknown))
	reader.AssertExpectations(t)
}

func TestCountByStatusQueryHandler_Handle_Errors(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	handler := queries.NewCountByStatusQueryHandler(reader)

	_, err := handler.Handle(ctx, queries.CountByStatusQuery{})
	require.ErrorIs(t, err, queries.ErrCountByStatusQueryIsNotConstructed)

	reader.On("CountByStatus", ctx).Return(nil, errors.New("db down")).Once()
	_, err = handler.Handle(ctx, queries.NewCountByStatusQuery())
	require.EqualError(t, err, "db down")
}

package memory_test

import (
	"testing"
	"time"

	"loanaudit/internal/adapters/out/memory"
	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, id, customer string, createdAt time.Time) *order.Order {
	t.Helper()

	orderID, err := order.NewID(id)
	require.NoError(t, err)

	o, err := order.NewOrder(orderID, order.Profile{CustomerName: customer, Amount: "100万"}, createdAt)
	require.NoError(t, err)
	return o
}

func seed(t *testing.T, store *memory.Store, orders ...*order.Order) {
	t.Helper()

	repo := memory.NewUnitOfWorkFactory(store).Create().OrderRepository()
	for _, o := range orders {
		require.NoError(t, repo.Add(t.Context(), o))
	}
}

func TestStore_Get(t *testing.T) {
	store := memory.NewStore()
	o := newOrder(t, "OD20251120001", "王某某", baseTime)
	seed(t, store, o)

	t.Run("should return a copy", func(t *testing.T) {
		got, err := store.Get(t.Context(), o.ID())

		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
		assert.NotSame(t, o, got)
		assert.Equal(t, 1, got.Version())
	})

	t.Run("should report missing orders", func(t *testing.T) {
		missing, err := order.NewID("OD404")
		require.NoError(t, err)

		_, err = store.Get(t.Context(), missing)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStore_List(t *testing.T) {
	store := memory.NewStore()
	first := newOrder(t, "OD20251120001", "王某某", baseTime)
	sameTimeB := newOrder(t, "OD20251120003", "李某某", baseTime.Add(time.Hour))
	sameTimeA := newOrder(t, "OD20251120002", "赵某某", baseTime.Add(time.Hour))
	seed(t, store, first, sameTimeB, sameTimeA)

	t.Run("should sort newest first then by ID", func(t *testing.T) {
		list, err := store.List(t.Context(), ports.OrderFilter{})

		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "OD20251120002", list[0].ID().String())
		assert.Equal(t, "OD20251120003", list[1].ID().String())
		assert.Equal(t, "OD20251120001", list[2].ID().String())
	})

	t.Run("should filter by search term", func(t *testing.T) {
		list, err := store.List(t.Context(), ports.OrderFilter{Search: "赵"})

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "OD20251120002", list[0].ID().String())
	})

	t.Run("should filter by status", func(t *testing.T) {
		list, err := store.List(t.Context(), ports.OrderFilter{Statuses: []order.Status{order.PendingAudit}})

		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestStore_CountByStatus(t *testing.T) {
	store := memory.NewStore()
	seed(t, store,
		newOrder(t, "OD1", "a", baseTime),
		newOrder(t, "OD2", "b", baseTime),
	)

	counts, err := store.CountByStatus(t.Context())

	require.NoError(t, err)
	assert.Equal(t, map[order.Status]int{order.PendingUpload: 2}, counts)
	assert.Equal(t, 2, store.Len())
}

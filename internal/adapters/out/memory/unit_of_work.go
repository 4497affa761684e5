package memory

import (
	"context"
	"errors"
	"sync"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over a shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers writes between Begin and Commit and applies them to the
// store at once. Without Begin, repository writes go straight to the store.
//
// Versions are checked twice: when a write is buffered, so that a stale order
// fails early, and again on Commit, so that a concurrent commit in between
// still yields a conflict instead of a lost update.
type UnitOfWork struct {
	store *Store

	mu      sync.Mutex
	active  bool
	pending []change
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active {
		return nil
	}
	u.active = true
	u.pending = nil
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return ErrNoActiveTransaction
	}

	pending := u.pending
	u.active = false
	u.pending = nil
	return u.store.apply(pending)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	u.pending = nil
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

// OrderRepository is the ports.OrderRepository view of a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	if _, err := r.uow.lookup(ctx, aggregate.ID()); err == nil {
		return errAlreadyExists(aggregate.ID().String())
	}
	return r.uow.write(change{kind: changeAdd, order: aggregate.Clone()})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	current, err := r.uow.lookup(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if current.Version() != aggregate.Version()-1 {
		return errs.NewVersionConflictError(aggregate.ID().String(), aggregate.Version()-1, current.Version())
	}
	return r.uow.write(change{kind: changeUpdate, order: aggregate.Clone()})
}

// Get sees the writes buffered in this unit of work.
func (r *OrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	return r.uow.lookup(ctx, id)
}

// lookup must be called with mu held.
func (u *UnitOfWork) lookup(ctx context.Context, id order.ID) (*order.Order, error) {
	for i := len(u.pending) - 1; i >= 0; i-- {
		if u.pending[i].order.ID().IsEqual(id) {
			return u.pending[i].order.Clone(), nil
		}
	}
	return u.store.Get(ctx, id)
}

// write must be called with mu held.
func (u *UnitOfWork) write(c change) error {
	if !u.active {
		return u.store.apply([]change{c})
	}
	u.pending = append(u.pending, c)
	return nil
}

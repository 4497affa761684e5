// Package memory keeps orders in process memory. It is the default store of
// the service and backs both the command side (through UnitOfWork) and the
// query side (Store implements ports.OrderReader).
//
// Orders are cloned on the way in and out, so callers never share state with
// the store. Writes are applied under a single lock, and every update is a
// compare-and-swap on the order version.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/pkg/errs"
)

var _ ports.OrderReader = (*Store)(nil)

// Store holds the committed orders.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

func NewStore() *Store {
	return &Store{orders: map[string]*order.Order{}}
}

// Get returns a copy of the committed order.
func (s *Store) Get(_ context.Context, id order.ID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o.Clone(), nil
}

// List returns copies of the matching orders, newest first and then by ID.
func (s *Store) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	s.mu.RLock()
	list := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if filter.Matches(o) {
			list = append(list, o.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt().Equal(list[j].CreatedAt()) {
			return list[i].CreatedAt().After(list[j].CreatedAt())
		}
		return list[i].ID().String() < list[j].ID().String()
	})
	return list, nil
}

func (s *Store) CountByStatus(_ context.Context) (map[order.Status]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[order.Status]int)
	for _, o := range s.orders {
		counts[o.Status()]++
	}
	return counts, nil
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

type changeKind int

const (
	changeAdd changeKind = iota + 1
	changeUpdate
)

type change struct {
	kind  changeKind
	order *order.Order
}

// apply writes changes all or nothing.
func (s *Store) apply(changes []change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// versions tracks the state as if the earlier changes were already applied.
	versions := make(map[string]int, len(changes))
	versionOf := func(id string) (int, bool) {
		if v, ok := versions[id]; ok {
			return v, true
		}
		if o, ok := s.orders[id]; ok {
			return o.Version(), true
		}
		return 0, false
	}

	for _, c := range changes {
		id := c.order.ID().String()
		current, exists := versionOf(id)

		switch c.kind {
		case changeAdd:
			if exists {
				return errAlreadyExists(id)
			}
		case changeUpdate:
			if !exists {
				return errs.NewObjectNotFoundError("order", id)
			}
			if current != c.order.Version()-1 {
				return errs.NewVersionConflictError(id, c.order.Version()-1, current)
			}
		}
		versions[id] = c.order.Version()
	}

	for _, c := range changes {
		s.orders[c.order.ID().String()] = c.order.Clone()
	}
	return nil
}

func errAlreadyExists(id string) error {
	return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", id))
}

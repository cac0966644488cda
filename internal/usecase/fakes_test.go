package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

// memStore is an in-memory OrderStore with the same semantics as the
// blob-backed one: most-recent-first, append-only, typed errors,
// mutations serialized under a mutex.
type memStore struct {
	mu     sync.Mutex
	orders []entity.Order
}

func (m *memStore) Append(_ context.Context, o entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.orders {
		if existing.ID == o.ID {
			return fmt.Errorf("order %s: %w", o.ID, ErrDuplicateOrder)
		}
	}
	m.orders = append([]entity.Order{o}, m.orders...)
	return nil
}

func (m *memStore) ListAll(_ context.Context) ([]entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *memStore) Get(_ context.Context, id string) (entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, ErrUnknownOrder
}

func (m *memStore) FindActiveForTable(_ context.Context, tableID string) (entity.Order, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.TableID == tableID && o.Active() {
			return o, true, nil
		}
	}
	return entity.Order{}, false, nil
}

func (m *memStore) UpdateStatusIf(_ context.Context, id string, from, to entity.OrderStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.orders {
		if o.ID == id {
			if o.Status != from {
				return false, nil
			}
			m.orders[i].Status = to
			return true, nil
		}
	}
	return false, nil
}

var _ OrderStore = (*memStore)(nil)

// memMenu is an in-memory MenuRepo.
type memMenu struct {
	data entity.Restaurant
}

func (m *memMenu) Restaurant(_ context.Context) (entity.Restaurant, error) {
	return m.data, nil
}

func (m *memMenu) Replace(_ context.Context, r entity.Restaurant) error {
	m.data = r
	return nil
}

func (m *memMenu) AddTable(_ context.Context, label string) (entity.Restaurant, error) {
	if m.data.HasTable(label) {
		return entity.Restaurant{}, ErrDuplicateTable
	}
	m.data.Tables = append(m.data.Tables, label)
	return m.data, nil
}

func (m *memMenu) FindItem(_ context.Context, id string) (entity.MenuItem, bool, error) {
	item, ok := m.data.FindItem(id)
	return item, ok, nil
}

func (m *memMenu) FindCategory(_ context.Context, id string) (entity.Category, bool, error) {
	cat, ok := m.data.FindCategory(id)
	return cat, ok, nil
}

var _ MenuRepo = (*memMenu)(nil)

package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/blob"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/usecase"
)

// OrderStore keeps every order ever created, most recent first, and
// commits the full list through its blob on every mutation. Orders
// are never deleted.
type OrderStore struct {
	blob blob.Blob
	log  *slog.Logger

	mu     sync.Mutex
	orders []entity.Order
}

// NewOrderStore loads the last committed snapshot. A blob that cannot
// be parsed falls back to an empty store rather than failing startup.
func NewOrderStore(ctx context.Context, b blob.Blob, log *slog.Logger) (*OrderStore, error) {
	s := &OrderStore{blob: b, log: log}

	data, ok, err := b.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if ok {
		if err := json.Unmarshal(data, &s.orders); err != nil {
			log.Warn("orders blob unreadable, starting empty", "error", err)
			s.orders = nil
		}
	}
	return s, nil
}

func (s *OrderStore) Append(ctx context.Context, o entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orders {
		if existing.ID == o.ID {
			return fmt.Errorf("order %s: %w", o.ID, usecase.ErrDuplicateOrder)
		}
	}
	s.orders = append([]entity.Order{o}, s.orders...)
	if err := s.commit(ctx); err != nil {
		s.orders = s.orders[1:]
		return err
	}
	return nil
}

func (s *OrderStore) ListAll(_ context.Context) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *OrderStore) Get(_ context.Context, id string) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, fmt.Errorf("order %s: %w", id, usecase.ErrUnknownOrder)
}

// FindActiveForTable returns the table's most recently created order
// that is neither served nor cancelled. The list is most-recent-first,
// so the first match is the deterministic winner when a table somehow
// has several active orders.
func (s *OrderStore) FindActiveForTable(_ context.Context, tableID string) (entity.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.TableID == tableID && o.Active() {
			return o, true, nil
		}
	}
	return entity.Order{}, false, nil
}

// UpdateStatusIf is a compare-and-set: the write lands only if the
// order still holds from when the lock is taken. A concurrent actor
// that moved the order first (a cancel racing a start) makes the
// loser's write a clean miss instead of overwriting a later state.
func (s *OrderStore) UpdateStatusIf(ctx context.Context, id string, from, to entity.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID != id {
			continue
		}
		if o.Status != from {
			return false, nil
		}
		s.orders[i].Status = to
		if err := s.commit(ctx); err != nil {
			s.orders[i].Status = from
			return false, err
		}
		return true, nil
	}
	// absent behaves like a status mismatch, same as a zero-row update
	return false, nil
}

// commit persists the whole list. Callers hold s.mu.
func (s *OrderStore) commit(ctx context.Context) error {
	data, err := json.Marshal(s.orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := s.blob.Store(ctx, data); err != nil {
		return fmt.Errorf("commit orders: %w", err)
	}
	return nil
}

var _ usecase.OrderStore = (*OrderStore)(nil)

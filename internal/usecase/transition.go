package usecase

import (
	"context"
	"fmt"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

// Transition applies operator-driven status changes, enforcing the
// lifecycle table: pending -> preparing|cancelled, preparing ->
// served|cancelled. Served and cancelled are terminal.
type Transition struct {
	store OrderStore
}

func NewTransition(store OrderStore) *Transition {
	return &Transition{store: store}
}

// Execute moves the order to the target status. A move outside the
// table returns ErrInvalidTransition with the order unchanged; an
// unknown id returns ErrUnknownOrder. Both arise only from stale UI
// references, so callers degrade them to no-ops.
//
// The write is a compare-and-set against the status read here. Two
// concurrent actions can both read the same status, but only the
// first commit lands; the loser gets ErrInvalidTransition, so a
// terminal state can never be overwritten.
func (uc *Transition) Execute(ctx context.Context, orderID string, to entity.OrderStatus) (entity.Order, error) {
	if !to.Valid() {
		return entity.Order{}, ErrInvalidTransition
	}
	order, err := uc.store.Get(ctx, orderID)
	if err != nil {
		return entity.Order{}, err
	}
	if !entity.CanTransition(order.Status, to) {
		return order, ErrInvalidTransition
	}
	ok, err := uc.store.UpdateStatusIf(ctx, orderID, order.Status, to)
	if err != nil {
		return entity.Order{}, fmt.Errorf("update order %s: %w", orderID, err)
	}
	if !ok {
		return order, ErrInvalidTransition
	}
	order.Status = to
	return order, nil
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

// PlaceOrder turns a cart into a pending order and appends it to the
// store.
type PlaceOrder struct {
	store       OrderStore
	catalog     Catalog
	defaultPrep int
	now         func() time.Time
}

func NewPlaceOrder(store OrderStore, catalog Catalog, defaultPrepMinutes int) *PlaceOrder {
	return &PlaceOrder{
		store:       store,
		catalog:     catalog,
		defaultPrep: defaultPrepMinutes,
		now:         time.Now,
	}
}

// Execute resolves the cart against the current catalog and creates
// the order. Cart entries whose item no longer exists are dropped
// (the menu may have changed since the customer opened it); if
// nothing survives, ErrEmptyCart is returned and the store is left
// untouched.
//
// The arrival estimate is gated by the slowest dish, not the sum:
// estimatedArrivalAt = createdAt + max prep time over the resolved
// lines.
func (uc *PlaceOrder) Execute(ctx context.Context, tableID string, cart Cart) (entity.Order, error) {
	now := uc.now()

	// Stable line order regardless of map iteration.
	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]entity.OrderLine, 0, len(ids))
	var total int64
	prepMinutes := 0
	for _, id := range ids {
		qty := cart[id]
		if qty < 1 {
			continue
		}
		item, ok, err := uc.catalog.FindItem(ctx, id)
		if err != nil {
			return entity.Order{}, fmt.Errorf("resolve cart item %s: %w", id, err)
		}
		if !ok {
			continue
		}
		lines = append(lines, entity.OrderLine{
			ID:         uuid.NewString(),
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   qty,
			Price:      item.Price,
		})
		total += item.Price * int64(qty)
		if p := item.PrepTime(uc.defaultPrep); p > prepMinutes {
			prepMinutes = p
		}
	}
	if len(lines) == 0 {
		return entity.Order{}, ErrEmptyCart
	}

	order := entity.Order{
		ID:                 uuid.NewString(),
		TableID:            tableID,
		Items:              lines,
		Status:             entity.StatusPending,
		CreatedAt:          now.UnixMilli(),
		EstimatedArrivalAt: now.Add(time.Duration(prepMinutes) * time.Minute).UnixMilli(),
		TotalPrice:         total,
	}
	if err := uc.store.Append(ctx, order); err != nil {
		return entity.Order{}, fmt.Errorf("append order: %w", err)
	}
	return order, nil
}

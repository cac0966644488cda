package usecase

import (
	"context"
	"time"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

// StatusNarrative is the customer-facing description of an order
// status: a headline, a subtext and a coarse progress percentage for
// the progress bar. It is display-only and has no effect on state
// transitions.
type StatusNarrative struct {
	Headline entity.Translatable `json:"headline"`
	Subtext  entity.Translatable `json:"subtext"`
	Progress int                 `json:"progress"`
}

var narratives = map[entity.OrderStatus]StatusNarrative{
	entity.StatusPending: {
		Headline: entity.Translatable{Uz: "Buyurtma qabul qilindi", Ru: "Заказ принят", En: "Order received"},
		Subtext:  entity.Translatable{Uz: "Tez orada oshpaz ishga kirishadi", Ru: "Повар скоро приступит к работе", En: "The chef will start shortly"},
		Progress: 25,
	},
	entity.StatusPreparing: {
		Headline: entity.Translatable{Uz: "Oshpaz tayyorlamoqda", Ru: "Повар готовит", En: "The chef is cooking"},
		Subtext:  entity.Translatable{Uz: "Sizning taomingiz olovda", Ru: "Ваше блюдо на огне", En: "Your dish is on the fire"},
		Progress: 60,
	},
	entity.StatusServed: {
		Headline: entity.Translatable{Uz: "Yoqimli ishtaha!", Ru: "Приятного аппетита!", En: "Enjoy your meal!"},
		Subtext:  entity.Translatable{Uz: "Taom stolingizga yetkazildi", Ru: "Блюдо доставлено на ваш стол", En: "Your dish has been delivered to your table"},
		Progress: 100,
	},
}

var defaultNarrative = StatusNarrative{
	Headline: entity.Translatable{Uz: "Holat noma'lum", Ru: "Статус неизвестен", En: "Status unknown"},
	Progress: 0,
}

// NarrativeFor returns the static narrative for a status.
func NarrativeFor(status entity.OrderStatus) StatusNarrative {
	if n, ok := narratives[status]; ok {
		return n
	}
	return defaultNarrative
}

// TrackingSnapshot is one refresh of the customer tracking view.
type TrackingSnapshot struct {
	Order            entity.Order    `json:"order"`
	RemainingSeconds int64           `json:"remainingSeconds"`
	Narrative        StatusNarrative `json:"narrative"`
}

// Tracking derives the customer-facing live view of a table's active
// order. It is strictly read-only against the order store.
type Tracking struct {
	store OrderStore
	now   func() time.Time

	// interval is the countdown refresh period.
	interval time.Duration
}

func NewTracking(store OrderStore) *Tracking {
	return &Tracking{store: store, now: time.Now, interval: time.Second}
}

// Snapshot computes the view state for one order at the given
// instant. The countdown clamps at zero; the displayed status is
// driven purely by the order status, never by the timer, so an
// operator marking an order served before or after expiry is equally
// fine.
func Snapshot(order entity.Order, now time.Time) TrackingSnapshot {
	remaining := (order.EstimatedArrivalAt - now.UnixMilli()) / 1000
	if remaining < 0 {
		remaining = 0
	}
	return TrackingSnapshot{
		Order:            order,
		RemainingSeconds: remaining,
		Narrative:        NarrativeFor(order.Status),
	}
}

// ActiveForTable resolves the table's current active order. The store
// is most-recent-first, so with multiple concurrently active orders
// (which intended usage avoids but the model permits) the most
// recently created one wins. ok is false when the table has no active
// order.
func (t *Tracking) ActiveForTable(ctx context.Context, tableID string) (TrackingSnapshot, bool, error) {
	order, ok, err := t.store.FindActiveForTable(ctx, tableID)
	if err != nil || !ok {
		return TrackingSnapshot{}, false, err
	}
	return Snapshot(order, t.now()), true, nil
}

// Watch re-reads the store once per interval and hands a fresh
// snapshot to fn. It returns when the table no longer has an active
// order (it was served or cancelled) or when ctx is cancelled; the
// ticker is released on every exit path, so tearing the view down is
// just cancelling the context.
func (t *Tracking) Watch(ctx context.Context, tableID string, fn func(TrackingSnapshot)) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snap, ok, err := t.ActiveForTable(ctx, tableID)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			fn(snap)
		}
	}
}

package usecase

import (
	"context"
	"errors"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

var (
	// ErrEmptyCart is returned when a checkout resolves to zero valid
	// lines against the current catalog.
	ErrEmptyCart = errors.New("cart resolves to no orderable items")

	// ErrUnknownOrder marks a lookup or transition against an order id
	// the store has never seen. Callers treat it as a no-op.
	ErrUnknownOrder = errors.New("unknown order")

	// ErrInvalidTransition marks a status move outside the transition
	// table. Callers treat it as a no-op.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicateOrder marks an append with an id already present.
	ErrDuplicateOrder = errors.New("duplicate order id")

	// ErrUnknownItem marks a reference to a menu item the catalog does
	// not contain.
	ErrUnknownItem = errors.New("unknown menu item")

	// ErrDuplicateTable marks an attempt to register a table label
	// twice.
	ErrDuplicateTable = errors.New("duplicate table")

	// ErrSuggestionInFlight marks a duplicate concurrent suggestion
	// request for the same (item, language) pair.
	ErrSuggestionInFlight = errors.New("suggestion already in flight")
)

// OrderStore is the durable, process-wide list of every order ever
// created. Both the customer tracking view and the operator dashboard
// go through it. Every mutation commits the full snapshot before
// returning.
type OrderStore interface {
	Append(ctx context.Context, o entity.Order) error
	ListAll(ctx context.Context) ([]entity.Order, error)
	Get(ctx context.Context, id string) (entity.Order, error)
	// FindActiveForTable returns the most recently created order for
	// the table that is neither served nor cancelled.
	FindActiveForTable(ctx context.Context, tableID string) (entity.Order, bool, error)
	// UpdateStatusIf commits the status change only while the order
	// still holds from. ok is false when the order is absent or its
	// status has moved on; the stored status is then untouched.
	UpdateStatusIf(ctx context.Context, id string, from, to entity.OrderStatus) (bool, error)
}

// Catalog is the read-only menu view the lifecycle engine resolves
// carts against.
type Catalog interface {
	FindItem(ctx context.Context, id string) (entity.MenuItem, bool, error)
	FindCategory(ctx context.Context, id string) (entity.Category, bool, error)
}

// MenuRepo is the full menu/restaurant configuration store used by
// the operator editor surface.
type MenuRepo interface {
	Catalog
	Restaurant(ctx context.Context) (entity.Restaurant, error)
	Replace(ctx context.Context, r entity.Restaurant) error
	AddTable(ctx context.Context, label string) (entity.Restaurant, error)
}

// Suggester produces a menu-item description in the given language.
// Implementations return "" when no suggestion is available; failures
// must never affect menu or order state.
type Suggester interface {
	Suggest(ctx context.Context, itemName, categoryName string, lang entity.Language) (string, error)
}

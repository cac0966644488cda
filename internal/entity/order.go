package entity

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusServed    OrderStatus = "served"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusServed, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is an end state. Terminal orders never
// change status again.
func (s OrderStatus) Terminal() bool {
	return s == StatusServed || s == StatusCancelled
}

// transitions is the full set of allowed status moves. A status is
// never retreated.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusServed, StatusCancelled},
}

// CanTransition reports whether from -> to is an allowed move.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderLine is one entry of an order. Name and price are snapshots
// taken at order time so later menu edits never alter past orders.
type OrderLine struct {
	ID         string       `json:"id"`
	MenuItemID string       `json:"menuItemId"`
	Name       Translatable `json:"name"`
	Quantity   int          `json:"quantity"`
	Price      int64        `json:"price"`
}

// Subtotal is unit price times quantity.
func (l OrderLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Order is a placed table order. Timestamps are epoch milliseconds,
// matching the persisted blob layout. TotalPrice and
// EstimatedArrivalAt are fixed at creation and never recomputed.
type Order struct {
	ID                 string      `json:"id"`
	TableID            string      `json:"tableId"`
	Items              []OrderLine `json:"items"`
	Status             OrderStatus `json:"status"`
	CreatedAt          int64       `json:"createdAt"`
	EstimatedArrivalAt int64       `json:"estimatedArrivalAt"`
	TotalPrice         int64       `json:"totalPrice"`
}

// Active reports whether the order is still in flight.
func (o Order) Active() bool {
	return !o.Status.Terminal()
}

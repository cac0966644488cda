package usecase

import (
	"context"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

// BoardColumn is one triage column of the operator dashboard.
type BoardColumn struct {
	Status entity.OrderStatus `json:"status"`
	Count  int                `json:"count"`
	Orders []entity.Order     `json:"orders"`
}

// Board is the grouped-by-status view of all orders. Cancelled orders
// are retained in the store but never displayed.
type Board struct {
	Columns []BoardColumn `json:"columns"`
}

// boardStatuses are the displayed columns, in board order.
var boardStatuses = []entity.OrderStatus{
	entity.StatusPending,
	entity.StatusPreparing,
	entity.StatusServed,
}

// Dashboard builds the operator triage board.
type Dashboard struct {
	store OrderStore
}

func NewDashboard(store OrderStore) *Dashboard {
	return &Dashboard{store: store}
}

// Board partitions every stored order into the pending, preparing and
// served columns, preserving store order (most recent first) within
// each.
func (d *Dashboard) Board(ctx context.Context) (Board, error) {
	orders, err := d.store.ListAll(ctx)
	if err != nil {
		return Board{}, err
	}

	byStatus := make(map[entity.OrderStatus][]entity.Order, len(boardStatuses))
	for _, o := range orders {
		byStatus[o.Status] = append(byStatus[o.Status], o)
	}

	b := Board{Columns: make([]BoardColumn, 0, len(boardStatuses))}
	for _, st := range boardStatuses {
		col := BoardColumn{Status: st, Orders: byStatus[st], Count: len(byStatus[st])}
		if col.Orders == nil {
			col.Orders = []entity.Order{}
		}
		b.Columns = append(b.Columns, col)
	}
	return b, nil
}

package usecase

import (
	"context"
	"testing"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
)

func TestBoardPartitionsByStatus(t *testing.T) {
	// three pending, two preparing, one cancelled
	store := &memStore{orders: []entity.Order{
		{ID: "p3", TableID: "1", Status: entity.StatusPending},
		{ID: "p2", TableID: "2", Status: entity.StatusPending},
		{ID: "c1", TableID: "4", Status: entity.StatusCancelled},
		{ID: "w2", TableID: "5", Status: entity.StatusPreparing},
		{ID: "p1", TableID: "3", Status: entity.StatusPending},
		{ID: "w1", TableID: "6", Status: entity.StatusPreparing},
	}}
	d := NewDashboard(store)

	board, err := d.Board(context.Background())
	if err != nil {
		t.Fatalf("Board: %v", err)
	}

	if len(board.Columns) != 3 {
		t.Fatalf("len(Columns) = %d, want 3", len(board.Columns))
	}

	wantCounts := map[entity.OrderStatus]int{
		entity.StatusPending:   3,
		entity.StatusPreparing: 2,
		entity.StatusServed:    0,
	}
	for _, col := range board.Columns {
		if col.Count != wantCounts[col.Status] {
			t.Errorf("column %s count = %d, want %d", col.Status, col.Count, wantCounts[col.Status])
		}
		if col.Count != len(col.Orders) {
			t.Errorf("column %s count %d disagrees with %d orders", col.Status, col.Count, len(col.Orders))
		}
		for _, o := range col.Orders {
			if o.Status == entity.StatusCancelled {
				t.Errorf("cancelled order %s shown on the board", o.ID)
			}
		}
	}

	// store order (most recent first) preserved within a column
	pending := board.Columns[0]
	if pending.Status != entity.StatusPending {
		t.Fatalf("first column is %s, want pending", pending.Status)
	}
	for i, want := range []string{"p3", "p2", "p1"} {
		if pending.Orders[i].ID != want {
			t.Errorf("pending[%d] = %s, want %s", i, pending.Orders[i].ID, want)
		}
	}
}

func TestBoardEmptyStore(t *testing.T) {
	d := NewDashboard(&memStore{})
	board, err := d.Board(context.Background())
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	for _, col := range board.Columns {
		if col.Count != 0 || col.Orders == nil {
			t.Errorf("column %s = %+v, want empty non-nil", col.Status, col.Orders)
		}
	}
}

package book

import (
	"testing"

	"github.com/shopspring/decimal"
)

func ord(id uint64, side Side, price string, qty int64) *Order {
	return &Order{
		ID:    id,
		Side:  side,
		Price: decimal.RequireFromString(price),
		Qty:   qty,
		Seq:   id,
	}
}

func TestBidQueuePriority(t *testing.T) {
	q := NewBidQueue()
	q.Push(ord(1, Buy, "50", 10))
	q.Push(ord(2, Buy, "52", 10))
	q.Push(ord(3, Buy, "51", 10))

	wantIDs := []uint64{2, 3, 1} // highest price first
	for _, want := range wantIDs {
		got := q.PopBest()
		if got == nil || got.ID != want {
			t.Fatalf("PopBest() = %v, want order %d", got, want)
		}
	}
	if q.PopBest() != nil {
		t.Error("PopBest() on empty queue should be nil")
	}
}

func TestAskQueuePriority(t *testing.T) {
	q := NewAskQueue()
	q.Push(ord(1, Sell, "31", 5))
	q.Push(ord(2, Sell, "30", 5))
	q.Push(ord(3, Sell, "32", 5))

	wantIDs := []uint64{2, 1, 3} // lowest price first
	for _, want := range wantIDs {
		got := q.PopBest()
		if got == nil || got.ID != want {
			t.Fatalf("PopBest() = %v, want order %d", got, want)
		}
	}
}

func TestEqualPriceTieBrokenByArrival(t *testing.T) {
	tests := []struct {
		name  string
		newQ  func() *SideQueue
		side  Side
		price string
	}{
		{name: "bids", newQ: NewBidQueue, side: Buy, price: "40"},
		{name: "asks", newQ: NewAskQueue, side: Sell, price: "40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.newQ()
			q.Push(ord(7, tt.side, tt.price, 5))
			q.Push(ord(3, tt.side, tt.price, 5)) // earlier arrival, pushed later
			q.Push(ord(9, tt.side, tt.price, 5))

			for _, want := range []uint64{3, 7, 9} {
				got := q.PopBest()
				if got.ID != want {
					t.Fatalf("PopBest() = order %d, want %d", got.ID, want)
				}
			}
		})
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := NewBidQueue()
	if q.Peek() != nil {
		t.Error("Peek() on empty queue should be nil")
	}
	q.Push(ord(1, Buy, "50", 10))
	if got := q.Peek(); got == nil || got.ID != 1 {
		t.Fatalf("Peek() = %v, want order 1", got)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d after Peek, want 1", q.Len())
	}
}

func TestPriorityHoldsAfterInterleavedPops(t *testing.T) {
	q := NewAskQueue()
	q.Push(ord(1, Sell, "33", 1))
	q.Push(ord(2, Sell, "30", 1))
	q.PopBest() // removes 30
	q.Push(ord(3, Sell, "29", 1))
	q.Push(ord(4, Sell, "33", 1))
	q.PopBest() // removes 29

	// Remaining: 33(seq1), 33(seq4) - arrival order decides.
	if got := q.PopBest(); got.ID != 1 {
		t.Errorf("PopBest() = order %d, want 1", got.ID)
	}
	if got := q.PopBest(); got.ID != 4 {
		t.Errorf("PopBest() = order %d, want 4", got.ID)
	}
}

func TestSnapshotIsOrderedAndNonDestructive(t *testing.T) {
	q := NewBidQueue()
	q.Push(ord(1, Buy, "50", 10))
	q.Push(ord(2, Buy, "52", 10))
	q.Push(ord(3, Buy, "52", 10))
	q.Push(ord(4, Buy, "48", 10))

	snap := q.Snapshot()
	wantIDs := []uint64{2, 3, 1, 4}
	if len(snap) != len(wantIDs) {
		t.Fatalf("Snapshot() has %d orders, want %d", len(snap), len(wantIDs))
	}
	for i, want := range wantIDs {
		if snap[i].ID != want {
			t.Errorf("Snapshot()[%d] = order %d, want %d", i, snap[i].ID, want)
		}
	}

	if q.Len() != 4 {
		t.Errorf("Len() = %d after Snapshot, want 4", q.Len())
	}
	if got := q.Peek(); got.ID != 2 {
		t.Errorf("Peek() = order %d after Snapshot, want 2", got.ID)
	}
}

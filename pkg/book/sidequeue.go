package book

import (
	"container/heap"
	"sort"
)

// orderHeap implements heap.Interface over orders with a pluggable
// comparator. Use container/heap (Init, Push, Pop) to manipulate it.
type orderHeap struct {
	orders []*Order
	less   func(a, b *Order) bool
}

func (h *orderHeap) Len() int           { return len(h.orders) }
func (h *orderHeap) Less(i, j int) bool { return h.less(h.orders[i], h.orders[j]) }
func (h *orderHeap) Swap(i, j int)      { h.orders[i], h.orders[j] = h.orders[j], h.orders[i] }

func (h *orderHeap) Push(x any) { h.orders = append(h.orders, x.(*Order)) }

func (h *orderHeap) Pop() any {
	old := h.orders
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	h.orders = old[:n-1]
	return x
}

// lessBids ranks the highest price first; lessAsks the lowest. Equal prices
// are always resolved by earlier arrival, so two resting orders are never
// unordered.
func lessBids(a, b *Order) bool {
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c > 0
	}
	return a.Seq < b.Seq
}

func lessAsks(a, b *Order) bool {
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c < 0
	}
	return a.Seq < b.Seq
}

// SideQueue holds one side's resting orders in price-time priority.
type SideQueue struct {
	h orderHeap
}

// NewBidQueue returns a queue that ranks higher limit prices first.
func NewBidQueue() *SideQueue {
	q := &SideQueue{h: orderHeap{less: lessBids}}
	heap.Init(&q.h)
	return q
}

// NewAskQueue returns a queue that ranks lower limit prices first.
func NewAskQueue() *SideQueue {
	q := &SideQueue{h: orderHeap{less: lessAsks}}
	heap.Init(&q.h)
	return q
}

func (q *SideQueue) Len() int { return q.h.Len() }

// Push inserts a resting order. O(log n).
func (q *SideQueue) Push(o *Order) { heap.Push(&q.h, o) }

// Peek returns the highest-priority order without removing it, or nil when
// the side is empty.
func (q *SideQueue) Peek() *Order {
	if len(q.h.orders) == 0 {
		return nil
	}
	return q.h.orders[0]
}

// PopBest removes and returns the highest-priority order, or nil when the
// side is empty. O(log n).
func (q *SideQueue) PopBest() *Order {
	if len(q.h.orders) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*Order)
}

// Snapshot returns the side's orders in full priority order without
// disturbing the live heap. The heap array is only heap-ordered, so the
// copy is sorted with the queue's own comparator; the orders themselves are
// shared, not copied, and callers must treat them as read-only.
func (q *SideQueue) Snapshot() []*Order {
	out := make([]*Order, len(q.h.orders))
	copy(out, q.h.orders)
	sort.Slice(out, func(i, j int) bool { return q.h.less(out[i], out[j]) })
	return out
}

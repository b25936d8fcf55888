package book

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Trade reports one match between a resting order and the incoming order.
type Trade struct {
	BuyID  uint64
	SellID uint64
	Qty    int64
	Price  decimal.Decimal
}

// Book owns both sides of the order book and the counter that hands out
// order IDs and arrival sequence numbers. It is single-writer: Submit runs
// its whole insert-and-match pass to completion before returning, and no
// other goroutine may touch the book.
type Book struct {
	bids *SideQueue
	asks *SideQueue
	seq  uint64

	// Logger receives one trade_executed event per match. Defaults to a nop
	// logger; the caller may inject its own.
	Logger *zap.SugaredLogger
}

func New() *Book {
	return &Book{
		bids:   NewBidQueue(),
		asks:   NewAskQueue(),
		Logger: zap.NewNop().Sugar(),
	}
}

// Submit inserts a new limit order and matches the book until it no longer
// crosses. It returns the trades executed by this submission, in order.
//
// Preconditions: price > 0 and qty > 0. The console boundary validates both
// before calling; the book does not re-check them.
func (b *Book) Submit(side Side, price decimal.Decimal, qty int64) []Trade {
	b.seq++
	o := &Order{
		ID:    b.seq,
		Side:  side,
		Price: price,
		Qty:   qty,
		Seq:   b.seq,
	}
	if side == Buy {
		b.bids.Push(o)
	} else {
		b.asks.Push(o)
	}
	return b.match()
}

// match crosses the best bid against the best ask while the bid price is at
// or above the ask price. Each iteration zeroes at least one of the two best
// orders, so the loop always terminates. The trade price is always the ask's
// limit price, regardless of which side arrived first.
func (b *Book) match() []Trade {
	var trades []Trade
	for {
		bestBid := b.bids.Peek()
		bestAsk := b.asks.Peek()
		if bestBid == nil || bestAsk == nil {
			break
		}
		if bestBid.Price.LessThan(bestAsk.Price) {
			break
		}

		tradeQty := min(bestBid.Qty, bestAsk.Qty)
		tradePrice := bestAsk.Price

		bestBid.Qty -= tradeQty
		bestAsk.Qty -= tradeQty

		t := Trade{
			BuyID:  bestBid.ID,
			SellID: bestAsk.ID,
			Qty:    tradeQty,
			Price:  tradePrice,
		}
		trades = append(trades, t)
		b.Logger.Infow("trade_executed",
			"buy_id", t.BuyID,
			"sell_id", t.SellID,
			"qty", t.Qty,
			"price", t.Price.String(),
		)

		// Filled orders leave the book with the same pass that zeroed them.
		if bestBid.Qty == 0 {
			b.bids.PopBest()
		}
		if bestAsk.Qty == 0 {
			b.asks.PopBest()
		}
	}
	return trades
}

// BidCount returns the number of resting buy orders.
func (b *Book) BidCount() int { return b.bids.Len() }

// AskCount returns the number of resting sell orders.
func (b *Book) AskCount() int { return b.asks.Len() }

// Snapshot lists every resting order, bids first then asks, each side in its
// priority order. The live heaps are never touched; display cannot perturb
// matching state.
func (b *Book) Snapshot() []Level {
	levels := make([]Level, 0, b.bids.Len()+b.asks.Len())
	for _, o := range b.bids.Snapshot() {
		levels = append(levels, Level{Side: Buy, Price: o.Price, Qty: o.Qty})
	}
	for _, o := range b.asks.Snapshot() {
		levels = append(levels, Level{Side: Sell, Price: o.Price, Qty: o.Qty})
	}
	return levels
}

package book

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "Buy"
	}
	return "Sell"
}

// ParseSide validates console input before it reaches the book. Only the
// exact words "buy" and "sell" (case-insensitive) are accepted.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("invalid order type %q: use 'buy' or 'sell'", s)
	}
}

// Order is a resting limit order. ID, Side, Price and Seq are fixed at
// submission; Qty is the remaining unfilled size and is the only field the
// matching loop mutates. Priority is keyed on (Price, Seq) alone, so fills
// never disturb queue order.
type Order struct {
	ID    uint64
	Side  Side
	Price decimal.Decimal
	Qty   int64
	Seq   uint64
}

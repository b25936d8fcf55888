package book

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Level is one row of a book snapshot: a single resting order's side, limit
// price, and remaining quantity.
type Level struct {
	Side  Side
	Price decimal.Decimal
	Qty   int64
}

// RenderTable formats snapshot rows as the console's fixed-width order book
// table, buy section first. An empty snapshot renders both section headers
// with no rows.
func RenderTable(levels []Level) string {
	var sb strings.Builder
	sb.WriteString("Current Order Book:\n")
	fmt.Fprintf(&sb, "%10s%10s%10s\n", "Type", "Price", "Quantity")

	sb.WriteString("Buy Orders:\n")
	for _, l := range levels {
		if l.Side == Buy {
			fmt.Fprintf(&sb, "%10s%10s%10d\n", l.Side, l.Price.String(), l.Qty)
		}
	}
	sb.WriteString("Sell Orders:\n")
	for _, l := range levels {
		if l.Side == Sell {
			fmt.Fprintf(&sb, "%10s%10s%10d\n", l.Side, l.Price.String(), l.Qty)
		}
	}
	return sb.String()
}

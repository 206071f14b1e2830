package stockmarket

import (
	"fmt"
	"time"
)

// Side identifies the direction of a trade.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", s)
	}
}

// TradeID identifies a trade in the ledger. IDs are monotonic in
// insertion order and independent of the wall clock, so two trades
// recorded in the same instant never collide.
type TradeID int64

// Trade is an immutable record of a buy or sell event at a point in
// time. The timestamp is stamped by the ledger at insertion, never
// supplied by the caller.
type Trade struct {
	ID       TradeID
	Symbol   string
	Side     Side
	Quantity Quantity
	Price    Money
	Time     time.Time
}

func (t Trade) String() string {
	return fmt.Sprintf("#%d %s %s %s @ %s", t.ID, t.Side, t.Quantity, t.Symbol, t.Price)
}

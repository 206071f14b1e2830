package stockmarket

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"
	"time"
)

// Ledger is the append-only record of all trades executed on the
// exchange.
//
// Trades are never mutated or deleted once recorded; timestamps are
// non-decreasing in insertion order. A single mutex serializes writers,
// and every query iterates over a snapshot taken under the read lock so
// that an aggregation never sees a trade appear mid-computation.
type Ledger struct {
	mu     sync.RWMutex
	trades []Trade
	nextID TradeID

	// now stamps trades at insertion. Tests substitute a fixed clock.
	now func() time.Time
}

// NewLedger creates an empty ledger stamping trades with time.Now.
func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// NewLedgerAt creates an empty ledger stamping trades with the given
// clock.
func NewLedgerAt(now func() time.Time) *Ledger {
	return &Ledger{now: now}
}

// Record appends a trade for the security at its par value, the default
// execution price on this exchange, and returns its identifier.
func (l *Ledger) Record(sec Security, side Side, quantity Quantity) (TradeID, error) {
	return l.RecordAt(sec, side, quantity, sec.ParValue())
}

// RecordAt appends a trade executed at an explicit price and returns its
// identifier. The ledger is left unchanged on error.
func (l *Ledger) RecordAt(sec Security, side Side, quantity Quantity, price Money) (TradeID, error) {
	if !quantity.IsPositive() {
		return 0, fmt.Errorf("invalid quantity %s: must be positive", quantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	t := Trade{
		ID:       l.nextID,
		Symbol:   sec.Symbol(),
		Side:     side,
		Quantity: quantity,
		Price:    price,
		Time:     l.now(),
	}
	l.trades = append(l.trades, t)
	return t.ID, nil
}

// restore appends an already-stamped trade, used when decoding a
// journal. It keeps nextID ahead of every restored identifier.
func (l *Ledger) restore(t Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.ID > l.nextID {
		l.nextID = t.ID
	}
	l.trades = append(l.trades, t)
}

// snapshot returns a copy of the trade slice, consistent for the
// duration of any aggregation over it.
func (l *Ledger) snapshot() []Trade {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.trades)
}

// Len returns the number of trades ever recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.trades)
}

// Trades returns an iterator over all recorded trades in insertion
// order, for display purposes.
func (l *Ledger) Trades() iter.Seq[Trade] {
	trades := l.snapshot()
	return func(yield func(Trade) bool) {
		for _, t := range trades {
			if !yield(t) {
				return
			}
		}
	}
}

// TradesInWindow returns a finite, restartable iterator over the trades
// for symbol with a timestamp at or after since. Aggregations over it
// must be order-independent: no particular order is guaranteed.
func (l *Ledger) TradesInWindow(symbol string, since time.Time) iter.Seq[Trade] {
	trades := l.snapshot()
	return func(yield func(Trade) bool) {
		for _, t := range trades {
			if t.Symbol != symbol || t.Time.Before(since) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// TradedSymbols returns the distinct symbols with at least one recorded
// trade, in symbol order.
func (l *Ledger) TradedSymbols() []string {
	visited := make(map[string]struct{})
	for _, t := range l.snapshot() {
		visited[t.Symbol] = struct{}{}
	}
	symbols := slices.Collect(maps.Keys(visited))
	slices.Sort(symbols)
	return symbols
}

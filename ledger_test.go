package stockmarket

import (
	"slices"
	"testing"
	"time"
)

// tickingClock returns a clock advancing by one second per call,
// starting at a fixed instant.
func tickingClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

var t0 = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func TestLedger_Record(t *testing.T) {
	ledger := NewLedgerAt(tickingClock(t0))
	catalog := DefaultCatalog()
	pop, _ := catalog.Lookup("POP")
	ale, _ := catalog.Lookup("ALE")

	id1, err := ledger.Record(pop, Buy, Q(10))
	if err != nil {
		t.Fatalf("Record POP: %v", err)
	}
	id2, err := ledger.Record(ale, Sell, Q(5))
	if err != nil {
		t.Fatalf("Record ALE: %v", err)
	}

	if id1 != 1 || id2 != 2 {
		t.Errorf("identifiers = %d, %d, want 1, 2", id1, id2)
	}
	if got := ledger.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	var trades []Trade
	for trade := range ledger.Trades() {
		trades = append(trades, trade)
	}

	// The default execution price is the security's par value.
	if !trades[0].Price.Equal(pop.ParValue()) {
		t.Errorf("POP trade price = %s, want par %s", trades[0].Price, pop.ParValue())
	}
	if !trades[1].Price.Equal(ale.ParValue()) {
		t.Errorf("ALE trade price = %s, want par %s", trades[1].Price, ale.ParValue())
	}
	// Timestamps are stamped at insertion and non-decreasing.
	if trades[1].Time.Before(trades[0].Time) {
		t.Errorf("timestamps decrease: %v then %v", trades[0].Time, trades[1].Time)
	}
}

func TestLedger_RecordAt_ExplicitPrice(t *testing.T) {
	ledger := NewLedgerAt(tickingClock(t0))
	pop, _ := DefaultCatalog().Lookup("POP")

	price := M(110, ReferenceCurrency)
	if _, err := ledger.RecordAt(pop, Buy, Q(20), price); err != nil {
		t.Fatal(err)
	}
	for trade := range ledger.Trades() {
		if !trade.Price.Equal(price) {
			t.Errorf("trade price = %s, want %s", trade.Price, price)
		}
	}
}

func TestLedger_Record_RejectsNonPositiveQuantity(t *testing.T) {
	ledger := NewLedgerAt(tickingClock(t0))
	pop, _ := DefaultCatalog().Lookup("POP")

	for _, quantity := range []Quantity{Q(0), Q(-3)} {
		if _, err := ledger.Record(pop, Buy, quantity); err == nil {
			t.Errorf("Record with quantity %s: expected error", quantity)
		}
	}
	if got := ledger.Len(); got != 0 {
		t.Errorf("Len() = %d after rejected records, want 0", got)
	}
}

func TestLedger_TradesInWindow(t *testing.T) {
	// One trade per second starting at t0+1s: POP, ALE, POP, POP, ALE.
	ledger := NewLedgerAt(tickingClock(t0))
	catalog := DefaultCatalog()
	pop, _ := catalog.Lookup("POP")
	ale, _ := catalog.Lookup("ALE")
	for _, sec := range []Security{pop, ale, pop, pop, ale} {
		if _, err := ledger.Record(sec, Buy, Q(1)); err != nil {
			t.Fatal(err)
		}
	}

	testCases := []struct {
		name    string
		symbol  string
		since   time.Time
		wantIDs []TradeID
	}{
		{
			name:    "all POP trades",
			symbol:  "POP",
			since:   t0,
			wantIDs: []TradeID{1, 3, 4},
		},
		{
			name:    "window boundary is inclusive",
			symbol:  "POP",
			since:   t0.Add(3 * time.Second),
			wantIDs: []TradeID{3, 4},
		},
		{
			name:    "window excludes earlier trades",
			symbol:  "ALE",
			since:   t0.Add(3 * time.Second),
			wantIDs: []TradeID{5},
		},
		{
			name:    "empty window",
			symbol:  "POP",
			since:   t0.Add(time.Minute),
			wantIDs: nil,
		},
		{
			name:    "symbol never traded",
			symbol:  "JOE",
			since:   t0,
			wantIDs: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotIDs []TradeID
			for trade := range ledger.TradesInWindow(tc.symbol, tc.since) {
				gotIDs = append(gotIDs, trade.ID)
			}
			if !slices.Equal(gotIDs, tc.wantIDs) {
				t.Errorf("TradesInWindow(%q, %v) = %v, want %v", tc.symbol, tc.since, gotIDs, tc.wantIDs)
			}
		})
	}
}

func TestLedger_TradesInWindow_IsRestartable(t *testing.T) {
	ledger := NewLedgerAt(tickingClock(t0))
	pop, _ := DefaultCatalog().Lookup("POP")
	for range 3 {
		if _, err := ledger.Record(pop, Buy, Q(1)); err != nil {
			t.Fatal(err)
		}
	}

	window := ledger.TradesInWindow("POP", t0)
	for range 2 {
		count := 0
		for range window {
			count++
		}
		if count != 3 {
			t.Fatalf("iterator yielded %d trades, want 3", count)
		}
	}
}

func TestLedger_TradedSymbols(t *testing.T) {
	ledger := NewLedgerAt(tickingClock(t0))
	catalog := DefaultCatalog()
	for _, symbol := range []string{"POP", "TEA", "POP", "ALE"} {
		sec, _ := catalog.Lookup(symbol)
		if _, err := ledger.Record(sec, Buy, Q(1)); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"ALE", "POP", "TEA"}
	if got := ledger.TradedSymbols(); !slices.Equal(got, want) {
		t.Errorf("TradedSymbols() = %v, want %v", got, want)
	}
}

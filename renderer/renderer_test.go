package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/PadmashriSahai/stockmarket"
)

func TestSecurities(t *testing.T) {
	md := Securities(stockmarket.DefaultCatalog())

	for _, want := range []string{
		"## Securities",
		"| ALE | common |",
		"| GIN | preferred |",
		"2%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Securities() missing %q in:\n%s", want, md)
		}
	}
	// Common securities show no fixed dividend.
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "| TEA ") && !strings.Contains(line, "| - |") {
			t.Errorf("TEA row should have an empty fixed dividend: %s", line)
		}
	}
}

func TestTrades(t *testing.T) {
	if md := Trades(nil); !strings.Contains(md, "No trades recorded.") {
		t.Errorf("Trades(nil) = %q", md)
	}

	trades := []stockmarket.Trade{{
		ID:       1,
		Symbol:   "POP",
		Side:     stockmarket.Buy,
		Quantity: stockmarket.Q(10),
		Price:    stockmarket.M(100, "GBP"),
		Time:     time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}}
	md := Trades(trades)
	if !strings.Contains(md, "| 1 | 2026-08-29T10:00:00Z | POP | buy | 10 | £100.00 |") {
		t.Errorf("Trades() missing trade row in:\n%s", md)
	}
}

func TestMarket(t *testing.T) {
	market := stockmarket.NewMarket(stockmarket.DefaultCatalog(), stockmarket.NewLedger())

	md := Market(market)
	if !strings.Contains(md, "No trades recorded.") {
		t.Errorf("Market() on empty ledger = %q", md)
	}

	if _, err := market.RecordTrade("POP", stockmarket.Buy, stockmarket.Q(10)); err != nil {
		t.Fatal(err)
	}
	md = Market(market)
	for _, want := range []string{"| POP | £100.00 |", "GBCE All-Share Index"} {
		if !strings.Contains(md, want) {
			t.Errorf("Market() missing %q in:\n%s", want, md)
		}
	}
}

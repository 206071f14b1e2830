// Package renderer formats exchange data as markdown, ready to be
// printed raw or through a terminal renderer.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/PadmashriSahai/stockmarket"
)

// Trades renders a trade list as a markdown table, in insertion order.
func Trades(trades []stockmarket.Trade) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## Trades\n\n")
	if len(trades) == 0 {
		fmt.Fprintf(b, "No trades recorded.\n")
		return b.String()
	}
	fmt.Fprintf(b, "| ID | Time | Symbol | Side | Quantity | Price |\n")
	fmt.Fprintf(b, "|---:|:---|:---|:---|---:|---:|\n")
	for _, t := range trades {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s |\n",
			t.ID, t.Time.Format(time.RFC3339), t.Symbol, t.Side, t.Quantity, t.Price)
	}
	return b.String()
}

// Securities renders the catalog reference table as markdown.
func Securities(catalog *stockmarket.Catalog) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## Securities\n\n")
	fmt.Fprintf(b, "| Symbol | Type | Last Dividend | Fixed Dividend | Par Value |\n")
	fmt.Fprintf(b, "|:---|:---|---:|---:|---:|\n")
	for sec := range catalog.Securities() {
		fixed := "-"
		if sec.Type() == stockmarket.Preferred {
			fixed = sec.FixedDividend().String()
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			sec.Symbol(), sec.Type(), sec.LastDividend(), fixed, sec.ParValue())
	}
	return b.String()
}

// Market renders the windowed market report: one volume-weighted price
// per traded symbol, and the all-share index when it is defined.
func Market(m *stockmarket.Market) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## Market (%s window)\n\n", m.Window)

	symbols := m.Ledger.TradedSymbols()
	if len(symbols) == 0 {
		fmt.Fprintf(b, "No trades recorded.\n")
		return b.String()
	}

	fmt.Fprintf(b, "| Symbol | Volume-Weighted Price |\n")
	fmt.Fprintf(b, "|:---|---:|\n")
	for _, symbol := range symbols {
		price, err := m.VolumeWeightedPrice(symbol)
		if err != nil {
			// a traded symbol can only miss the catalog on a mismatched journal
			fmt.Fprintf(b, "| %s | error: %v |\n", symbol, err)
			continue
		}
		fmt.Fprintf(b, "| %s | %s |\n", symbol, price)
	}
	fmt.Fprintf(b, "\n")

	if index, err := m.ShareIndex(); err == nil {
		fmt.Fprintf(b, "GBCE All-Share Index (by %s): **%s**\n", m.Denominator, index)
	} else {
		fmt.Fprintf(b, "GBCE All-Share Index: %v\n", err)
	}
	return b.String()
}

package stockmarket

import (
	"fmt"
	"iter"
	"math"
	"time"
)

// DefaultWindow is the trailing window over which the volume-weighted
// price is computed.
const DefaultWindow = 5 * time.Minute

// IndexDenominator selects the exponent denominator of the geometric
// share index.
type IndexDenominator int

const (
	// ByTradeCount divides by the total number of recorded trades, the
	// exchange's historical convention.
	ByTradeCount IndexDenominator = iota
	// BySymbolCount divides by the number of symbols contributing a
	// non-zero price.
	BySymbolCount
)

func (d IndexDenominator) String() string {
	switch d {
	case ByTradeCount:
		return "trades"
	case BySymbolCount:
		return "symbols"
	default:
		return "unknown"
	}
}

// ParseIndexDenominator parses a string into an IndexDenominator.
func ParseIndexDenominator(s string) (IndexDenominator, error) {
	switch s {
	case "trades":
		return ByTradeCount, nil
	case "symbols":
		return BySymbolCount, nil
	default:
		return 0, fmt.Errorf("unknown index denominator: %q", s)
	}
}

// Market encapsulates all the data required to run the exchange,
// combining the trade ledger with the security catalog. It serves as the
// central point of access for recording trades and querying valuation
// metrics.
//
// Aside from Record, every operation is a pure read over a consistent
// snapshot of the ledger.
type Market struct {
	Catalog *Catalog
	Ledger  *Ledger

	// Window is the trailing duration of the volume-weighted price.
	Window time.Duration
	// Denominator selects the share index exponent denominator.
	Denominator IndexDenominator

	now func() time.Time
}

// NewMarket creates a market over the given catalog and ledger, with the
// default five-minute window and the reference index denominator.
func NewMarket(catalog *Catalog, ledger *Ledger) *Market {
	return &Market{
		Catalog:     catalog,
		Ledger:      ledger,
		Window:      DefaultWindow,
		Denominator: ByTradeCount,
		now:         time.Now,
	}
}

// RecordTrade records a trade executed at the security's par value and
// returns its identifier. The ledger is left unchanged when the symbol
// is unknown.
func (m *Market) RecordTrade(symbol string, side Side, quantity Quantity) (TradeID, error) {
	sec, err := m.Catalog.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return m.Ledger.Record(sec, side, quantity)
}

// RecordTradeAt records a trade executed at an explicit price.
func (m *Market) RecordTradeAt(symbol string, side Side, quantity Quantity, price Money) (TradeID, error) {
	sec, err := m.Catalog.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return m.Ledger.RecordAt(sec, side, quantity, price)
}

// Trades returns a read-only iterator over every recorded trade.
func (m *Market) Trades() iter.Seq[Trade] { return m.Ledger.Trades() }

// DividendYield computes the dividend yield of the security at the given
// price: lastDividend/price for common securities,
// (fixedDividend*parValue)/price for preferred ones.
func (m *Market) DividendYield(symbol string, price Money) (Quantity, error) {
	sec, err := m.Catalog.Lookup(symbol)
	if err != nil {
		return Quantity{}, err
	}
	return dividendYield(sec, price)
}

func dividendYield(sec Security, price Money) (Quantity, error) {
	if !price.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}
	switch sec.Type() {
	case Preferred:
		if sec.FixedDividend().IsZero() {
			return Quantity{}, fmt.Errorf("%w: preferred security %s has no fixed dividend", ErrDataIntegrity, sec.Symbol())
		}
		return sec.FixedDividend().Mul(sec.ParValue()).DivPrice(price), nil
	default:
		return sec.LastDividend().DivPrice(price), nil
	}
}

// PriceEarnings computes the P/E ratio of the security at the given
// price: price divided by its dividend yield. A zero yield makes the
// ratio undefined.
func (m *Market) PriceEarnings(symbol string, price Money) (Quantity, error) {
	sec, err := m.Catalog.Lookup(symbol)
	if err != nil {
		return Quantity{}, err
	}
	yield, err := dividendYield(sec, price)
	if err != nil {
		return Quantity{}, err
	}
	if yield.IsZero() {
		return Quantity{}, fmt.Errorf("%w: %s yields no dividend at %s", ErrInvalidDividend, symbol, price)
	}
	return Quantity{value: price.value.Div(yield.value)}, nil
}

// VolumeWeightedPrice computes the quantity-weighted average trade price
// of the symbol over the trailing window. When no trade falls inside the
// window the result is a zero price, by exchange policy, not an error.
func (m *Market) VolumeWeightedPrice(symbol string) (Money, error) {
	price, _, err := m.VolumeWeightedPriceAsOf(symbol, m.now())
	return price, err
}

// VolumeWeightedPriceAsOf computes the volume-weighted price over the
// window ending at the given instant. traded reports whether any trade
// fell inside the window, distinguishing a genuine zero from the no-data
// case.
func (m *Market) VolumeWeightedPriceAsOf(symbol string, asOf time.Time) (price Money, traded bool, err error) {
	if _, err := m.Catalog.Lookup(symbol); err != nil {
		return Money{}, false, err
	}
	price, traded = m.vwap(symbol, asOf.Add(-m.Window))
	return price, traded, nil
}

// vwap aggregates quantity*price over the trades of symbol since the
// given instant. The aggregation is order-independent.
func (m *Market) vwap(symbol string, since time.Time) (Money, bool) {
	// The weak "" currency adopts the trades' currency, whatever the
	// catalog prices its securities in.
	var turnover Money
	volume := Q(0)
	for t := range m.Ledger.TradesInWindow(symbol, since) {
		turnover = turnover.Add(t.Price.Mul(t.Quantity))
		volume = volume.Add(t.Quantity)
	}
	if volume.IsZero() {
		// An empty window yields a defined zero price, by exchange
		// policy, instead of dividing by a zero volume.
		return turnover, false
	}
	return turnover.Div(volume), true
}

// MarketVolumeWeightedPrices returns the non-zero volume-weighted prices
// across every symbol with at least one recorded trade, in symbol order.
func (m *Market) MarketVolumeWeightedPrices() []Money {
	since := m.now().Add(-m.Window)
	var prices []Money
	for _, symbol := range m.Ledger.TradedSymbols() {
		if price, ok := m.vwap(symbol, since); ok && !price.IsZero() {
			prices = append(prices, price)
		}
	}
	return prices
}

// ShareIndex computes the GBCE all-share index: the geometric mean of
// the non-zero volume-weighted prices across all traded symbols. The
// exponent denominator is the total trade count by default; see
// IndexDenominator for the alternative.
func (m *Market) ShareIndex() (Quantity, error) {
	total := m.Ledger.Len()
	if total == 0 {
		return Quantity{}, ErrNoTrades
	}
	prices := m.MarketVolumeWeightedPrices()
	if len(prices) == 0 {
		return Quantity{}, fmt.Errorf("%w in the trailing window", ErrNoTrades)
	}

	// The fractional exponent forces float arithmetic here; everything
	// upstream stays exact.
	product := 1.0
	for _, p := range prices {
		product *= p.InexactFloat64()
	}
	n := total
	if m.Denominator == BySymbolCount {
		n = len(prices)
	}
	return Q(math.Pow(product, 1/float64(n))), nil
}

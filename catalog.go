package stockmarket

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// The GBCE trades every price in this currency.
const ReferenceCurrency = "GBP"

// Catalog is the read-only table of securities known to the exchange.
// It is immutable after construction and therefore safe for concurrent
// lookups.
type Catalog struct {
	securities map[string]Security // indexed by symbol
}

// NewCatalog builds a catalog from the given securities, validating each
// one. Duplicate symbols are rejected.
func NewCatalog(securities ...Security) (*Catalog, error) {
	c := &Catalog{securities: make(map[string]Security, len(securities))}
	for _, sec := range securities {
		if err := sec.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.securities[sec.Symbol()]; exists {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrDataIntegrity, sec.Symbol())
		}
		c.securities[sec.Symbol()] = sec
	}
	return c, nil
}

// DefaultCatalog returns the GBCE sample reference table.
func DefaultCatalog() *Catalog {
	gbp := func(v float64) Money { return M(v, ReferenceCurrency) }
	c, err := NewCatalog(
		NewCommon("TEA", gbp(0), gbp(100)),
		NewCommon("POP", gbp(8), gbp(100)),
		NewCommon("ALE", gbp(23), gbp(60)),
		NewPreferred("GIN", gbp(8), P(2), gbp(100)),
		NewCommon("JOE", gbp(13), gbp(250)),
	)
	if err != nil {
		// The reference table is a constant; it cannot fail validation.
		panic(err)
	}
	return c
}

// Lookup returns the security registered under this symbol, or
// ErrUnknownSymbol when the symbol is absent.
func (c *Catalog) Lookup(symbol string) (Security, error) {
	sec, ok := c.securities[symbol]
	if !ok {
		return Security{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return sec, nil
}

// Len returns the number of securities in the catalog.
func (c *Catalog) Len() int { return len(c.securities) }

// Securities iterates over the catalog in symbol order.
func (c *Catalog) Securities() iter.Seq[Security] {
	return func(yield func(Security) bool) {
		symbols := slices.Collect(maps.Keys(c.securities))
		slices.Sort(symbols)
		for _, symbol := range symbols {
			if !yield(c.securities[symbol]) {
				return
			}
		}
	}
}

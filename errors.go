package stockmarket

import "errors"

// Every failure the engine can produce is a well-typed rejection of a
// single operation. Callers match them with errors.Is; the engine wraps
// them with context at each call site.
var (
	// ErrUnknownSymbol reports a symbol absent from the catalog.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidPrice reports a non-positive price supplied to a ratio
	// calculation.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidDividend reports a zero dividend making the P/E ratio
	// undefined.
	ErrInvalidDividend = errors.New("invalid dividend")

	// ErrDataIntegrity reports a catalog invariant violation, such as a
	// preferred security without a fixed dividend. It cannot be
	// triggered by callers of a validated catalog.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrNoTrades reports a share index request against an empty ledger.
	ErrNoTrades = errors.New("no trades recorded")
)

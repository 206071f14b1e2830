package stockmarket

import (
	"fmt"
	"regexp"
)

// symbolRegex checks the GBCE symbol format: 1 to 5 uppercase letters.
var symbolRegex = regexp.MustCompile(`^[A-Z]{1,5}$`)

// SecurityType distinguishes the two dividend-yield formulas.
type SecurityType int

const (
	// Common securities yield lastDividend / price.
	Common SecurityType = iota
	// Preferred securities yield (fixedDividend * parValue) / price.
	Preferred
)

func (t SecurityType) String() string {
	switch t {
	case Common:
		return "common"
	case Preferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// ParseSecurityType parses a string into a SecurityType.
func ParseSecurityType(s string) (SecurityType, error) {
	switch s {
	case "common":
		return Common, nil
	case "preferred":
		return Preferred, nil
	default:
		return 0, fmt.Errorf("unknown security type: %q", s)
	}
}

// ValidateSymbol checks if a string is a validly formatted GBCE symbol.
// It returns nil if valid, or a descriptive error if invalid.
func ValidateSymbol(symbol string) error {
	if !symbolRegex.MatchString(symbol) {
		return fmt.Errorf("invalid symbol %q: must be 1 to 5 uppercase letters", symbol)
	}
	return nil
}

// Security represents a tradable instrument and its static reference
// attributes. It is immutable after construction.
type Security struct {
	symbol        string
	kind          SecurityType
	lastDividend  Money
	fixedDividend Percent // present only for preferred securities
	parValue      Money
}

// NewCommon creates a common security.
func NewCommon(symbol string, lastDividend, parValue Money) Security {
	return Security{symbol: symbol, kind: Common, lastDividend: lastDividend, parValue: parValue}
}

// NewPreferred creates a preferred security with its fixed dividend
// expressed as a percentage of par value.
func NewPreferred(symbol string, lastDividend Money, fixedDividend Percent, parValue Money) Security {
	return Security{
		symbol:        symbol,
		kind:          Preferred,
		lastDividend:  lastDividend,
		fixedDividend: fixedDividend,
		parValue:      parValue,
	}
}

func (s Security) Symbol() string         { return s.symbol }
func (s Security) Type() SecurityType     { return s.kind }
func (s Security) LastDividend() Money    { return s.lastDividend }
func (s Security) FixedDividend() Percent { return s.fixedDividend }
func (s Security) ParValue() Money        { return s.parValue }

// Validate checks the security invariants: a well-formed symbol, a
// non-negative last dividend, a positive par value, and a fixed dividend
// present exactly when the security is preferred.
func (s Security) Validate() error {
	if err := ValidateSymbol(s.symbol); err != nil {
		return fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}
	if s.lastDividend.IsNegative() {
		return fmt.Errorf("%w: security %s has a negative last dividend %s", ErrDataIntegrity, s.symbol, s.lastDividend)
	}
	if !s.parValue.IsPositive() {
		return fmt.Errorf("%w: security %s has a non-positive par value %s", ErrDataIntegrity, s.symbol, s.parValue)
	}
	switch s.kind {
	case Preferred:
		if s.fixedDividend.IsZero() {
			return fmt.Errorf("%w: preferred security %s has no fixed dividend", ErrDataIntegrity, s.symbol)
		}
	case Common:
		if !s.fixedDividend.IsZero() {
			return fmt.Errorf("%w: common security %s carries a fixed dividend %s", ErrDataIntegrity, s.symbol, s.fixedDividend)
		}
	default:
		return fmt.Errorf("%w: security %s has unknown type %d", ErrDataIntegrity, s.symbol, s.kind)
	}
	return nil
}

package stockmarket

import (
	"errors"
	"slices"
	"testing"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := DefaultCatalog()

	testCases := []struct {
		name     string
		symbol   string
		wantErr  error
		wantType SecurityType
	}{
		{name: "common security", symbol: "TEA", wantType: Common},
		{name: "preferred security", symbol: "GIN", wantType: Preferred},
		{name: "unknown symbol", symbol: "XXX", wantErr: ErrUnknownSymbol},
		{name: "empty symbol", symbol: "", wantErr: ErrUnknownSymbol},
		{name: "lowercase is not a known symbol", symbol: "tea", wantErr: ErrUnknownSymbol},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sec, err := catalog.Lookup(tc.symbol)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Lookup(%q) error = %v, want %v", tc.symbol, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tc.symbol, err)
			}
			if sec.Symbol() != tc.symbol {
				t.Errorf("Lookup(%q).Symbol() = %q", tc.symbol, sec.Symbol())
			}
			if sec.Type() != tc.wantType {
				t.Errorf("Lookup(%q).Type() = %v, want %v", tc.symbol, sec.Type(), tc.wantType)
			}
		})
	}
}

func TestCatalog_ReferenceTable(t *testing.T) {
	catalog := DefaultCatalog()

	if got := catalog.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}

	gin, err := catalog.Lookup("GIN")
	if err != nil {
		t.Fatal(err)
	}
	if !gin.FixedDividend().Equal(P(2)) {
		t.Errorf("GIN fixed dividend = %s, want 2%%", gin.FixedDividend())
	}
	if !gin.ParValue().Equal(M(100, ReferenceCurrency)) {
		t.Errorf("GIN par value = %s, want 100", gin.ParValue())
	}

	ale, err := catalog.Lookup("ALE")
	if err != nil {
		t.Fatal(err)
	}
	if !ale.LastDividend().Equal(M(23, ReferenceCurrency)) {
		t.Errorf("ALE last dividend = %s, want 23", ale.LastDividend())
	}
	if !ale.ParValue().Equal(M(60, ReferenceCurrency)) {
		t.Errorf("ALE par value = %s, want 60", ale.ParValue())
	}
}

func TestCatalog_Securities_SymbolOrder(t *testing.T) {
	catalog := DefaultCatalog()

	var symbols []string
	for sec := range catalog.Securities() {
		symbols = append(symbols, sec.Symbol())
	}
	want := []string{"ALE", "GIN", "JOE", "POP", "TEA"}
	if !slices.Equal(symbols, want) {
		t.Errorf("Securities() order = %v, want %v", symbols, want)
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	gbp := func(v float64) Money { return M(v, ReferenceCurrency) }

	testCases := []struct {
		name       string
		securities []Security
		wantErr    error
	}{
		{
			name:       "valid mixed catalog",
			securities: []Security{NewCommon("TEA", gbp(0), gbp(100)), NewPreferred("GIN", gbp(8), P(2), gbp(100))},
		},
		{
			name:       "preferred without fixed dividend",
			securities: []Security{NewPreferred("GIN", gbp(8), P(0), gbp(100))},
			wantErr:    ErrDataIntegrity,
		},
		{
			name:       "non-positive par value",
			securities: []Security{NewCommon("TEA", gbp(0), gbp(0))},
			wantErr:    ErrDataIntegrity,
		},
		{
			name:       "negative last dividend",
			securities: []Security{NewCommon("TEA", gbp(-1), gbp(100))},
			wantErr:    ErrDataIntegrity,
		},
		{
			name:       "malformed symbol",
			securities: []Security{NewCommon("tea1", gbp(0), gbp(100))},
			wantErr:    ErrDataIntegrity,
		},
		{
			name:       "duplicate symbol",
			securities: []Security{NewCommon("TEA", gbp(0), gbp(100)), NewCommon("TEA", gbp(1), gbp(100))},
			wantErr:    ErrDataIntegrity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.securities...)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewCatalog() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseSecurityType(t *testing.T) {
	testCases := []struct {
		in      string
		want    SecurityType
		wantErr bool
	}{
		{in: "common", want: Common},
		{in: "preferred", want: Preferred},
		{in: "Common", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseSecurityType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSecurityType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseSecurityType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

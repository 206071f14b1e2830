package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/PadmashriSahai/stockmarket"
	"google.golang.org/genai"
)

func TestAnalystLibrary(t *testing.T) {
	market := stockmarket.NewMarket(stockmarket.DefaultCatalog(), stockmarket.NewLedger())
	if _, err := market.RecordTrade("POP", stockmarket.Buy, stockmarket.Q(10)); err != nil {
		t.Fatal(err)
	}
	lib := NewLibrary(analystLibrary(market))
	ctx := context.Background()

	testCases := []struct {
		name string
		call *genai.FunctionCall
		want string // substring of the output, or of the error
	}{
		{
			name: "dividend yield",
			call: &genai.FunctionCall{Name: "dividend_yield", Args: map[string]any{"symbol": "GIN", "price": 100.0}},
			want: "2",
		},
		{
			name: "pe ratio on a zero dividend reports the error",
			call: &genai.FunctionCall{Name: "pe_ratio", Args: map[string]any{"symbol": "TEA", "price": 50.0}},
			want: "invalid dividend",
		},
		{
			name: "vwap",
			call: &genai.FunctionCall{Name: "volume_weighted_price", Args: map[string]any{"symbol": "POP"}},
			want: "£100.00",
		},
		{
			name: "share index",
			call: &genai.FunctionCall{Name: "share_index", Args: map[string]any{}},
			want: "100",
		},
		{
			name: "market report",
			call: &genai.FunctionCall{Name: "market_report", Args: map[string]any{}},
			want: "## Market",
		},
		{
			name: "unknown function",
			call: &genai.FunctionCall{Name: "place_order", Args: map[string]any{}},
			want: "unknown function",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fresp := lib(ctx, tc.call)
			if fresp == nil {
				t.Fatal("nil response")
			}
			found := false
			for _, v := range fresp.Response {
				if s, ok := v.(string); ok && strings.Contains(s, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("call %s response %v does not mention %q", tc.call.Name, fresp.Response, tc.want)
			}
		})
	}
}

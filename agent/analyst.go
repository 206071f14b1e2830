package agent

import (
	"context"
	"fmt"

	"github.com/PadmashriSahai/stockmarket"
	"github.com/PadmashriSahai/stockmarket/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst creates the market analyst expert. Its function library is
// strictly read-only over the exchange: it can price, but never trade.
func NewAnalyst(market *stockmarket.Market) *Expert {
	lib := analystLibrary(market)
	return &Expert{
		Name: "Analyst",
		Description: `This is the market analyst of the Global Beverage Corporation Exchange.
		It knows the security reference table and every recorded trade, and can compute
		dividend yields, P/E ratios, volume-weighted prices and the all-share index.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the market analyst of the Global Beverage Corporation Exchange (GBCE).
				Use the available tools to answer questions about the exchange:
				  - the security reference table and the recorded trades
				  - dividend yield and P/E ratio of a security at a given price
				  - the volume-weighted stock price over the trailing window
				  - the GBCE all-share index
				Prices are expressed in the exchange reference currency. When a tool reports
				an error, explain it to the user instead of guessing a figure.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// symbolPriceSchema declares the (symbol, price) argument pair shared by
// the ratio tools.
func symbolPriceSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"symbol": {Type: genai.TypeString, Description: "The security symbol, e.g. POP."},
			"price":  {Type: genai.TypeNumber, Description: "The market price to evaluate at."},
		},
		Required: []string{"symbol", "price"},
	}
}

func analystLibrary(market *stockmarket.Market) []Function {
	output := func(id, name string, v any, err error) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{ID: id, Name: name}
		if err != nil {
			fresp.Response = map[string]any{"error": err.Error()}
			return fresp
		}
		fresp.Response = map[string]any{"output": fmt.Sprint(v)}
		return fresp
	}

	symbolPriceArgs := func(args map[string]any) (string, stockmarket.Money, error) {
		symbol, ok := args["symbol"].(string)
		if !ok {
			return "", stockmarket.Money{}, fmt.Errorf("invalid symbol argument %v", args["symbol"])
		}
		price, ok := args["price"].(float64)
		if !ok {
			return "", stockmarket.Money{}, fmt.Errorf("invalid price argument %v", args["price"])
		}
		return symbol, stockmarket.M(price, stockmarket.ReferenceCurrency), nil
	}

	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "dividend_yield",
				Description: "Compute the dividend yield of a security at a given price.",
				Parameters:  symbolPriceSchema(),
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				symbol, price, err := symbolPriceArgs(args)
				if err != nil {
					return output(id, "dividend_yield", nil, err)
				}
				yield, err := market.DividendYield(symbol, price)
				return output(id, "dividend_yield", yield, err)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "pe_ratio",
				Description: "Compute the price/earnings ratio of a security at a given price.",
				Parameters:  symbolPriceSchema(),
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				symbol, price, err := symbolPriceArgs(args)
				if err != nil {
					return output(id, "pe_ratio", nil, err)
				}
				ratio, err := market.PriceEarnings(symbol, price)
				return output(id, "pe_ratio", ratio, err)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "volume_weighted_price",
				Description: "Compute the volume-weighted stock price of a symbol over the trailing window.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"symbol": {Type: genai.TypeString, Description: "The security symbol, e.g. POP."},
					},
					Required: []string{"symbol"},
				},
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				symbol, ok := args["symbol"].(string)
				if !ok {
					return output(id, "volume_weighted_price", nil, fmt.Errorf("invalid symbol argument %v", args["symbol"]))
				}
				price, err := market.VolumeWeightedPrice(symbol)
				return output(id, "volume_weighted_price", price, err)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "share_index",
				Description: "Compute the GBCE all-share index over every traded symbol.",
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				index, err := market.ShareIndex()
				return output(id, "share_index", index, err)
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "market_report",
				Description: "Render the security table, the trade list, and the windowed market report as markdown.",
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				var trades []stockmarket.Trade
				for t := range market.Trades() {
					trades = append(trades, t)
				}
				report := renderer.Securities(market.Catalog) + "\n" +
					renderer.Trades(trades) + "\n" +
					renderer.Market(market)
				return output(id, "market_report", report, nil)
			},
		},
	}
}

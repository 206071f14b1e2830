package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/PadmashriSahai/stockmarket"
	"github.com/google/subcommands"
)

// tradeCmd carries the flags and execution shared by buy and sell.
type tradeCmd struct {
	side     stockmarket.Side
	symbol   string
	quantity string
	price    string
}

func (p *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Symbol of the security to trade.")
	f.StringVar(&p.quantity, "q", "", "Number of shares to trade.")
	f.StringVar(&p.price, "price", "", "Execution price. Defaults to the security's par value.")
}

func (p *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.symbol == "" || p.quantity == "" {
		fmt.Fprintln(os.Stderr, "Error: -s and -q are required.")
		return subcommands.ExitUsageError
	}
	quantity, err := parseQuantity(p.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	market, err := LoadMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var id stockmarket.TradeID
	if p.price == "" {
		id, err = market.RecordTrade(p.symbol, p.side, quantity)
	} else {
		var price stockmarket.Money
		price, err = parsePrice(p.price)
		if err == nil {
			id, err = market.RecordTradeAt(p.symbol, p.side, quantity, price)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for trade := range market.Trades() {
		if trade.ID == id {
			return AppendTrade(trade)
		}
	}
	// Record returned an id, so the trade is in the ledger.
	fmt.Fprintf(os.Stderr, "Error: recorded trade %d not found in ledger\n", id)
	return subcommands.ExitFailure
}

type buyCmd struct{ tradeCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy trade" }
func (*buyCmd) Usage() string {
	return `gbce buy -s <symbol> -q <quantity> [-price <price>]

  Records a buy trade for the security. The execution price defaults to
  the security's par value.
`
}

func (p *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p.side = stockmarket.Buy
	return p.tradeCmd.Execute(ctx, f, args...)
}

type sellCmd struct{ tradeCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell trade" }
func (*sellCmd) Usage() string {
	return `gbce sell -s <symbol> -q <quantity> [-price <price>]

  Records a sell trade for the security. The execution price defaults to
  the security's par value.
`
}

func (p *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p.side = stockmarket.Sell
	return p.tradeCmd.Execute(ctx, f, args...)
}

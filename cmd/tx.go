package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/PadmashriSahai/stockmarket"
	"github.com/PadmashriSahai/stockmarket/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all recorded trades" }
func (*txCmd) Usage() string {
	return `gbce tx [-head <n>] [-tail <n>]

  Lists the trades recorded in the journal, in insertion order, with
  options for limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N trades.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	market, err := LoadMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var trades []stockmarket.Trade
	for trade := range market.Trades() {
		trades = append(trades, trade)
	}
	trades = clip(trades, p.head, p.tail)

	printMarkdown(renderer.Trades(trades))
	return subcommands.ExitSuccess
}

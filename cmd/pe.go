package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type peCmd struct {
	symbol string
	price  string
}

func (*peCmd) Name() string     { return "pe" }
func (*peCmd) Synopsis() string { return "compute the P/E ratio of a security" }
func (*peCmd) Usage() string {
	return `gbce pe -s <symbol> -p <price>

  Computes the price/earnings ratio of the security at the given market
  price: price divided by its dividend yield.
`
}

func (p *peCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Symbol of the security.")
	f.StringVar(&p.price, "p", "", "Market price to evaluate at.")
}

func (p *peCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.symbol == "" || p.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -s and -p are required.")
		return subcommands.ExitUsageError
	}
	price, err := parsePrice(p.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	market, err := LoadMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ratio, err := market.PriceEarnings(p.symbol, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("P/E ratio of %s at %s: %s\n", p.symbol, price, ratio)
	return subcommands.ExitSuccess
}

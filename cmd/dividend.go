package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type dividendCmd struct {
	symbol string
	price  string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "compute the dividend yield of a security" }
func (*dividendCmd) Usage() string {
	return `gbce dividend -s <symbol> -p <price>

  Computes the dividend yield of the security at the given market price:
  lastDividend/price for common securities, fixedDividend*parValue/price
  for preferred ones.
`
}

func (p *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Symbol of the security.")
	f.StringVar(&p.price, "p", "", "Market price to evaluate at.")
}

func (p *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	yield, err := market.DividendYield(p.symbol, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Dividend yield of %s at %s: %s\n", p.symbol, price, yield)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/PadmashriSahai/stockmarket"
)

type vwapCmd struct {
	symbol string
	window time.Duration
}

func (*vwapCmd) Name() string     { return "vwap" }
func (*vwapCmd) Synopsis() string { return "compute the volume weighted price of a security" }
func (*vwapCmd) Usage() string {
	return `gbce vwap -s <symbol> [-w <window>]

  Computes the volume weighted price of the security over the trailing
  window of trades.
`
}

func (p *vwapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Symbol of the security.")
	f.DurationVar(&p.window, "w", stockmarket.DefaultWindow, "Trailing window to aggregate over.")
}

func (p *vwapCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s is required.")
		return subcommands.ExitUsageError
	}
	if p.window <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -w must be a positive duration.")
		return subcommands.ExitUsageError
	}

	market, err := LoadMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	market.Window = p.window

	price, traded, err := market.VolumeWeightedPriceAsOf(p.symbol, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !traded {
		fmt.Printf("No %s trade in the trailing %s.\n", p.symbol, p.window)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Volume weighted price of %s over the trailing %s: %s\n", p.symbol, p.window, price)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/PadmashriSahai/stockmarket"
)

type indexCmd struct {
	by string
}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "compute the GBCE all share index" }
func (*indexCmd) Usage() string {
	return `gbce index [-by trades|symbols]

  Computes the all share index: the geometric mean of the volume
  weighted price of every traded security.
`
}

func (p *indexCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.by, "by", "trades", "Index denominator: 'trades' or 'symbols'.")
}

func (p *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	denom, err := stockmarket.ParseIndexDenominator(p.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	market, err := LoadMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	market.Denominator = denom

	index, err := market.ShareIndex()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("GBCE all share index: %s\n", index)
	return subcommands.ExitSuccess
}

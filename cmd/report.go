package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/PadmashriSahai/stockmarket/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render a full market report" }
func (*reportCmd) Usage() string {
	return `gbce report

  Renders the market report: the volume weighted price of every traded
  security and the all share index.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := LoadMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Market(market))
	return subcommands.ExitSuccess
}

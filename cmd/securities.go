package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/PadmashriSahai/stockmarket/renderer"
)

type securitiesCmd struct{}

func (*securitiesCmd) Name() string     { return "securities" }
func (*securitiesCmd) Synopsis() string { return "list the securities of the catalog" }
func (*securitiesCmd) Usage() string {
	return `gbce securities

  Lists every security of the catalog with its reference dividend data.
`
}

func (*securitiesCmd) SetFlags(f *flag.FlagSet) {}

func (p *securitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := LoadCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Securities(catalog))
	return subcommands.ExitSuccess
}

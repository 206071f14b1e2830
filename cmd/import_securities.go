package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/PadmashriSahai/stockmarket"
)

type importSecuritiesCmd struct {
	input  string
	output string
}

func (*importSecuritiesCmd) Name() string { return "import-securities" }
func (*importSecuritiesCmd) Synopsis() string {
	return "import a vendor securities file into catalog format"
}
func (*importSecuritiesCmd) Usage() string {
	return `gbce import-securities -i <vendor.json> [-o <catalog.jsonl>]

  Reads a vendor reference-data file and writes the securities it
  describes in catalog format, one JSON object per line. Without -o the
  catalog is written to stdout.
`
}

func (p *importSecuritiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Vendor reference-data file to import.")
	f.StringVar(&p.output, "o", "", "Catalog file to write. Defaults to stdout.")
}

func (p *importSecuritiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(p.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	catalog, err := stockmarket.ImportCatalog(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot import %q: %v\n", p.input, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.output != "" {
		out, err = os.Create(p.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := stockmarket.EncodeCatalog(out, catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		fmt.Printf("Imported %d securities into %q.\n", catalog.Len(), p.output)
	}
	return subcommands.ExitSuccess
}

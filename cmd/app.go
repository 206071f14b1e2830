// Package cmd implements the CLI application driving the GBCE exchange.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/PadmashriSahai/stockmarket"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists every subcommand. A main package registers them all
// and executes the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&txCmd{},
	&dividendCmd{},
	&peCmd{},
	&vwapCmd{},
	&indexCmd{},
	&reportCmd{},
	&securitiesCmd{},
	&importSecuritiesCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var securitiesFile = flag.String("securities-file", "", "Path to a securities catalog file (JSONL format). Defaults to the built-in GBCE table.")
var journalFile = flag.String("journal-file", "trades.jsonl", "Path to the trade journal file (JSONL format)")

// LoadCatalog loads the securities catalog from the app securities
// file, or the built-in GBCE reference table when none is configured.
func LoadCatalog() (*stockmarket.Catalog, error) {
	if *securitiesFile == "" {
		return stockmarket.DefaultCatalog(), nil
	}
	f, err := os.Open(*securitiesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open securities file %q: %w", *securitiesFile, err)
	}
	defer f.Close()
	return stockmarket.DecodeCatalog(f)
}

// LoadMarket loads the catalog and replays the trade journal into a
// fresh market.
func LoadMarket() (*stockmarket.Market, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	ledger := stockmarket.NewLedger()

	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, trade journal does not exist, starting with an empty ledger")
		return stockmarket.NewMarket(catalog, ledger), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open trade journal %q: %w", *journalFile, err)
	}
	defer f.Close()

	if err := stockmarket.DecodeTrades(f, ledger); err != nil {
		return nil, fmt.Errorf("could not replay trade journal %q: %w", *journalFile, err)
	}
	return stockmarket.NewMarket(catalog, ledger), nil
}

// AppendTrade appends a single trade to the app trade journal.
func AppendTrade(trade stockmarket.Trade) subcommands.ExitStatus {
	f, err := os.OpenFile(*journalFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trade journal %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := stockmarket.EncodeTrade(f, trade); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to trade journal %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded trade %s in %s\n", trade, *journalFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parsePrice parses a positive decimal amount in the exchange reference
// currency.
func parsePrice(s string) (stockmarket.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return stockmarket.Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return stockmarket.M(d, stockmarket.ReferenceCurrency), nil
}

// parseQuantity parses a decimal number of shares.
func parseQuantity(s string) (stockmarket.Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return stockmarket.Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return stockmarket.Q(d), nil
}

// clip limits a trade list to its first or last n entries. Zero means
// no limit; head wins when both are set.
func clip(trades []stockmarket.Trade, head, tail int) []stockmarket.Trade {
	if head > 0 && len(trades) > head {
		return trades[:head]
	}
	if tail > 0 && len(trades) > tail {
		return trades[len(trades)-tail:]
	}
	return trades
}

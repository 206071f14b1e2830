package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/PadmashriSahai/stockmarket/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// Install with: COMP_INSTALL=1 gbce
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"securities-file": predict.Files("*.jsonl"),
			"journal-file":    predict.Files("*.jsonl"),
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

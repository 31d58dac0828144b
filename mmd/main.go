package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/oftw-data/moneymoved/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{
			"from": predict.Nothing,
			"to":   predict.Nothing,
		}}
	}
	// Install shell completion when invoked by the completion machinery;
	// a regular run falls through.
	(&complete.Command{Sub: sub}).Complete("mmd")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oftw-data/moneymoved"
	"github.com/oftw-data/moneymoved/fred"
)

type fetchCmd struct {
	window windowFlags
}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "fetch daily exchange-rate series from FRED into the rates store"
}
func (*fetchCmd) Usage() string {
	return `mmd fetch [-from <date>] [-to <date>]

  Fetches the daily exchange-rate series of every supported currency pair
  over the reporting window, fills non-trading-day gaps, and writes the
  dense series to the rates store. A pair that fails to fetch is reported
  and skipped; the others are stored.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) { c.window.set(f) }

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := c.window.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	set := moneymoved.FetchRates(fred.NewClient(), window)
	for pair, err := range set.Failed {
		fmt.Fprintf(os.Stderr, "warning: %s not fetched: %v\n", pair, err)
	}
	if set.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no series could be fetched, rates store left untouched")
		return subcommands.ExitFailure
	}

	if err := EncodeRates(set); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write rates store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("stored %d series over %s in %s\n", set.Len(), window, *ratesFile)
	return subcommands.ExitSuccess
}

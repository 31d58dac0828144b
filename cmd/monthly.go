package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oftw-data/moneymoved"
	"github.com/oftw-data/moneymoved/renderer"
)

type monthlyCmd struct {
	window windowFlags
	fiscal string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display monthly donation totals by fiscal year" }
func (*monthlyCmd) Usage() string {
	return `mmd monthly [-from <date>] [-to <date>] [-fy <label,...>]

  Displays converted donation totals per fiscal month (July = 1) of each
  fiscal year in the window.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	c.window.set(f)
	f.StringVar(&c.fiscal, "fy", "", "Comma-separated fiscal-year labels to keep (e.g. FY2024-2025)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := c.window.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	result, err := pipelineResult(window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	events, scope := scoped(result.Events, window, c.fiscal, "")
	printMarkdown(renderer.MonthlyMarkdown(moneymoved.MonthlyTotals(events), scope))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/oftw-data/moneymoved"
	"github.com/oftw-data/moneymoved/date"
	"github.com/oftw-data/moneymoved/renderer"
)

type pledgesCmd struct {
	years string
}

func (*pledgesCmd) Name() string     { return "pledges" }
func (*pledgesCmd) Synopsis() string { return "display the pledge KPI report" }
func (*pledgesCmd) Usage() string {
	return `mmd pledges [-years <year,...>]

  Computes pledge attrition, active donor and pledge counts, and annualized
  contribution sums, with monthly contributions broken down by the fiscal
  year each pledge starts in.
`
}

func (c *pledgesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.years, "years", "", "Comma-separated creation years to keep (e.g. 2024,2025)")
}

func (c *pledgesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pledges, err := feedClient().Pledges()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if items := split(c.years); len(items) > 0 {
		years := make([]int, 0, len(items))
		for _, item := range items {
			y, err := strconv.Atoi(item)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid -years item %q: %v\n", item, err)
				return subcommands.ExitUsageError
			}
			years = append(years, y)
		}
		pledges = moneymoved.FilterPledgesByYears(pledges, years)
	}

	today := date.Today()
	report := moneymoved.NewPledgeReport(pledges, today)
	byYear := moneymoved.ContributionsByFiscalYear(pledges, today)
	printMarkdown(renderer.PledgesMarkdown(report, byYear))
	return subcommands.ExitSuccess
}

package renderer

import "github.com/oftw-data/moneymoved"

// Pledges is the view of the pledge KPI report.
type Pledges struct {
	AttritionRate string
	ActivePledges int
	TotalPledges  int
	ActiveDonors  int
	ActiveARR     string
	FutureARR     string
	TotalARR      string
	Years         []ContributionRow
}

// ContributionRow is the monthly-contribution sums of one fiscal year.
type ContributionRow struct {
	FiscalYear string
	All        string
	Active     string
	Future     string
}

// PledgesMarkdown renders the pledge report and its fiscal-year breakdown.
func PledgesMarkdown(r *moneymoved.PledgeReport, byYear []moneymoved.FiscalContribution) string {
	view := Pledges{
		AttritionRate: percent(r.AttritionRate),
		ActivePledges: r.ActivePledges,
		TotalPledges:  r.TotalPledges,
		ActiveDonors:  r.ActiveDonors,
		ActiveARR:     usd(r.ActiveARR),
		FutureARR:     usd(r.FutureARR),
		TotalARR:      usd(r.TotalARR),
	}
	for _, fc := range byYear {
		view.Years = append(view.Years, ContributionRow{
			FiscalYear: fc.FiscalYear,
			All:        usd(fc.All),
			Active:     usd(fc.Active),
			Future:     usd(fc.Future),
		})
	}
	return renderTemplate("pledges", "pledges.md", nil, view)
}

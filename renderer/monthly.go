package renderer

import "github.com/oftw-data/moneymoved"

// Monthly is the view of the fiscal monthly-totals report.
type Monthly struct {
	Scope string
	Rows  []MonthlyRow
}

// MonthlyRow is one fiscal month of one fiscal year.
type MonthlyRow struct {
	FiscalYear string
	Month      string
	Total      string
}

// MonthlyMarkdown renders fiscal monthly totals as a markdown table.
func MonthlyMarkdown(totals []moneymoved.MonthlyTotal, scope string) string {
	view := Monthly{Scope: scope}
	for _, t := range totals {
		month := t.Month
		if month == "" {
			month = "-"
		}
		view.Rows = append(view.Rows, MonthlyRow{
			FiscalYear: t.FiscalYear,
			Month:      month,
			Total:      usd(t.Total),
		})
	}
	return renderTemplate("monthly", "monthly.md", nil, view)
}

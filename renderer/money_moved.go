package renderer

import (
	"fmt"

	"github.com/oftw-data/moneymoved"
	"github.com/shopspring/decimal"
)

// MoneyMoved is the view of a money-moved KPI report.
type MoneyMoved struct {
	Scope          string // human description of the filters applied
	TotalMoved     string
	Counterfactual string
	MonthlyAverage string
	RunRate        string
	Events         int
	Unconverted    int
	Platforms      []GroupRow
	Sources        []GroupRow
}

// GroupRow is one row of a grouped-total table.
type GroupRow struct {
	Key   string
	Total string
}

// MoneyMovedMarkdown renders the money-moved report and its grouped totals.
func MoneyMovedMarkdown(r *moneymoved.MoneyMovedReport, events []moneymoved.NormalizedPaymentEvent, scope string) string {
	view := MoneyMoved{
		Scope:          scope,
		TotalMoved:     usd(r.TotalMoved),
		Counterfactual: usd(r.CounterfactualMoved),
		MonthlyAverage: usd(r.MonthlyAverage),
		RunRate:        usd(r.RunRate),
		Events:         r.Events,
		Unconverted:    r.Unconverted,
		Platforms:      groupRows(moneymoved.ByPlatform(events)),
		Sources:        groupRows(moneymoved.BySource(events)),
	}
	return renderTemplate("moneyMoved", "money_moved.md", map[string]string{
		"group_table": "group_table.md",
	}, view)
}

func groupRows(totals []moneymoved.GroupTotal) []GroupRow {
	rows := make([]GroupRow, 0, len(totals))
	for _, t := range totals {
		key := t.Key
		if key == "" {
			key = "(none)"
		}
		rows = append(rows, GroupRow{Key: key, Total: usd(t.Total)})
	}
	return rows
}

// usd formats a USD amount for display.
func usd(d decimal.Decimal) string { return moneymoved.USD(d).String() }

// percent formats a 0..1 ratio as a percentage.
func percent(d decimal.Decimal) string {
	return fmt.Sprintf("%s%%", d.Mul(decimal.NewFromInt(100)).Round(2))
}

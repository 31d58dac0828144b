package moneymoved

import (
	"slices"
	"strings"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

// Every aggregate in this file is computed from the slice it is handed and
// nothing else, so platform filters, fiscal-year filters and date-window
// filters compose in any order.

// MoneyMovedReport carries the payment-side KPIs for one (possibly filtered)
// event set.
type MoneyMovedReport struct {
	// TotalMoved is the sum of converted amounts. Rows without a USD amount
	// contribute nothing (they are flagged, not guessed).
	TotalMoved decimal.Decimal
	// CounterfactualMoved is the sum of the feed's counterfactuality column.
	CounterfactualMoved decimal.Decimal
	// MonthlyAverage is the mean over calendar months of each month's USD
	// sum. Months with partial data enter the mean once like any other; there
	// is no forward projection.
	MonthlyAverage decimal.Decimal
	// RunRate annualizes the monthly average.
	RunRate decimal.Decimal
	// Events is the number of rows in the set, converted or not.
	Events int
	// Unconverted is the number of rows without a USD amount.
	Unconverted int
}

// NewMoneyMovedReport computes the payment KPIs over the given rows.
func NewMoneyMovedReport(events []NormalizedPaymentEvent) *MoneyMovedReport {
	r := &MoneyMovedReport{Events: len(events)}

	// Calendar-month partial sums for the average. The source system grouped
	// months differently across its pages; this codebase averages over
	// calendar months everywhere and buckets fiscally everywhere.
	months := make(map[string]decimal.Decimal)
	for _, e := range events {
		r.CounterfactualMoved = r.CounterfactualMoved.Add(e.Counterfactuality)
		if !e.HasUSD {
			r.Unconverted++
			continue
		}
		r.TotalMoved = r.TotalMoved.Add(e.AmountUSD)
		if !e.Date.IsZero() {
			key := e.Date.Format("2006-01")
			months[key] = months[key].Add(e.AmountUSD)
		}
	}

	if len(months) > 0 {
		var sum decimal.Decimal
		for _, v := range months {
			sum = sum.Add(v)
		}
		r.MonthlyAverage = sum.Div(decimal.NewFromInt(int64(len(months))))
		r.RunRate = r.MonthlyAverage.Mul(twelve)
	}
	return r
}

// GroupTotal is one row of a grouped-total table.
type GroupTotal struct {
	Key   string
	Total decimal.Decimal
}

// GroupTotals sums converted amounts per distinct value of keyFn, sorted by
// key for stable output.
func GroupTotals(events []NormalizedPaymentEvent, keyFn func(*NormalizedPaymentEvent) string) []GroupTotal {
	totals := make(map[string]decimal.Decimal)
	for i := range events {
		e := &events[i]
		if !e.HasUSD {
			continue
		}
		k := keyFn(e)
		totals[k] = totals[k].Add(e.AmountUSD)
	}

	out := make([]GroupTotal, 0, len(totals))
	for k, v := range totals {
		out = append(out, GroupTotal{Key: k, Total: v})
	}
	slices.SortFunc(out, func(a, b GroupTotal) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// ByPlatform groups converted totals by payment platform.
func ByPlatform(events []NormalizedPaymentEvent) []GroupTotal {
	return GroupTotals(events, func(e *NormalizedPaymentEvent) string { return e.Platform })
}

// BySource groups converted totals by categorical source (feed field or
// platform-derived).
func BySource(events []NormalizedPaymentEvent) []GroupTotal {
	return GroupTotals(events, func(e *NormalizedPaymentEvent) string { return e.SourceOf() })
}

// MonthlyTotal is the USD sum of one fiscal month of one fiscal year.
type MonthlyTotal struct {
	FiscalYear string // "FY2024-2025", or "Unknown"
	MonthIndex int    // 1..12 July-start; 0 for Unknown
	Month      string // display name, "" for Unknown
	Total      decimal.Decimal
}

// MonthlyTotals sums converted amounts per (fiscal year, fiscal month),
// ordered by fiscal year then month index. Rows bucketed Unknown sort last.
func MonthlyTotals(events []NormalizedPaymentEvent) []MonthlyTotal {
	type key struct {
		label string
		month int
	}
	totals := make(map[key]decimal.Decimal)
	for _, e := range events {
		if !e.HasUSD {
			continue
		}
		b := BucketOf(e.Date)
		k := key{b.Label, b.MonthIndex}
		totals[k] = totals[k].Add(e.AmountUSD)
	}

	out := make([]MonthlyTotal, 0, len(totals))
	for k, v := range totals {
		out = append(out, MonthlyTotal{
			FiscalYear: k.label,
			MonthIndex: k.month,
			Month:      FiscalMonthName(k.month),
			Total:      v,
		})
	}
	slices.SortFunc(out, func(a, b MonthlyTotal) int {
		if c := strings.Compare(a.FiscalYear, b.FiscalYear); c != 0 {
			return c
		}
		return a.MonthIndex - b.MonthIndex
	})
	return out
}

// PledgeReport carries the pledge-side KPIs for one (possibly filtered)
// pledge set.
type PledgeReport struct {
	// AttritionRate is 1 - active/total distinct pledges, and 0 for an empty
	// set (an empty pledge book has lost nobody).
	AttritionRate decimal.Decimal
	// ActivePledges is the distinct count of pledge ids in the active-pledge
	// status set; TotalPledges counts every distinct pledge id.
	ActivePledges int
	TotalPledges  int
	// ActiveDonors is the distinct count of donor ids in the active-donor
	// status set.
	ActiveDonors int

	// Annualized contribution sums by pledge state as of 'today'.
	ActiveARR decimal.Decimal // pledges in the active set
	FutureARR decimal.Decimal // pledges starting after today
	TotalARR  decimal.Decimal // ActiveARR + FutureARR
}

// NewPledgeReport computes the pledge KPIs over the given records, judging
// future pledges against 'today'.
func NewPledgeReport(pledges []PledgeRecord, today date.Date) *PledgeReport {
	r := &PledgeReport{}

	allPledges := make(map[string]bool)
	activePledges := make(map[string]bool)
	activeDonors := make(map[string]bool)

	for i := range pledges {
		p := &pledges[i]
		allPledges[p.PledgeID] = true
		if p.IsActive() {
			activePledges[p.PledgeID] = true
			r.ActiveARR = r.ActiveARR.Add(p.ContributionAmount)
		}
		if slices.Contains(ActiveDonorStatuses, p.Status) {
			activeDonors[p.DonorID] = true
		}
		if p.IsFuture(today) {
			r.FutureARR = r.FutureARR.Add(p.ContributionAmount)
		}
	}

	r.TotalPledges = len(allPledges)
	r.ActivePledges = len(activePledges)
	r.ActiveDonors = len(activeDonors)
	r.TotalARR = r.ActiveARR.Add(r.FutureARR)

	if r.TotalPledges > 0 {
		active := decimal.NewFromInt(int64(r.ActivePledges))
		total := decimal.NewFromInt(int64(r.TotalPledges))
		r.AttritionRate = decimal.NewFromInt(1).Sub(active.Div(total))
	}
	return r
}

// FiscalContribution is the monthly-contribution sum of the pledges starting
// in one fiscal year, split by pledge state.
type FiscalContribution struct {
	FiscalYear string // label of StartsAt's fiscal year, or "Unknown"
	All        decimal.Decimal
	Active     decimal.Decimal
	Future     decimal.Decimal
}

// ContributionsByFiscalYear groups pledge monthly contributions by the fiscal
// year their start date falls in, sorted by label with Unknown last.
func ContributionsByFiscalYear(pledges []PledgeRecord, today date.Date) []FiscalContribution {
	byYear := make(map[string]*FiscalContribution)
	for i := range pledges {
		p := &pledges[i]
		label := UnknownBucket.Label
		if !p.StartsAt.IsZero() {
			label = FiscalYearLabel(FiscalYear(p.StartsAt))
		}
		fc, ok := byYear[label]
		if !ok {
			fc = &FiscalContribution{FiscalYear: label}
			byYear[label] = fc
		}
		m := p.MonthlyContribution()
		fc.All = fc.All.Add(m)
		if p.IsActive() {
			fc.Active = fc.Active.Add(m)
		}
		if p.IsFuture(today) {
			fc.Future = fc.Future.Add(m)
		}
	}

	out := make([]FiscalContribution, 0, len(byYear))
	for _, fc := range byYear {
		out = append(out, *fc)
	}
	slices.SortFunc(out, func(a, b FiscalContribution) int {
		if a.FiscalYear == UnknownBucket.Label {
			return 1
		}
		if b.FiscalYear == UnknownBucket.Label {
			return -1
		}
		return strings.Compare(a.FiscalYear, b.FiscalYear)
	})
	return out
}

package moneymoved

import (
	"slices"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

// Pledge statuses as delivered by the pledge feed.
const (
	StatusActiveDonor = "Active donor"
	StatusLapsedDonor = "Lapsed donor"
	StatusOneTime     = "one-time"
)

// ActivePledgeStatuses is the status set that counts a pledge as currently
// contributing.
var ActivePledgeStatuses = []string{StatusActiveDonor}

// ActiveDonorStatuses is the status set that counts a donor as active. It is
// wider than the pledge set: one-time donors are active donors without a
// recurring pledge.
var ActiveDonorStatuses = []string{StatusActiveDonor, StatusOneTime}

// PledgeRecord is one recurring pledge as delivered by the pledge feed.
// ContributionAmount is annualized; the monthly figure is derived on demand.
type PledgeRecord struct {
	PledgeID           string
	DonorID            string
	Status             string
	ContributionAmount decimal.Decimal
	CreatedAt          date.Date // zero when unknown
	StartsAt           date.Date // zero when unknown
	EndedAt            date.Date // zero when the pledge has not ended
}

var twelve = decimal.NewFromInt(12)

// MonthlyContribution returns the pledge's contribution normalized to one
// month.
func (p *PledgeRecord) MonthlyContribution() decimal.Decimal {
	return p.ContributionAmount.Div(twelve)
}

// IsActive reports whether the pledge status is in the active-pledge set.
func (p *PledgeRecord) IsActive() bool {
	return slices.Contains(ActivePledgeStatuses, p.Status)
}

// IsFuture reports whether the pledge starts after 'today'.
func (p *PledgeRecord) IsFuture(today date.Date) bool {
	return !p.StartsAt.IsZero() && p.StartsAt.After(today)
}

// SortPledges orders pledges ascending by creation date, unknown dates first.
func SortPledges(pledges []PledgeRecord) {
	slices.SortStableFunc(pledges, func(a, b PledgeRecord) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

// FilterPledgesByYears returns the pledges created in one of the given
// calendar years. Unknown creation dates never match.
func FilterPledgesByYears(pledges []PledgeRecord, years []int) []PledgeRecord {
	if len(years) == 0 {
		return pledges
	}
	out := make([]PledgeRecord, 0, len(pledges))
	for _, p := range pledges {
		if !p.CreatedAt.IsZero() && slices.Contains(years, p.CreatedAt.Year()) {
			out = append(out, p)
		}
	}
	return out
}

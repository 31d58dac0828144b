package moneymoved

import (
	"slices"
	"strings"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

// PaymentEvent is one donation payment as delivered by the payments feed.
// Amount is in the event's native currency until conversion. Events are
// immutable once loaded.
type PaymentEvent struct {
	Date              date.Date
	Amount            decimal.Decimal
	Currency          string
	Platform          string
	Counterfactuality decimal.Decimal
	// Source is the optional categorical source field of the feed
	// (chapter_name, payment_source, ...). Empty when the feed has none.
	Source string
}

// NormalizedPaymentEvent is a PaymentEvent with its matched rates and the
// converted USD amount attached.
type NormalizedPaymentEvent struct {
	PaymentEvent

	// Rates holds the rate observation matched at the event's exact date for
	// every fetched pair. A pair absent from the map had no rate on that day.
	Rates map[Pair]decimal.Decimal

	// AmountUSD is the converted amount. It is unset (HasUSD false) only when
	// no rate was available for the event's currency and date.
	AmountUSD decimal.Decimal
	HasUSD    bool

	// Flags records the recoverable conditions hit by this row.
	Flags []Flag
}

// Flagged reports whether the row carries flag f.
func (e *NormalizedPaymentEvent) Flagged(f Flag) bool { return slices.Contains(e.Flags, f) }

// DerivedSource classifies a payment platform into a coarse donation source.
// Feeds without an explicit source field fall back to it.
func DerivedSource(platform string) string {
	switch platform {
	case "Benevity":
		return "Corporate"
	case "Stripe":
		return "Individual"
	default:
		return "Other"
	}
}

// SourceOf returns the event's categorical source: the feed's own source
// field when present, otherwise the platform-derived one.
func (e *PaymentEvent) SourceOf() string {
	if e.Source != "" {
		return e.Source
	}
	return DerivedSource(e.Platform)
}

// SortEvents orders events ascending by date; unknown dates sort first so
// they are impossible to miss in the snapshot.
func SortEvents(events []PaymentEvent) {
	slices.SortStableFunc(events, func(a, b PaymentEvent) int {
		return a.Date.Compare(b.Date)
	})
}

// FilterByPlatform returns the events whose platform is in the given set.
// An empty set selects everything.
func FilterByPlatform(events []NormalizedPaymentEvent, platforms []string) []NormalizedPaymentEvent {
	if len(platforms) == 0 {
		return events
	}
	out := make([]NormalizedPaymentEvent, 0, len(events))
	for _, e := range events {
		if slices.Contains(platforms, e.Platform) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByRange returns the events whose date falls inside the window.
// Unknown dates are excluded: they belong to no window.
func FilterByRange(events []NormalizedPaymentEvent, window date.Range) []NormalizedPaymentEvent {
	out := make([]NormalizedPaymentEvent, 0, len(events))
	for _, e := range events {
		if !e.Date.IsZero() && window.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByFiscalYears returns the events whose date buckets into one of the
// given fiscal-year labels.
func FilterByFiscalYears(events []NormalizedPaymentEvent, labels []string) []NormalizedPaymentEvent {
	if len(labels) == 0 {
		return events
	}
	out := make([]NormalizedPaymentEvent, 0, len(events))
	for _, e := range events {
		if slices.Contains(labels, BucketOf(e.Date).Label) {
			out = append(out, e)
		}
	}
	return out
}

// flagsColumn renders the flag list for the snapshot table.
func flagsColumn(flags []Flag) string {
	if len(flags) == 0 {
		return ""
	}
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, "|")
}

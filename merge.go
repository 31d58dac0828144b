package moneymoved

import "github.com/shopspring/decimal"

// MergeRates left-joins every payment to the rate observations at its exact
// date, one per fetched pair.
//
// This is a left join: an event whose date falls outside every covered window
// (or whose date is unknown) gets an empty rate map and survives; the
// converter then treats it as "no rate available". Within a covered window a
// lookup always matches, by series density.
func MergeRates(events []PaymentEvent, rates *RateSet) []NormalizedPaymentEvent {
	out := make([]NormalizedPaymentEvent, 0, len(events))
	for _, ev := range events {
		row := NormalizedPaymentEvent{
			PaymentEvent: ev,
			Rates:        make(map[Pair]decimal.Decimal),
		}
		if ev.Date.IsZero() {
			row.Flags = append(row.Flags, FlagUnknownDate)
		} else {
			for _, pair := range Pairs() {
				if rate, ok := rates.Rate(pair, ev.Date); ok {
					row.Rates[pair] = rate
				}
			}
		}
		out = append(out, row)
	}
	return out
}

// Normalize merges and converts in one pass: the usual way to go from loaded
// events to report-ready rows.
func Normalize(events []PaymentEvent, rates *RateSet) []NormalizedPaymentEvent {
	rows := MergeRates(events, rates)
	for i := range rows {
		Convert(&rows[i])
	}
	return rows
}

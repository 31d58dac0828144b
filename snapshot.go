package moneymoved

import (
	"encoding/csv"
	"fmt"
	"io"
)

// The audit snapshot is a flat, one-row-per-event table written once per
// pipeline run, so every converted number can be traced back to its inputs.

// SnapshotColumns is the stable column order of the snapshot table. The
// presentation layer depends on these names, nothing else.
var SnapshotColumns = []string{
	"date", "amount", "currency", "amount_usd", "payment_platform",
	"counterfactuality", "derived_source", "fiscal_year", "fiscal_month", "flags",
}

// WriteSnapshot writes the normalized events as CSV to w.
//
// An event without a USD amount gets an empty amount_usd cell, not a zero: a
// blank is auditable, a fabricated zero is silent corruption. Unknown dates
// get an empty date cell and the Unknown fiscal year.
func WriteSnapshot(w io.Writer, events []NormalizedPaymentEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SnapshotColumns); err != nil {
		return fmt.Errorf("cannot write snapshot header: %w", err)
	}

	for i := range events {
		e := &events[i]
		b := BucketOf(e.Date)

		dateCell := ""
		if !e.Date.IsZero() {
			dateCell = e.Date.String()
		}
		usdCell := ""
		if e.HasUSD {
			usdCell = e.AmountUSD.String()
		}
		monthCell := ""
		if !b.IsUnknown() {
			monthCell = fmt.Sprintf("%d", b.MonthIndex)
		}

		row := []string{
			dateCell,
			e.Amount.String(),
			e.Currency,
			usdCell,
			e.Platform,
			e.Counterfactuality.String(),
			e.SourceOf(),
			b.Label,
			monthCell,
			flagsColumn(e.Flags),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write snapshot row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

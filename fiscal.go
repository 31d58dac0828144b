package moneymoved

import (
	"fmt"
	"time"

	"github.com/oftw-data/moneymoved/date"
)

// The reporting fiscal year starts July 1 and is labeled by its starting
// calendar year: July 2024 through June 2025 is "FY2024-2025".

// fiscalStartMonth is the first month of the fiscal year.
const fiscalStartMonth = time.July

// UnknownBucket is the bucket of records whose date could not be parsed, so
// downstream aggregation can isolate unattributable rows instead of dropping
// them.
var UnknownBucket = FiscalBucket{Label: "Unknown"}

// FiscalBucket locates a calendar date inside a fiscal year. It is recomputed
// from the date whenever needed, never stored as authoritative state.
type FiscalBucket struct {
	Label      string // "FY2024-2025", or "Unknown"
	MonthIndex int    // 1..12 with July = 1; 0 for Unknown
}

// IsUnknown reports whether the bucket is the unattributable one.
func (b FiscalBucket) IsUnknown() bool { return b.MonthIndex == 0 }

// FiscalYear returns the starting calendar year of the fiscal year containing d.
func FiscalYear(d date.Date) int {
	if d.Month() >= fiscalStartMonth {
		return d.Year()
	}
	return d.Year() - 1
}

// FiscalYearLabel formats a fiscal year starting in 'start' as "FY2024-2025".
func FiscalYearLabel(start int) string { return fmt.Sprintf("FY%d-%d", start, start+1) }

// FiscalMonthIndex maps a calendar date to its 1-based month inside the
// fiscal year: July = 1 through June = 12.
func FiscalMonthIndex(d date.Date) int {
	if d.Month() >= fiscalStartMonth {
		return int(d.Month()) - 6
	}
	return int(d.Month()) + 6
}

// BucketOf returns the fiscal bucket of d. It is total: the unknown-date
// sentinel maps to UnknownBucket rather than failing.
func BucketOf(d date.Date) FiscalBucket {
	if d.IsZero() {
		return UnknownBucket
	}
	return FiscalBucket{
		Label:      FiscalYearLabel(FiscalYear(d)),
		MonthIndex: FiscalMonthIndex(d),
	}
}

// FiscalRange returns the calendar window of the fiscal year starting in
// 'start': July 1 through June 30.
func FiscalRange(start int) date.Range {
	return date.NewRange(date.New(start, time.July, 1), date.New(start+1, time.June, 30))
}

// fiscalMonthNames maps a fiscal month index to its display name.
var fiscalMonthNames = [13]string{"", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// FiscalMonthName returns the display name of fiscal month index i, or "" for
// an index outside 1..12.
func FiscalMonthName(i int) string {
	if i < 1 || i > 12 {
		return ""
	}
	return fiscalMonthNames[i]
}

package moneymoved

import (
	"testing"
	"time"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

func testRates(t *testing.T) *RateSet {
	t.Helper()
	window := date.NewRange(date.New(2024, time.August, 1), date.New(2024, time.August, 31))
	set := NewRateSet()
	for pair, rate := range map[Pair]string{GBPUSD: "1.25", CADUSD: "1.35"} {
		s, err := Densify(pair, sparseWith(map[string]string{"2024-08-01": rate}), window)
		if err != nil {
			t.Fatal(err)
		}
		set.Add(s)
	}
	return set
}

func TestMergeRates(t *testing.T) {
	set := testRates(t)
	events := []PaymentEvent{
		{Date: date.New(2024, time.August, 15), Amount: decimal.NewFromInt(100), Currency: "GBP"},
		{Date: date.New(2023, time.January, 1), Amount: decimal.NewFromInt(50), Currency: "GBP"}, // outside every window
		{Amount: decimal.NewFromInt(10), Currency: "USD"},                                        // unknown date
	}

	rows := MergeRates(events, set)
	if len(rows) != 3 {
		t.Fatalf("left join must retain all rows, got %d", len(rows))
	}

	if len(rows[0].Rates) != 2 {
		t.Errorf("in-window event must match every fetched pair, got %v", rows[0].Rates)
	}
	if len(rows[1].Rates) != 0 {
		t.Errorf("out-of-window event must match nothing, got %v", rows[1].Rates)
	}
	if !rows[2].Flagged(FlagUnknownDate) {
		t.Errorf("unknown date must be flagged, got %v", rows[2].Flags)
	}
}

func TestNormalize(t *testing.T) {
	set := testRates(t)
	events := []PaymentEvent{
		{Date: date.New(2024, time.August, 15), Amount: decimal.NewFromInt(100), Currency: "GBP"},
		{Date: date.New(2023, time.January, 1), Amount: decimal.NewFromInt(50), Currency: "GBP"},
	}

	rows := Normalize(events, set)

	if !rows[0].HasUSD || !rows[0].AmountUSD.Equal(decimal.NewFromInt(125)) {
		t.Errorf("converted amount = %s, %v want 125", rows[0].AmountUSD, rows[0].HasUSD)
	}
	// amount_usd is unset iff no rate was available and currency is not base.
	if rows[1].HasUSD {
		t.Error("event outside every rate window must stay unconverted")
	}
	if !rows[1].Flagged(FlagMissingRate) {
		t.Errorf("event outside every rate window must be flagged, got %v", rows[1].Flags)
	}
}

func TestSortEvents(t *testing.T) {
	events := []PaymentEvent{
		{Date: date.New(2024, time.August, 15)},
		{}, // unknown date
		{Date: date.New(2024, time.July, 1)},
	}
	SortEvents(events)
	if !events[0].Date.IsZero() {
		t.Error("unknown dates must sort first")
	}
	if events[1].Date != date.New(2024, time.July, 1) || events[2].Date != date.New(2024, time.August, 15) {
		t.Errorf("events not ascending: %v", events)
	}
}

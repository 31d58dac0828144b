package moneymoved

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

func TestWriteSnapshot(t *testing.T) {
	events := []NormalizedPaymentEvent{
		{
			PaymentEvent: PaymentEvent{
				Date:              date.New(2024, time.August, 15),
				Amount:            decimal.NewFromInt(100),
				Currency:          "GBP",
				Platform:          "Stripe",
				Counterfactuality: decimal.RequireFromString("0.4"),
			},
			AmountUSD: decimal.NewFromInt(125),
			HasUSD:    true,
		},
		{
			// unconverted row with unknown date
			PaymentEvent: PaymentEvent{
				Amount:   decimal.NewFromInt(50),
				Currency: "GBP",
				Platform: "Benevity",
			},
			Flags: []Flag{FlagUnknownDate, FlagMissingRate},
		},
	}

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, events); err != nil {
		t.Fatalf("WriteSnapshot() failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("snapshot is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("snapshot has %d rows, want header + 2", len(rows))
	}

	header := rows[0]
	for i, col := range SnapshotColumns {
		if header[i] != col {
			t.Errorf("column %d = %q want %q", i, header[i], col)
		}
	}

	first := rows[1]
	if first[0] != "2024-08-15" || first[3] != "125" || first[6] != "Individual" ||
		first[7] != "FY2024-2025" || first[8] != "2" {
		t.Errorf("converted row = %v", first)
	}

	second := rows[2]
	if second[0] != "" {
		t.Errorf("unknown date must render empty, got %q", second[0])
	}
	if second[3] != "" {
		t.Errorf("missing USD amount must render empty not zero, got %q", second[3])
	}
	if second[7] != "Unknown" || second[8] != "" {
		t.Errorf("unknown bucket row = %v", second)
	}
	if second[9] != "unknown_date|missing_rate" {
		t.Errorf("flags column = %q", second[9])
	}
}

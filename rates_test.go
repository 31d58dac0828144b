package moneymoved

import (
	"errors"
	"testing"
	"time"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

func sparseWith(points map[string]string) *date.History[decimal.Decimal] {
	h := new(date.History[decimal.Decimal])
	for day, rate := range points {
		h.Append(date.MustParse(day), decimal.RequireFromString(rate))
	}
	return h
}

func TestDensify(t *testing.T) {
	// Fri 2024-08-02 and Mon 2024-08-05 observed; the weekend is a gap.
	sparse := sparseWith(map[string]string{
		"2024-08-02": "1.25",
		"2024-08-05": "1.27",
	})
	window := date.NewRange(date.New(2024, time.July, 31), date.New(2024, time.August, 6))

	s, err := Densify(GBPUSD, sparse, window)
	if err != nil {
		t.Fatalf("Densify() failed: %v", err)
	}

	if s.Len() != window.Len() {
		t.Fatalf("series has %d days, window has %d", s.Len(), window.Len())
	}

	testCases := []struct {
		name string
		day  string
		want string
	}{
		{"before first observation seeds from it", "2024-07-31", "1.25"},
		{"observed day", "2024-08-02", "1.25"},
		{"Saturday carries Friday", "2024-08-03", "1.25"},
		{"Sunday carries Friday", "2024-08-04", "1.25"},
		{"next observed day", "2024-08-05", "1.27"},
		{"after last observation carries it", "2024-08-06", "1.27"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate, ok := s.Rate(date.MustParse(tc.day))
			if !ok {
				t.Fatalf("Rate(%s) missing inside the covered window", tc.day)
			}
			if !rate.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("Rate(%s) = %s want %s", tc.day, rate, tc.want)
			}
		})
	}
}

func TestDensifyDensityInvariant(t *testing.T) {
	sparse := sparseWith(map[string]string{"2024-08-02": "1.25"})
	window := date.NewRange(date.New(2024, time.August, 1), date.New(2024, time.August, 31))

	s, err := Densify(GBPUSD, sparse, window)
	if err != nil {
		t.Fatalf("Densify() failed: %v", err)
	}
	for day := range window.Days() {
		if _, ok := s.Rate(day); !ok {
			t.Fatalf("density violated: no rate on %s", day)
		}
	}
}

func TestDensifyRejectsEmptySource(t *testing.T) {
	window := date.NewRange(date.New(2024, time.August, 1), date.New(2024, time.August, 2))
	_, err := Densify(GBPUSD, new(date.History[decimal.Decimal]), window)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Densify of empty source = %v, want ErrDataUnavailable", err)
	}
}

func TestRateSetLookup(t *testing.T) {
	set := NewRateSet()
	window := date.NewRange(date.New(2024, time.August, 1), date.New(2024, time.August, 10))
	s, err := Densify(GBPUSD, sparseWith(map[string]string{"2024-08-01": "1.25"}), window)
	if err != nil {
		t.Fatal(err)
	}
	set.Add(s)

	if _, ok := set.Rate(GBPUSD, date.New(2024, time.August, 5)); !ok {
		t.Error("rate inside the window must resolve")
	}
	if _, ok := set.Rate(GBPUSD, date.New(2024, time.September, 1)); ok {
		t.Error("rate outside the window must be missing")
	}
	if _, ok := set.Rate(CADUSD, date.New(2024, time.August, 5)); ok {
		t.Error("unfetched pair must be missing")
	}
}

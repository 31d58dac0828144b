package date

import (
	"testing"
	"time"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, time.July, 1), "25 Jul 1"
	d2, v2 := New(2024, time.July, 1), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	on := New(2024, time.August, 15)
	h.Append(on, 1.25)
	h.Append(on, 1.26)
	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1", h.Len())
	}
	if v, _ := h.Get(on); v != 1.26 {
		t.Errorf("Get() = %v want the last appended value", v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2024, time.August, 2), 1.25)  // Friday
	h.Append(New(2024, time.August, 5), 1.27)  // Monday
	h.Append(New(2024, time.August, 6), 1.28)

	testCases := []struct {
		name  string
		day   Date
		want  float64
		found bool
	}{
		{"exact day", New(2024, time.August, 5), 1.27, true},
		{"weekend carries Friday forward", New(2024, time.August, 4), 1.25, true},
		{"after the last day", New(2024, time.August, 9), 1.28, true},
		{"before the first day", New(2024, time.August, 1), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := h.ValueAsOf(tc.day)
			if found != tc.found || got != tc.want {
				t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tc.day, got, found, tc.want, tc.found)
			}
		})
	}
}

func TestOldestLatest(t *testing.T) {
	h := new(History[string])
	if day, _ := h.Latest(); !day.IsZero() {
		t.Error("empty history must return the zero date")
	}
	h.Append(New(2024, time.July, 2), "b")
	h.Append(New(2024, time.July, 1), "a")
	if day, v := h.Oldest(); day != New(2024, time.July, 1) || v != "a" {
		t.Errorf("Oldest() = %v, %v", day, v)
	}
	if day, v := h.Latest(); day != New(2024, time.July, 2) || v != "b" {
		t.Errorf("Latest() = %v, %v", day, v)
	}
}

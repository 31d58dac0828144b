package fred

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/oftw-data/moneymoved"
	"github.com/oftw-data/moneymoved/date"
)

func window() date.Range {
	return date.NewRange(date.New(2024, time.July, 1), date.New(2024, time.July, 5))
}

func TestFetchSkipsNonTradingDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("series_id"); got != "DEXUSUK" {
			t.Errorf("series_id = %q want DEXUSUK", got)
		}
		if got := q.Get("api_key"); got != "secret" {
			t.Errorf("api_key = %q want secret", got)
		}
		fmt.Fprint(w, `{"observations": [
			{"date": "2024-07-01", "value": "1.2643"},
			{"date": "2024-07-04", "value": "."},
			{"date": "2024-07-05", "value": "1.2712"}
		]}`)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Key: "secret"}
	sparse, err := c.Fetch("DEXUSUK", window())
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if sparse.Len() != 2 {
		t.Errorf("kept %d observations want 2 (the \".\" day must be skipped)", sparse.Len())
	}
	if _, ok := sparse.Get(date.New(2024, time.July, 4)); ok {
		t.Error("the non-trading day must not be in the history")
	}
	rate, ok := sparse.Get(date.New(2024, time.July, 5))
	if !ok || rate.String() != "1.2712" {
		t.Errorf("July 5 rate = %s, %v", rate, ok)
	}
}

func TestFetchEmptySeriesIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"observations": [{"date": "2024-07-04", "value": "."}]}`)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Key: "secret"}
	_, err := c.Fetch("DEXUSUK", window())
	if !errors.Is(err, moneymoved.ErrDataUnavailable) {
		t.Fatalf("Fetch() error = %v want ErrDataUnavailable", err)
	}
}

func TestFetchNonNumericValueIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"observations": [{"date": "2024-07-01", "value": "n/a"}]}`)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Key: "secret"}
	_, err := c.Fetch("DEXUSUK", window())
	if err == nil || !strings.Contains(err.Error(), "non-numeric") {
		t.Fatalf("Fetch() error = %v want a non-numeric value error", err)
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Key: "secret"}
	if _, err := c.Fetch("DEXUSUK", window()); err == nil {
		t.Fatal("a 500 response must fail the fetch")
	}
}

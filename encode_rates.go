package moneymoved

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the rates store format.
// It should remain human readable, single file and cheap to re-fetch.

// jseries is the readable line format of one dense series: the covered range
// plus a date-keyed map of rates.
type jseries struct {
	Pair  string            `json:"pair"`
	From  date.Date         `json:"from"`
	To    date.Date         `json:"to"`
	Rates map[string]string `json:"rates"`
}

// EncodeRates writes the fetched series of a RateSet to 'w' as JSONL, one
// series per line. Failed pairs are not persisted: absence from the store is
// what marks them unavailable to a later run.
func EncodeRates(w io.Writer, set *RateSet) error {
	for _, pair := range Pairs() {
		s := set.Get(pair)
		if s == nil {
			continue
		}
		js := jseries{
			Pair:  string(pair),
			From:  s.covered.From,
			To:    s.covered.To,
			Rates: make(map[string]string, s.Len()),
		}
		for day, rate := range s.Values() {
			js.Rates[day.String()] = rate.String()
		}
		line, err := json.Marshal(js)
		if err != nil {
			return fmt.Errorf("cannot encode series %s: %w", pair, err)
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRates reads a rates store written by EncodeRates.
func DecodeRates(r io.Reader) (*RateSet, error) {
	set := NewRateSet()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		var js jseries
		if err := json.Unmarshal([]byte(line), &js); err != nil {
			return nil, fmt.Errorf("cannot parse line of rates store: %q: %w", line, err)
		}

		s := &RateSeries{
			pair:    Pair(js.Pair),
			covered: date.NewRange(js.From, js.To),
		}
		for day, value := range js.Rates {
			d, err := date.Parse(day)
			if err != nil {
				return nil, fmt.Errorf("series %s has an invalid date %q: %w", js.Pair, day, err)
			}
			rate, err := decimal.NewFromString(value)
			if err != nil {
				return nil, fmt.Errorf("series %s has an invalid rate %q on %s: %w", js.Pair, value, day, err)
			}
			s.rates.Append(d, rate)
		}
		if s.Len() != s.covered.Len() {
			return nil, fmt.Errorf("series %s is not dense: %d observations over %s", js.Pair, s.Len(), s.covered)
		}
		set.Add(s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

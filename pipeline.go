package moneymoved

import (
	"fmt"
	"log"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

// RateFetcher fetches the sparse daily observations of one rate series over a
// window. Package fred provides the production implementation.
type RateFetcher interface {
	Fetch(symbol string, window date.Range) (*date.History[decimal.Decimal], error)
}

// EventSource loads the payment and pledge collections. Package feed provides
// the production implementation.
type EventSource interface {
	Payments() ([]PaymentEvent, error)
	Pledges() ([]PledgeRecord, error)
}

// Result is the output of one pipeline run: normalized events, pledges, and
// the rate set used to convert. It is a pure function of the source snapshots
// and the window; nothing in it is shared with other runs.
type Result struct {
	Window  date.Range
	Events  []NormalizedPaymentEvent
	Pledges []PledgeRecord
	Rates   *RateSet
}

// Run executes the full pipeline: fetch rates over the window, load both
// feeds, merge, convert.
//
// Failure policy: an unreachable feed is fatal and yields no Result at all
// (all-or-nothing). A rate series that cannot be fetched only disables its
// currency: the failure is recorded in Result.Rates.Failed, affected events
// end up flagged missing_rate, and the run continues.
func Run(rates RateFetcher, source EventSource, window date.Range) (*Result, error) {
	return RunWithRates(FetchRates(rates, window), source, window)
}

// RunWithRates is Run with an already fetched (or decoded from a previous
// fetch) rate set.
func RunWithRates(set *RateSet, source EventSource, window date.Range) (*Result, error) {
	for pair, err := range set.Failed {
		log.Printf("rate series %s unavailable, its currency will not be converted: %v", pair, err)
	}

	payments, err := source.Payments()
	if err != nil {
		return nil, fmt.Errorf("payments feed: %w", err)
	}
	pledges, err := source.Pledges()
	if err != nil {
		return nil, fmt.Errorf("pledges feed: %w", err)
	}

	SortEvents(payments)
	SortPledges(pledges)

	return &Result{
		Window:  window,
		Events:  Normalize(payments, set),
		Pledges: pledges,
		Rates:   set,
	}, nil
}

// FetchRates fetches and densifies every known pair over the window, in
// parallel. A failing pair is recorded and skipped; it never aborts the
// others. See fetchAll for the concurrency.
func FetchRates(fetcher RateFetcher, window date.Range) *RateSet {
	set := NewRateSet()
	for pair, res := range fetchAll(fetcher, Pairs(), window) {
		if res.err != nil {
			set.Failed[pair] = res.err
			continue
		}
		series, err := Densify(pair, res.sparse, window)
		if err != nil {
			set.Failed[pair] = err
			continue
		}
		set.Add(series)
	}
	return set
}

type fetchResult struct {
	sparse *date.History[decimal.Decimal]
	err    error
}

// fetchAll runs one fetch per pair concurrently and joins the results over a
// buffered channel. Pairs share nothing, so one slow or failing fetch cannot
// corrupt or abort the others; it only delays the final join.
func fetchAll(fetcher RateFetcher, pairs []Pair, window date.Range) map[Pair]fetchResult {
	type keyed struct {
		pair Pair
		res  fetchResult
	}
	ch := make(chan keyed, len(pairs))

	for _, pair := range pairs {
		go func(p Pair) {
			sparse, err := fetcher.Fetch(string(p), window)
			ch <- keyed{p, fetchResult{sparse, err}}
		}(pair)
	}

	results := make(map[Pair]fetchResult, len(pairs))
	for range pairs {
		k := <-ch
		results[k.pair] = k.res
	}
	return results
}

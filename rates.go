package moneymoved

import (
	"fmt"
	"iter"

	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

// Pair identifies a daily exchange-rate series by its FRED symbol.
//
// Two quoting families coexist: series quoted as USD per one foreign unit
// (DEXUSUK, DEXUSAL, DEXUSEU) and series quoted as foreign units per one USD
// (DEXCAUS, DEXSZUS, DEXSIUS). The conversion table in convert.go encodes
// which is which; the fetcher does not care.
type Pair string

const (
	GBPUSD Pair = "DEXUSUK" // USD per GBP
	CADUSD Pair = "DEXCAUS" // CAD per USD
	AUDUSD Pair = "DEXUSAL" // USD per AUD
	EURUSD Pair = "DEXUSEU" // USD per EUR
	CHFUSD Pair = "DEXSZUS" // CHF per USD
	SGDUSD Pair = "DEXSIUS" // SGD per USD
)

// Pairs lists every rate series the pipeline fetches.
func Pairs() []Pair { return []Pair{GBPUSD, CADUSD, AUDUSD, EURUSD, CHFUSD, SGDUSD} }

// RateSeries is a dense, date-indexed series of rate observations for one
// currency pair. Dense means every calendar day in Covered has a value; this
// is what makes same-day lookups total within the covered window.
type RateSeries struct {
	pair    Pair
	covered date.Range
	rates   date.History[decimal.Decimal]
}

// Pair returns the currency pair symbol of the series.
func (s *RateSeries) Pair() Pair { return s.pair }

// Covered returns the contiguous date range the series covers.
func (s *RateSeries) Covered() date.Range { return s.covered }

// Len returns the number of daily observations.
func (s *RateSeries) Len() int { return s.rates.Len() }

// Rate returns the observation at exactly 'day'. The second value is false
// when day falls outside the covered window. Inside the window it is always
// true, by density.
func (s *RateSeries) Rate(day date.Date) (decimal.Decimal, bool) {
	return s.rates.Get(day)
}

// Values iterates the daily observations in chronological order.
func (s *RateSeries) Values() iter.Seq2[date.Date, decimal.Decimal] {
	return s.rates.Values()
}

// Densify builds a RateSeries covering every calendar day of 'window' from
// sparse observations (weekends and holidays absent in the source).
//
// Days without a direct observation carry the most recent earlier observation
// forward. Days before the source's first observation are seeded from that
// first observation (the only place backward-fill is allowed). A source with
// no observations at all cannot be densified and is rejected: a zero rate is
// never fabricated.
func Densify(pair Pair, sparse *date.History[decimal.Decimal], window date.Range) (*RateSeries, error) {
	if sparse.Len() == 0 {
		return nil, fmt.Errorf("cannot densify %s over %s: %w", pair, window, ErrDataUnavailable)
	}
	_, seed := sparse.Oldest()

	s := &RateSeries{pair: pair, covered: window}
	for day := range window.Days() {
		rate, ok := sparse.ValueAsOf(day)
		if !ok {
			// Before the first observation: seed with it.
			rate = seed
		}
		s.rates.Append(day, rate)
	}
	return s, nil
}

// RateSet holds the dense series of every successfully fetched pair, keyed by
// symbol, plus the per-pair fetch failures of the run.
type RateSet struct {
	series map[Pair]*RateSeries
	// Failed records pairs whose fetch failed, with the cause. Events in
	// those currencies are flagged instead of converted.
	Failed map[Pair]error
}

// NewRateSet returns an empty rate set.
func NewRateSet() *RateSet {
	return &RateSet{series: make(map[Pair]*RateSeries), Failed: make(map[Pair]error)}
}

// Add registers a dense series for its pair.
func (rs *RateSet) Add(s *RateSeries) { rs.series[s.pair] = s }

// Get returns the series for a pair, or nil when it was not fetched.
func (rs *RateSet) Get(p Pair) *RateSeries { return rs.series[p] }

// Rate returns the rate of pair p on day, or false when the pair is absent or
// the day is outside its covered window.
func (rs *RateSet) Rate(p Pair, day date.Date) (decimal.Decimal, bool) {
	s, ok := rs.series[p]
	if !ok {
		return decimal.Decimal{}, false
	}
	return s.Rate(day)
}

// Len returns the number of fetched series.
func (rs *RateSet) Len() int { return len(rs.series) }

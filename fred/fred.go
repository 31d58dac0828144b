// Package fred fetches daily exchange-rate observations from the FRED
// series-observations API (fred.stlouisfed.org).
package fred

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/oftw-data/moneymoved"
	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

const fredAPIKeyEnv = "FRED_API_KEY"

var fredAPIFlag = flag.String("fred-api-key", "", "FRED API key to use for fetching exchange rates.\n If missing it will read from the environment variable \""+fredAPIKeyEnv+"\". You can get one at https://fred.stlouisfed.org/docs/api/api_key.html")

func apiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *fredAPIFlag == "" {
		*fredAPIFlag = os.Getenv(fredAPIKeyEnv)
	}
	return *fredAPIFlag
}

// DefaultBaseURL is the production endpoint of the series-observations API.
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

// Client queries the FRED API for one series at a time.
type Client struct {
	// BaseURL of the API, overridable for tests.
	BaseURL string
	// Key is the API key. Empty falls back to the -fred-api-key flag and the
	// FRED_API_KEY environment variable.
	Key string
}

// NewClient returns a client against the production API.
func NewClient() *Client { return &Client{BaseURL: DefaultBaseURL} }

func (c *Client) key() string {
	if c.Key != "" {
		return c.Key
	}
	return apiKey()
}

// Fetch returns the sparse daily observations of one series over the window.
//
// The API reports non-trading days either not at all or with the "."
// placeholder value; both are skipped here, and gap-filling is the caller's
// business. A series with zero usable observations is an error: there is
// nothing to carry forward from.
func (c *Client) Fetch(symbol string, window date.Range) (*date.History[decimal.Decimal], error) {
	// https://api.stlouisfed.org/fred/series/observations?series_id=DEXUSUK&file_type=json
	// {
	//   "observation_start": "2024-07-01",
	//   ...
	//   "observations": [
	//     {"realtime_start": "...", "realtime_end": "...", "date": "2024-07-01", "value": "1.2643"},
	//     {"realtime_start": "...", "realtime_end": "...", "date": "2024-07-04", "value": "."},
	//   ]
	// }

	addr := fmt.Sprintf("%s/series/observations?series_id=%s&file_type=json&observation_start=%s&observation_end=%s&api_key=%s",
		c.BaseURL, url.QueryEscape(symbol), window.From, window.To, url.QueryEscape(c.key()))

	type observation struct {
		Date  date.Date `json:"date"`
		Value string    `json:"value"`
	}
	var content struct {
		Observations []observation `json:"observations"`
	}
	if err := jwget(daily(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch series %s: %w", symbol, err)
	}

	sparse := new(date.History[decimal.Decimal])
	for _, obs := range content.Observations {
		if obs.Value == "." || obs.Value == "" {
			// Placeholder for a non-trading day.
			continue
		}
		rate, err := decimal.NewFromString(obs.Value)
		if err != nil {
			return nil, fmt.Errorf("series %s has a non-numeric value %q on %s: %w", symbol, obs.Value, obs.Date, err)
		}
		sparse.Append(obs.Date, rate)
	}
	if sparse.Len() == 0 {
		return nil, fmt.Errorf("%w: series %s returned no usable observations over %s", moneymoved.ErrDataUnavailable, symbol, window)
	}
	return sparse, nil
}

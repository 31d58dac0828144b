// Package cmd implements the CLI application around the money-moved pipeline.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/oftw-data/moneymoved"
	"github.com/oftw-data/moneymoved/date"
	"github.com/oftw-data/moneymoved/feed"
	"github.com/oftw-data/moneymoved/fred"
)

// Commands lists the subcommands of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&runCmd{},
	&reportCmd{},
	&monthlyCmd{},
	&pledgesCmd{},
	&topicCmd{},
}

const (
	EnvPaymentsURL = "MM_PAYMENTS_URL"
	EnvPledgesURL  = "MM_PLEDGES_URL"
	EnvRatesFile   = "MM_RATES_FILE"

	defaultPaymentsURL = "https://storage.googleapis.com/plotly-app-challenge/one-for-the-world-payments.json"
	defaultPledgesURL  = "https://storage.googleapis.com/plotly-app-challenge/one-for-the-world-pledges.json"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ratesFile = flag.String("rates-file", defaultRatesFile(), "Path to the rates store (JSONL format, written by 'mmd fetch'). Defaults to $"+EnvRatesFile+" then rates.jsonl.")

func defaultRatesFile() string {
	if f := os.Getenv(EnvRatesFile); f != "" {
		return f
	}
	return "rates.jsonl"
}
var paymentsURL = flag.String("payments-url", "", "URL of the payments feed. Defaults to $"+EnvPaymentsURL+" then the public feed.")
var pledgesURL = flag.String("pledges-url", "", "URL of the pledges feed. Defaults to $"+EnvPledgesURL+" then the public feed.")

// feedClient builds the feed client from flags and environment.
func feedClient() *feed.Client {
	payments := *paymentsURL
	if payments == "" {
		payments = os.Getenv(EnvPaymentsURL)
	}
	if payments == "" {
		payments = defaultPaymentsURL
	}
	pledges := *pledgesURL
	if pledges == "" {
		pledges = os.Getenv(EnvPledgesURL)
	}
	if pledges == "" {
		pledges = defaultPledgesURL
	}
	return &feed.Client{PaymentsURL: payments, PledgesURL: pledges}
}

// windowFlags holds the -from/-to reporting window flags shared by the
// pipeline subcommands.
type windowFlags struct {
	from, to string
}

func (w *windowFlags) set(f *flag.FlagSet) {
	f.StringVar(&w.from, "from", "2020-01-01", "First day of the reporting window")
	f.StringVar(&w.to, "to", "", "Last day of the reporting window (defaults to today)")
}

func (w *windowFlags) parse() (date.Range, error) {
	from, err := date.Parse(w.from)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid -from: %w", err)
	}
	to := date.Today()
	if w.to != "" {
		if to, err = date.Parse(w.to); err != nil {
			return date.Range{}, fmt.Errorf("invalid -to: %w", err)
		}
	}
	if to.Before(from) {
		return date.Range{}, fmt.Errorf("window %s..%s is empty", from, to)
	}
	return date.NewRange(from, to), nil
}

// DecodeRates loads the rates store written by 'mmd fetch'. When the store
// does not exist it fetches live instead, so every subcommand works on a
// fresh checkout.
func DecodeRates(window date.Range) (*moneymoved.RateSet, error) {
	f, err := os.Open(*ratesFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "rates store %q does not exist, fetching live\n", *ratesFile)
		return moneymoved.FetchRates(fred.NewClient(), window), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return moneymoved.DecodeRates(f)
}

// EncodeRates writes the rate set to the rates store.
func EncodeRates(set *moneymoved.RateSet) error {
	f, err := os.Create(*ratesFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return moneymoved.EncodeRates(f, set)
}

// Package feed loads the payment and pledge collections from their remote
// JSON documents.
//
// Feeds are loosely structured: field sets drift, dates arrive in several
// shapes or not at all, numbers come as numbers or strings. Extraction is
// therefore tolerant per field (a bad or absent value degrades that field,
// never drops the record), but strict per source: a feed that cannot be
// retrieved or decoded at all is fatal for the run.
package feed

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/oftw-data/moneymoved"
	"github.com/oftw-data/moneymoved/date"
	"github.com/shopspring/decimal"
)

// Client loads both feeds from their URLs.
type Client struct {
	PaymentsURL string
	PledgesURL  string
}

// Payments retrieves and parses the payments feed, sorted ascending by date.
func (c *Client) Payments() ([]moneymoved.PaymentEvent, error) {
	records, err := fetchArray(c.PaymentsURL)
	if err != nil {
		return nil, fmt.Errorf("payments feed %s: %w: %v", c.PaymentsURL, moneymoved.ErrSourceUnreachable, err)
	}

	events := make([]moneymoved.PaymentEvent, 0, len(records))
	for _, rec := range records {
		events = append(events, moneymoved.PaymentEvent{
			Date:              date.Coerce(str(rec, "$.date")),
			Amount:            dec(rec, "$.amount"),
			Currency:          str(rec, "$.currency"),
			Platform:          str(rec, "$.payment_platform"),
			Counterfactuality: dec(rec, "$.counterfactuality"),
			Source:            firstStr(rec, "$.source", "$.chapter_name", "$.payment_source"),
		})
	}
	moneymoved.SortEvents(events)
	return events, nil
}

// Pledges retrieves and parses the pledges feed, sorted ascending by creation
// date.
func (c *Client) Pledges() ([]moneymoved.PledgeRecord, error) {
	records, err := fetchArray(c.PledgesURL)
	if err != nil {
		return nil, fmt.Errorf("pledges feed %s: %w: %v", c.PledgesURL, moneymoved.ErrSourceUnreachable, err)
	}

	pledges := make([]moneymoved.PledgeRecord, 0, len(records))
	for _, rec := range records {
		pledges = append(pledges, moneymoved.PledgeRecord{
			PledgeID:           str(rec, "$.pledge_id"),
			DonorID:            str(rec, "$.donor_id"),
			Status:             str(rec, "$.pledge_status"),
			ContributionAmount: dec(rec, "$.contribution_amount"),
			CreatedAt:          date.Coerce(str(rec, "$.pledge_created_at")),
			StartsAt:           date.Coerce(str(rec, "$.pledge_starts_at")),
			EndedAt:            date.Coerce(str(rec, "$.pledge_ended_at")),
		})
	}
	moneymoved.SortPledges(pledges)
	return pledges, nil
}

// str extracts a string field, "" when absent or not a string.
func str(rec any, path string) string {
	jval, err := jsonpath.Get(path, rec)
	if err != nil {
		return ""
	}
	switch v := jval.(type) {
	case string:
		return v
	case float64:
		// ids occasionally arrive as numbers
		return decimal.NewFromFloat(v).String()
	default:
		return ""
	}
}

// firstStr returns the first path that extracts a non-empty string.
func firstStr(rec any, paths ...string) string {
	for _, p := range paths {
		if v := str(rec, p); v != "" {
			return v
		}
	}
	return ""
}

// dec extracts a numeric field, zero when absent or unparseable.
func dec(rec any, path string) decimal.Decimal {
	jval, err := jsonpath.Get(path, rec)
	if err != nil {
		return decimal.Decimal{}
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}
		}
		return d
	default:
		return decimal.Decimal{}
	}
}

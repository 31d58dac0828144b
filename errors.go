package moneymoved

import "errors"

// The pipeline distinguishes two failure families: per-source fatal errors
// that abort a run, and per-row conditions that are recorded on the row and
// never abort anything.

// ErrDataUnavailable reports that a currency's rate series could not be
// fetched at all. The currency is excluded from conversion, its events are
// flagged, and the run continues.
var ErrDataUnavailable = errors.New("rate data unavailable")

// ErrSourceUnreachable reports that a payment or pledge feed could not be
// retrieved. It is fatal for the run: no partial output is produced.
var ErrSourceUnreachable = errors.New("source unreachable")

// Flag marks a recoverable per-row condition for audit. Flagged rows are
// always retained.
type Flag string

const (
	// FlagMissingRate marks an event whose date has no matching rate
	// observation; its USD amount is left unset.
	FlagMissingRate Flag = "missing_rate"
	// FlagUnrecognizedCurrency marks an event whose currency has no entry in
	// the conversion table; its amount passes through unconverted.
	FlagUnrecognizedCurrency Flag = "unrecognized_currency"
	// FlagUnknownDate marks a record whose date could not be parsed; it
	// buckets as Unknown.
	FlagUnknownDate Flag = "unknown_date"
)

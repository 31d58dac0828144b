package moneymoved

// Conversion direction is fixed by the quoting convention of each rate
// series, not a free choice: DEXUSUK-style series quote USD per foreign unit
// (multiply), DEXCAUS-style series quote foreign units per USD (divide).
// Encoding the direction in a table makes adding a currency a data change.

// Op is the arithmetic a conversion rule applies to the native amount.
type Op int

const (
	// Identity leaves the amount as is: the currency is already the base.
	Identity Op = iota
	// Multiply applies amount × rate, for series quoted as USD per foreign unit.
	Multiply
	// Divide applies amount ÷ rate, for series quoted as foreign units per USD.
	Divide
)

func (o Op) String() string {
	switch o {
	case Identity:
		return "identity"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}

// ConversionRule binds a currency to its rate series and direction.
type ConversionRule struct {
	Op   Op
	Pair Pair // unset for Identity
}

// BaseCurrency is the reporting currency every amount is normalized into.
const BaseCurrency = "USD"

// ConversionTable maps a currency code to its conversion rule.
var ConversionTable = map[string]ConversionRule{
	BaseCurrency: {Op: Identity},
	"GBP":        {Op: Multiply, Pair: GBPUSD},
	"AUD":        {Op: Multiply, Pair: AUDUSD},
	"EUR":        {Op: Multiply, Pair: EURUSD},
	"CAD":        {Op: Divide, Pair: CADUSD},
	"CHF":        {Op: Divide, Pair: CHFUSD},
	"SGD":        {Op: Divide, Pair: SGDUSD},
}

// Convert fills AmountUSD on a merged event.
//
// Policy, in order:
//   - base currency: identity, AmountUSD = Amount;
//   - unrecognized currency: identity too, but flagged for audit (explicit
//     policy inherited from the source system, not an error);
//   - known currency with a matched rate: multiply or divide per the table;
//   - known currency without a matched rate: AmountUSD left unset, row
//     flagged missing_rate and retained. A synthetic rate is never made up.
func Convert(e *NormalizedPaymentEvent) {
	rule, ok := ConversionTable[e.Currency]
	if !ok {
		e.AmountUSD, e.HasUSD = e.Amount, true
		e.Flags = append(e.Flags, FlagUnrecognizedCurrency)
		return
	}
	if rule.Op == Identity {
		e.AmountUSD, e.HasUSD = e.Amount, true
		return
	}
	rate, ok := e.Rates[rule.Pair]
	if !ok || rate.IsZero() {
		e.HasUSD = false
		e.Flags = append(e.Flags, FlagMissingRate)
		return
	}
	switch rule.Op {
	case Multiply:
		e.AmountUSD = e.Amount.Mul(rate)
	case Divide:
		e.AmountUSD = e.Amount.Div(rate)
	}
	e.HasUSD = true
}

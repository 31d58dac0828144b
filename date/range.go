package date

import "iter"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to], both bounds included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Days returns an iterator over every calendar day in the range, in order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}

// Len returns the number of calendar days in the range.
func (r Range) Len() int {
	if r.To.Before(r.From) {
		return 0
	}
	n := 0
	for on := r.From; !on.After(r.To); on = on.Add(1) {
		n++
	}
	return n
}

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }

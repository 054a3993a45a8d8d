package date

import "iter"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range covering both boundaries, inclusive.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsValid reports whether the range spans at least one day.
func (r Range) IsValid() bool { return !r.To.Before(r.From) }

// Days returns the number of calendar days in the range, boundaries included.
func (r Range) Days() int {
	if !r.IsValid() {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// All returns an iterator over every calendar day in the range, in order.
func (r Range) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }

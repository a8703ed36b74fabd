package lifeplan

import (
	"fmt"
	"iter"
)

// Range represents the inclusive range of plan years.
type Range struct{ From, To int }

// NewRange creates a new year range. If 'from' is after 'to', they are swapped.
func NewRange(from, to int) Range {
	if from > to {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true if year is included in the range (boundaries included).
func (r Range) Contains(year int) bool { return year >= r.From && year <= r.To }

// Len returns the number of years in the range.
func (r Range) Len() int {
	if r.To < r.From {
		return 0
	}
	return r.To - r.From + 1
}

// Index returns the position of year in the range, or -1.
func (r Range) Index(year int) int {
	if !r.Contains(year) {
		return -1
	}
	return year - r.From
}

// Years returns an iterator that yields each year within the range, inclusive.
func (r Range) Years() iter.Seq[int] {
	return func(yield func(int) bool) {
		for y := r.From; y <= r.To; y++ {
			if !yield(y) {
				return
			}
		}
	}
}

// Intersect returns the part of r that is also in o, and false if they do not overlap.
func (r Range) Intersect(o Range) (Range, bool) {
	from, to := max(r.From, o.From), min(r.To, o.To)
	if from > to {
		return Range{}, false
	}
	return Range{From: from, To: to}, true
}

func (r Range) String() string {
	if r.From == r.To {
		return fmt.Sprint(r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

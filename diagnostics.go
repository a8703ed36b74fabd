package lifeplan

import (
	"fmt"
	"iter"
	"slices"
)

// DiagnosticKind classifies the non fatal conditions met during a projection.
type DiagnosticKind int

const (
	// MalformedRecord is a record that could not be decoded. It is excluded from all projections.
	MalformedRecord DiagnosticKind = iota
	// FeedUnavailable is a plan year whose transactions could not be fetched. The year is projected as empty.
	FeedUnavailable
	// PriceGap is a plan year with a non zero holding but no price entry. The holding is valued at zero.
	PriceGap
	// OverSell is a sell of more units than held. The quantity is floored at zero.
	OverSell
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedRecord:
		return "malformedRecord"
	case FeedUnavailable:
		return "feedUnavailable"
	case PriceGap:
		return "priceGap"
	case OverSell:
		return "overSell"
	default:
		return "unknown"
	}
}

// Diagnostic is a warning level condition observed while building a projection.
type Diagnostic struct {
	Kind          DiagnosticKind
	Year          int
	TransactionID string
	AssetID       string
	Message       string
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s in %d", d.Kind, d.Year)
	if d.AssetID != "" {
		s += " asset " + d.AssetID
	}
	if d.TransactionID != "" {
		s += " transaction " + d.TransactionID
	}
	if d.Message != "" {
		s += ": " + d.Message
	}
	return s
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []Diagnostic

// Of returns an iterator over the diagnostics of the given kind.
func (ds Diagnostics) Of(kind DiagnosticKind) iter.Seq[Diagnostic] {
	return func(yield func(Diagnostic) bool) {
		for _, d := range ds {
			if d.Kind == kind && !yield(d) {
				return
			}
		}
	}
}

// Count returns the number of diagnostics of the given kind.
func (ds Diagnostics) Count(kind DiagnosticKind) int {
	n := 0
	for range ds.Of(kind) {
		n++
	}
	return n
}

// sorted returns a copy sorted by year then kind, keeping the original order otherwise.
func (ds Diagnostics) sorted() Diagnostics {
	c := slices.Clone(ds)
	slices.SortStableFunc(c, func(a, b Diagnostic) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Kind) - int(b.Kind)
	})
	return c
}

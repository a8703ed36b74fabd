package lifeplan

import (
	"fmt"
	"slices"
	"strings"
)

// OtherKey is the key of the synthetic group collecting transactions whose
// category or event is unknown or missing.
const OtherKey = "other"

const (
	otherLabel = "Other"
	otherColor = "#9e9e9e"
)

// GroupBy selects the grouping key of a report.
type GroupBy int

const (
	ByCategory GroupBy = iota
	ByEvent
)

func (g GroupBy) String() string {
	switch g {
	case ByCategory:
		return "category"
	case ByEvent:
		return "event"
	default:
		return "unknown"
	}
}

// ParseGroupBy parses a grouping name.
func ParseGroupBy(s string) (GroupBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category", "categories":
		return ByCategory, nil
	case "event", "events":
		return ByEvent, nil
	default:
		return ByCategory, fmt.Errorf("unknown grouping %q", s)
	}
}

// ReportOptions configures Aggregate.
type ReportOptions struct {
	GroupBy    GroupBy
	Categories []Category
	Events     []Event
	Types      []TxType // only these types when not empty.
	TopN       int      // keep the N largest groups when positive.
}

// Slice is one group of a report.
type Slice struct {
	Key        string
	Label      string
	Color      string
	Count      int
	Total      Money
	Percentage Percent // share of the sum of all groups, before truncation.
}

// Aggregate groups transactions by category or event and ranks the groups by
// total yearly amount, largest first.
//
// Every selected transaction lands in exactly one group: those without a
// known key go to the OtherKey group, so that totals reconcile with the input.
func Aggregate(txs []Transaction, opts ReportOptions) []Slice {
	keyOf := opts.keyFunc()

	groups := make(map[string]*Slice)
	var order []string
	var sum Money
	for _, tx := range txs {
		if len(opts.Types) > 0 && !slices.Contains(opts.Types, tx.What().Type()) {
			continue
		}
		key, label, color := keyOf(tx)
		g, ok := groups[key]
		if !ok {
			g = &Slice{Key: key, Label: label, Color: color}
			groups[key] = g
			order = append(order, key)
		}
		amount := tx.YearlyAmount()
		g.Total = g.Total.Add(amount)
		g.Count++
		sum = sum.Add(amount)
	}

	res := make([]Slice, 0, len(order))
	for _, key := range order {
		g := *groups[key]
		g.Percentage = g.Total.Ratio(sum)
		res = append(res, g)
	}
	slices.SortStableFunc(res, func(a, b Slice) int {
		if c := b.Total.Decimal().Cmp(a.Total.Decimal()); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	if opts.TopN > 0 && len(res) > opts.TopN {
		res = res[:opts.TopN]
	}
	return res
}

// AggregateYears aggregates the transactions of the book within window.
func AggregateYears(book *Book, window Range, opts ReportOptions) []Slice {
	return Aggregate(book.Window(window), opts)
}

// keyFunc returns the function resolving the group of a transaction.
func (o ReportOptions) keyFunc() func(Transaction) (key, label, color string) {
	other := func() (string, string, string) { return OtherKey, otherLabel, otherColor }

	switch o.GroupBy {
	case ByEvent:
		events := make(map[string]Event, len(o.Events))
		member := make(map[string]string) // transaction id -> event id
		for _, e := range o.Events {
			events[e.ID] = e
			for _, id := range e.TransactionIDs {
				if _, exists := member[id]; !exists {
					member[id] = e.ID
				}
			}
		}
		return func(tx Transaction) (string, string, string) {
			h := tx.Header()
			id, ok := member[h.ID]
			if !ok {
				id = h.EventID
			}
			if e, ok := events[id]; ok && id != "" {
				return e.ID, e.Name, e.Color
			}
			return other()
		}
	default:
		categories := make(map[string]Category, len(o.Categories))
		for _, c := range o.Categories {
			categories[c.ID] = c
		}
		return func(tx Transaction) (string, string, string) {
			id := tx.Header().CategoryID
			if c, ok := categories[id]; ok && id != "" {
				return c.ID, c.Name, c.Color
			}
			return other()
		}
	}
}

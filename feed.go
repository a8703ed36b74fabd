package lifeplan

import (
	"cmp"
	"slices"
)

// TransactionFeed supplies the persisted transactions of one plan year.
type TransactionFeed interface {
	Transactions(year int) ([]Record, error)
}

// FeedFunc adapts a function to the TransactionFeed interface.
type FeedFunc func(year int) ([]Record, error)

// Transactions calls f(year).
func (f FeedFunc) Transactions(year int) ([]Record, error) { return f(year) }

// RecordFeed is an in-memory TransactionFeed indexed by record year.
type RecordFeed struct {
	byYear map[int][]Record
}

// NewRecordFeed indexes records by year, keeping their order.
func NewRecordFeed(records ...Record) *RecordFeed {
	f := &RecordFeed{byYear: make(map[int][]Record)}
	f.Append(records...)
	return f
}

// Append adds records to the feed.
func (f *RecordFeed) Append(records ...Record) {
	for _, r := range records {
		f.byYear[r.Year] = append(f.byYear[r.Year], r)
	}
}

// Transactions returns the records of that year. It never fails.
func (f *RecordFeed) Transactions(year int) ([]Record, error) {
	return f.byYear[year], nil
}

// Records returns all records ordered by year, then insertion.
func (f *RecordFeed) Records() []Record {
	years := make([]int, 0, len(f.byYear))
	for y := range f.byYear {
		years = append(years, y)
	}
	slices.Sort(years)
	var all []Record
	for _, y := range years {
		all = append(all, f.byYear[y]...)
	}
	return all
}

// SortRecords sorts records by year then month, keeping the file order of
// records of the same month.
func SortRecords(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.Month, b.Month)
	})
}

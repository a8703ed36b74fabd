package lifeplan

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Book holds the decoded transactions of a plan, one chronologically sorted
// list per plan year.
//
// It is the single entry point from the persisted records to the projectors:
// malformed records and unavailable years are turned into diagnostics here,
// records outside of the plan range are dropped.
type Book struct {
	settings    PlanSettings
	years       [][]Transaction // index is year - StartYear, sorted by month.
	diagnostics Diagnostics
}

// NewBook queries feed once per plan year and decodes every record.
//
// It only fails on invalid settings. A year whose query fails is kept empty
// and reported as FeedUnavailable; a record that does not decode is reported
// as MalformedRecord. A record is only taken from the query of its own year.
func NewBook(settings PlanSettings, feed TransactionFeed) (*Book, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	r := settings.Range()
	b := &Book{
		settings: settings,
		years:    make([][]Transaction, r.Len()),
	}
	for year := range r.Years() {
		records, err := feed.Transactions(year)
		if err != nil {
			b.diagnostics = append(b.diagnostics, Diagnostic{
				Kind:    FeedUnavailable,
				Year:    year,
				Message: err.Error(),
			})
			continue
		}
		var txs []Transaction
		for _, rec := range records {
			if rec.Year != year {
				continue
			}
			tx, err := rec.Decode(settings.Currency)
			if err != nil {
				b.diagnostics = append(b.diagnostics, Diagnostic{
					Kind:          MalformedRecord,
					Year:          year,
					TransactionID: rec.ID,
					Message:       err.Error(),
				})
				continue
			}
			txs = append(txs, tx)
		}
		slices.SortStableFunc(txs, func(a, b Transaction) int {
			return a.Header().Month - b.Header().Month
		})
		b.years[r.Index(year)] = txs
	}
	return b, nil
}

// NewBookFromRecords is a shortcut for NewBook with an in-memory feed.
func NewBookFromRecords(settings PlanSettings, records ...Record) (*Book, error) {
	return NewBook(settings, NewRecordFeed(records...))
}

// Settings returns the plan settings the book was built with.
func (b *Book) Settings() PlanSettings { return b.settings }

// Range returns the plan year range.
func (b *Book) Range() Range { return b.settings.Range() }

// Year returns the transactions of a plan year, sorted by month.
// The returned slice must not be modified.
func (b *Book) Year(year int) []Transaction {
	i := b.Range().Index(year)
	if i < 0 {
		return nil
	}
	return b.years[i]
}

// All returns an iterator over all transactions in (year, month) order.
func (b *Book) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, txs := range b.years {
			for _, tx := range txs {
				if !yield(tx) {
					return
				}
			}
		}
	}
}

// Window returns the transactions of the years in w, in (year, month) order.
func (b *Book) Window(w Range) []Transaction {
	var txs []Transaction
	w, ok := w.Intersect(b.Range())
	if !ok {
		return nil
	}
	for year := range w.Years() {
		txs = append(txs, b.Year(year)...)
	}
	return txs
}

// Diagnostics returns the conditions met while decoding the feed.
func (b *Book) Diagnostics() Diagnostics { return slices.Clone(b.diagnostics) }

// Find returns the transaction with this id.
func (b *Book) Find(id string) (Transaction, bool) {
	for tx := range b.All() {
		if tx.Header().ID == id {
			return tx, true
		}
	}
	return nil, false
}

// CheckReferences reports transactions pointing to accounts or assets that are
// not part of the plan. Such transactions are not malformed, they simply never
// apply to any known entity.
func (b *Book) CheckReferences(accounts []Account, assets []AssetInfo) error {
	knownAccount := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		knownAccount[a.ID] = true
	}
	knownAsset := make(map[string]bool, len(assets))
	for _, a := range assets {
		knownAsset[a.ID] = true
	}
	var errs error
	check := func(tx Transaction, kind, id string, known map[string]bool) {
		if id != "" && !known[id] {
			errs = errors.Join(errs, fmt.Errorf("transaction %q in %d references unknown %s %q", tx.Header().ID, tx.Header().Year, kind, id))
		}
	}
	for tx := range b.All() {
		switch v := tx.(type) {
		case Expense:
			check(tx, "account", v.Account, knownAccount)
		case Income:
			check(tx, "account", v.Account, knownAccount)
		case Transfer:
			check(tx, "account", v.From, knownAccount)
			check(tx, "account", v.To, knownAccount)
		case Buy:
			check(tx, "account", v.Account, knownAccount)
			check(tx, "asset", v.Asset, knownAsset)
		case Sell:
			check(tx, "account", v.Account, knownAccount)
			check(tx, "asset", v.Asset, knownAsset)
		case Dividend:
			check(tx, "account", v.Account, knownAccount)
			check(tx, "asset", v.Asset, knownAsset)
		}
	}
	return errs
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeplan"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	id        string
	typ       string
	subtype   string
	amount    string
	frequency int
	year      int
	month     int
	category  string
	from      string
	to        string
	asset     string
	quantity  string
	event     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a transaction record to the plan" }
func (*addCmd) Usage() string {
	return `lpc add -type <type> [-subtype <subtype>] -amount <amount> -year <year> [options]

  Validates a transaction record and appends it to transactions.jsonl.
  The record must reference accounts and assets of the plan. See 'lpc topic
  transactions' for the ids required by each type.

Usage Examples:
# Monthly rent.
$ lpc add -type expense -amount 120000 -frequency 12 -year 2025 -month 1 -to main -category housing

# Buy 25 units of an index fund.
$ lpc add -type investment -subtype buy -amount 600000 -quantity 25 -year 2025 -from broker -asset world
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id. A random one by default.")
	f.StringVar(&c.typ, "type", "", "Transaction type: expense, income, transfer or investment (required)")
	f.StringVar(&c.subtype, "subtype", "", "Investment subtype: buy, sell or dividend")
	f.StringVar(&c.amount, "amount", "", "Amount of one occurrence (required)")
	f.IntVar(&c.frequency, "frequency", 1, "Occurrences per year")
	f.IntVar(&c.year, "year", 0, "Plan year (required)")
	f.IntVar(&c.month, "month", 0, "Month, 1-12")
	f.StringVar(&c.category, "category", "", "Category id")
	f.StringVar(&c.from, "from", "", "Source account id")
	f.StringVar(&c.to, "to", "", "Destination account id")
	f.StringVar(&c.asset, "asset", "", "Asset id or symbol")
	f.StringVar(&c.quantity, "quantity", "0", "Units bought or sold")
	f.StringVar(&c.event, "event", "", "Life event id")
}

// record builds the record from the flags, without validating it.
func (c *addCmd) record() (lifeplan.Record, error) {
	typ, err := lifeplan.ParseTxType(c.typ)
	if err != nil {
		return lifeplan.Record{}, err
	}
	if c.year == 0 {
		return lifeplan.Record{}, fmt.Errorf("-year is required")
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return lifeplan.Record{}, fmt.Errorf("invalid -amount %q: %w", c.amount, err)
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		return lifeplan.Record{}, fmt.Errorf("invalid -quantity %q: %w", c.quantity, err)
	}
	id := c.id
	if id == "" {
		id = uuid.NewString()
	}
	return lifeplan.Record{
		ID:             id,
		Type:           typ,
		Subtype:        lifeplan.Subtype(c.subtype),
		Amount:         amount,
		Frequency:      c.frequency,
		Year:           c.year,
		Month:          c.month,
		CategoryID:     c.category,
		FromAccountID:  c.from,
		ToAccountID:    c.to,
		HoldingAssetID: c.asset,
		Quantity:       quantity,
		EventID:        c.event,
	}, nil
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := c.record()
	if err != nil {
		return usage("%v", err)
	}
	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	if asset, ok := s.plan.Asset(rec.HoldingAssetID); ok {
		rec.HoldingAssetID = asset.ID
	}

	if _, err := rec.Decode(s.plan.Settings.Currency); err != nil {
		return usage("%v", err)
	}
	for _, r := range s.feed.Records() {
		if r.ID == rec.ID {
			return usage("transaction id %q already exists", rec.ID)
		}
	}
	if !s.plan.Settings.Range().Contains(rec.Year) {
		s.log.Warn().Int("year", rec.Year).Stringer("plan", s.plan.Settings.Range()).Msg("transaction is outside of the plan years, it will not be projected")
	} else {
		book, err := lifeplan.NewBookFromRecords(s.plan.Settings, rec)
		if err != nil {
			return fail("%v", err)
		}
		if err := book.CheckReferences(s.plan.Accounts, s.plan.Assets); err != nil {
			return usage("%v", err)
		}
	}

	if err := lifeplan.AppendRecord(s.dir, rec); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(os.Stderr, "Successfully appended transaction %s to %s\n", rec.ID, lifeplan.TransactionsFilename)
	return subcommands.ExitSuccess
}

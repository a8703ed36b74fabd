package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/lifeplan"
	"github.com/etnz/lifeplan/renderer"
	"github.com/google/subcommands"
)

type dividendsCmd struct {
	account string
	asset   string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display dividend income per plan year" }
func (*dividendsCmd) Usage() string {
	return `lpc dividends [-account <id> | -asset <id|symbol>]

  Displays the dividends received by every account, or by one account, or
  paid by one asset. For an asset the dividends expected from its per-share
  history are displayed too.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id.")
	f.StringVar(&c.asset, "asset", "", "Asset id or symbol.")
}

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account != "" && c.asset != "" {
		return usage("-account and -asset flags cannot be used together")
	}
	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	p, err := s.project("")
	if err != nil {
		return fail("%v", err)
	}

	if c.asset != "" {
		asset, ok := s.plan.Asset(c.asset)
		if !ok {
			return usage("unknown asset %q", c.asset)
		}
		h, _ := p.Holding(asset.ID)
		name := asset.Name
		if name == "" {
			name = asset.ID
		}
		printMarkdown(renderer.Dividends("Dividends paid by "+name, lifeplan.AccumulateDividends(lifeplan.AssetView(asset.ID), p.Book)) +
			"\n" + renderer.Dividends("Expected dividends of "+name, lifeplan.ExpectedDividends(h)))
		return subcommands.ExitSuccess
	}

	var docs []string
	for _, d := range p.Dividends {
		if c.account != "" && d.Account.ID != c.account {
			continue
		}
		name := d.Account.Name
		if name == "" {
			name = d.Account.ID
		}
		docs = append(docs, renderer.Dividends("Dividends of "+name, d.Series))
	}
	if len(docs) == 0 {
		return usage("unknown account %q", c.account)
	}
	printMarkdown(strings.Join(docs, "\n"))
	return subcommands.ExitSuccess
}

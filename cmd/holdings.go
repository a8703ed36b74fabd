package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/lifeplan/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	asset string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display asset holdings, valuations and realized gains" }
func (*holdingsCmd) Usage() string {
	return `lpc holdings [-asset <id|symbol>]

  Displays, for each plan year, the quantity held, the price, the valuation and
  the expected dividends of every asset, or only of the given one. Realized
  gains and tracking warnings (missing prices, oversold holdings) follow.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset id or symbol. All assets by default.")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	if c.asset != "" {
		if _, ok := s.plan.Asset(c.asset); !ok {
			return usage("unknown asset %q", c.asset)
		}
	}
	p, err := s.project("")
	if err != nil {
		return fail("%v", err)
	}

	var docs []string
	for _, h := range p.Holdings {
		if c.asset != "" && h.Asset.ID != c.asset && h.Asset.Symbol != c.asset {
			continue
		}
		docs = append(docs, renderer.Holding(h))
	}
	if len(docs) == 0 {
		printMarkdown("# Holdings\n\nNo asset in this plan.\n")
		return subcommands.ExitSuccess
	}
	printMarkdown(strings.Join(docs, "\n"))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/lifeplan"
	"github.com/google/subcommands"
)

type importPricesCmd struct {
	asset     string
	file      string
	url       string
	yearPath  string
	pricePath string
	dryRun    bool
}

func (*importPricesCmd) Name() string { return "import-prices" }
func (*importPricesCmd) Synopsis() string {
	return "imports the yearly price history of an asset from a JSON document"
}
func (*importPricesCmd) Usage() string {
	return `lpc import-prices -asset <id> [-file <path> | -url <url>] [-year-path <jsonpath>] [-price-path <jsonpath>] [-dry-run]

  Reads a JSON document, from a file, a URL or stdin, and extracts (year, price) pairs
  with two JSONPath expressions. Years can be numbers or dates, the last price
  of a year wins. Imported prices replace the asset prices of the same years.

Usage Examples:
# Import yearly closes exported from a market data provider.
$ lpc import-prices -asset world -url https://example.com/history.json -year-path '$[*].date' -price-path '$[*].close'
`
}

func (c *importPricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Asset id or symbol (required)")
	f.StringVar(&c.file, "file", "", "JSON document to read, stdin by default")
	f.StringVar(&c.url, "url", "", "URL of the JSON document to download, cached for the day")
	f.StringVar(&c.yearPath, "year-path", "$[*].year", "JSONPath selecting the years")
	f.StringVar(&c.pricePath, "price-path", "$[*].price", "JSONPath selecting the prices")
	f.BoolVar(&c.dryRun, "dry-run", false, "Print the imported prices without saving the plan")
}

func (c *importPricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		return usage("-asset is required")
	}
	if c.file != "" && c.url != "" {
		return usage("-file and -url flags cannot be used together")
	}
	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	asset, ok := s.plan.Asset(c.asset)
	if !ok {
		return usage("unknown asset %q", c.asset)
	}

	var points []lifeplan.PricePoint
	switch {
	case c.url != "":
		points, err = lifeplan.FetchPriceHistory(ctx, lifeplan.DailyClient(""), c.url, c.yearPath, c.pricePath, s.plan.Settings.Currency)
	default:
		var r io.Reader = os.Stdin
		if c.file != "" {
			file, err := os.Open(c.file)
			if err != nil {
				return fail("%v", err)
			}
			defer file.Close()
			r = file
		}
		points, err = lifeplan.ImportPriceHistory(r, c.yearPath, c.pricePath, s.plan.Settings.Currency)
	}
	if err != nil {
		return fail("could not import prices: %v", err)
	}
	s.log.Debug().Str("asset", asset.ID).Int("prices", len(points)).Msg("prices imported")

	if c.dryRun {
		for _, p := range points {
			fmt.Fprintf(stdout, "%d\t%s\n", p.Year, p.Price)
		}
		return subcommands.ExitSuccess
	}

	merged := lifeplan.MergePrices(asset, points)
	for i := range s.plan.Assets {
		if s.plan.Assets[i].ID == asset.ID {
			s.plan.Assets[i] = merged
		}
	}
	if err := s.savePlan(); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(os.Stderr, "Successfully imported %d prices for %s\n", len(points), asset.ID)
	return subcommands.ExitSuccess
}

package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/lifeplan"
)

// Holding renders the year by year state of a holding, its realized gains and
// the warnings met while tracking it.
func Holding(h lifeplan.HoldingProjection) string {
	var b strings.Builder
	expected := lifeplan.ExpectedDividends(h)

	fmt.Fprintf(&b, "# Holding %s\n\n", assetName(h.Asset))
	fmt.Fprintln(&b, "| Year | Quantity | Price | Valuation | Expected Dividends |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for i, pt := range h.Series {
		price := "n/a"
		if pt.Priced {
			price = pt.Price.String()
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			pt.Year,
			pt.Quantity,
			price,
			pt.Valuation,
			expected[i].Amount,
		)
	}

	fmt.Fprint(&b, "\n## Realized Gains\n\n")
	fmt.Fprintln(&b, "| Purchased | Sold | Sold Quantity | Realized Gain | Rate |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
		h.TotalPurchaseAmount,
		h.TotalSellAmount,
		h.SoldQuantity,
		h.RealizedGain.SignedString(),
		h.RealizedGainRate.SignedString(),
	)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Warnings\n\n")
		for _, d := range h.Warnings {
			fmt.Fprintf(w, "- %s\n", d)
		}
		return len(h.Warnings) > 0
	})
	return b.String()
}

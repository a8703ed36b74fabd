package lifeplan

// DividendPoint is the dividend income of one plan year.
type DividendPoint struct {
	Year   int
	Amount Money
}

// AccumulateDividends sums the yearly amount of the Dividend transactions
// paid to an account, or paid by an asset, for each plan year.
func AccumulateDividends(p Perspective, book *Book) []DividendPoint {
	r := book.Range()
	zero := book.Settings().zero()
	res := make([]DividendPoint, 0, r.Len())
	for year := range r.Years() {
		total := zero
		for _, tx := range book.Year(year) {
			if tx.What() != KindDividend {
				continue
			}
			if e := Classify(tx, p); e.Applies {
				total = total.Add(e.Amount)
			}
		}
		res = append(res, DividendPoint{Year: year, Amount: total})
	}
	return res
}

// TotalDividends returns the sum of a dividend series.
func TotalDividends(series []DividendPoint) Money {
	var total Money
	for _, d := range series {
		total = total.Add(d.Amount)
	}
	return total
}

// ExpectedDividends estimates the dividends of a holding from the asset's
// per-share history: year-end quantity times the per-share amount recorded for
// exactly that year. It is informational and never added to any balance.
func ExpectedDividends(h HoldingProjection) []DividendPoint {
	res := make([]DividendPoint, 0, len(h.Series))
	for _, pt := range h.Series {
		amount := M(0, pt.Valuation.Currency())
		if dps, ok := h.Asset.DividendPerShare(pt.Year); ok {
			amount = amount.Add(dps.Mul(pt.Quantity))
		}
		res = append(res, DividendPoint{Year: pt.Year, Amount: amount})
	}
	return res
}

package lifeplan

import "fmt"

// HoldingState is the state of a holding after replaying some transactions.
// It is a value: every step of the replay returns a new one.
type HoldingState struct {
	Quantity     Quantity
	Purchased    Money    // total amount spent in buys.
	Sold         Money    // total amount received from sells.
	SoldQuantity Quantity // total units removed by sells, at most what was held.
}

// apply returns the state after a buy or sell effect. oversold reports a sell
// of more units than held.
func (s HoldingState) apply(kind Kind, e Effect) (next HoldingState, oversold bool) {
	switch kind {
	case KindBuy:
		s.Quantity = s.Quantity.Add(e.Quantity)
		s.Purchased = s.Purchased.Add(e.Amount.Neg())
	case KindSell:
		q := e.Quantity.Neg()
		if q.GreaterThan(s.Quantity) {
			oversold = true
			q = s.Quantity
		}
		s.Quantity = s.Quantity.Sub(q)
		s.Sold = s.Sold.Add(e.Amount)
		s.SoldQuantity = s.SoldQuantity.Add(q)
	}
	return s, oversold
}

// RealizedGain returns the sell proceeds minus the purchase cost.
func (s HoldingState) RealizedGain() Money { return s.Sold.Sub(s.Purchased) }

// HoldingStep is one transaction of the replay and the state right after it.
type HoldingStep struct {
	Transaction Transaction
	State       HoldingState
}

// HoldingPoint is the holding at the end of a plan year.
type HoldingPoint struct {
	Year      int
	Quantity  Quantity
	Price     Money // zero when not Priced.
	Priced    bool  // a price entry exists for exactly that year.
	Valuation Money // Quantity * Price, zero when not Priced.
}

// HoldingProjection is the year by year state of one asset holding.
type HoldingProjection struct {
	Asset               AssetInfo
	Series              []HoldingPoint // one entry per plan year, chronological.
	Steps               []HoldingStep  // every buy and sell, in replay order.
	TotalPurchaseAmount Money
	TotalSellAmount     Money
	SoldQuantity        Quantity // units actually removed, oversold units excluded.
	RealizedGain        Money
	// RealizedGainRate is RealizedGain / TotalPurchaseAmount as a percentage:
	// a ratio of 0.5 is stored as 50. It is 0 without purchase.
	RealizedGainRate    Percent
	Warnings            Diagnostics
}

// At returns the holding at the end of year, or false if year is outside the plan.
func (h HoldingProjection) At(year int) (HoldingPoint, bool) {
	for _, pt := range h.Series {
		if pt.Year == year {
			return pt, true
		}
	}
	return HoldingPoint{}, false
}

// Final returns the holding at the end of the plan.
func (h HoldingProjection) Final() HoldingPoint {
	if len(h.Series) == 0 {
		return HoldingPoint{}
	}
	return h.Series[len(h.Series)-1]
}

// TrackHolding replays the buys and sells of asset in (year, month) order and
// values the holding at the end of each plan year.
//
// A year is valued with the price recorded for exactly that year. Without one
// the valuation is zero and a PriceGap warning is emitted if units are held.
// Selling more than held floors the quantity at zero with an OverSell warning.
// Dividends never change the holding.
func TrackHolding(asset AssetInfo, book *Book) HoldingProjection {
	r := book.Range()
	zero := book.Settings().zero()
	h := HoldingProjection{
		Asset:  asset,
		Series: make([]HoldingPoint, 0, r.Len()),
	}
	view := AssetView(asset.ID)
	state := HoldingState{Purchased: zero, Sold: zero}
	for year := range r.Years() {
		for _, tx := range book.Year(year) {
			kind := tx.What()
			if kind != KindBuy && kind != KindSell {
				continue
			}
			e := Classify(tx, view)
			if !e.Applies {
				continue
			}
			next, oversold := state.apply(kind, e)
			if oversold {
				h.Warnings = append(h.Warnings, Diagnostic{
					Kind:          OverSell,
					Year:          year,
					TransactionID: tx.Header().ID,
					AssetID:       asset.ID,
					Message:       fmt.Sprintf("sold %s units while holding %s", e.Quantity.Neg(), state.Quantity),
				})
			}
			state = next
			h.Steps = append(h.Steps, HoldingStep{Transaction: tx, State: state})
		}

		pt := HoldingPoint{Year: year, Quantity: state.Quantity, Price: zero, Valuation: zero}
		if price, ok := asset.Price(year); ok {
			pt.Price, pt.Priced = price, true
			pt.Valuation = price.Mul(state.Quantity)
		} else if !state.Quantity.IsZero() {
			h.Warnings = append(h.Warnings, Diagnostic{
				Kind:    PriceGap,
				Year:    year,
				AssetID: asset.ID,
				Message: fmt.Sprintf("no price for %s, %s units valued at zero", asset.Symbol, state.Quantity),
			})
		}
		h.Series = append(h.Series, pt)
	}

	h.TotalPurchaseAmount = state.Purchased
	h.TotalSellAmount = state.Sold
	h.SoldQuantity = state.SoldQuantity
	h.RealizedGain = state.RealizedGain()
	h.RealizedGainRate = h.RealizedGain.Ratio(h.TotalPurchaseAmount)
	return h
}

// TrackHoldings tracks every asset, in the given order.
func TrackHoldings(assets []AssetInfo, book *Book) []HoldingProjection {
	res := make([]HoldingProjection, 0, len(assets))
	for _, a := range assets {
		res = append(res, TrackHolding(a, book))
	}
	return res
}

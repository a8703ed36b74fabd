package lifeplan

import (
	"fmt"
)

// Plan is the full snapshot of a life plan, everything but the transactions.
type Plan struct {
	Settings   PlanSettings `json:"settings"`
	Accounts   []Account    `json:"accounts"`
	Assets     []AssetInfo  `json:"assets"`
	Categories []Category   `json:"categories"`
	Events     []Event      `json:"events"`
	Members    []Member     `json:"members"`
}

// Account returns the account with this id.
func (p *Plan) Account(id string) (Account, bool) {
	for _, a := range p.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Asset returns the asset with this id or symbol.
func (p *Plan) Asset(idOrSymbol string) (AssetInfo, bool) {
	for _, a := range p.Assets {
		if a.ID == idOrSymbol || (a.Symbol != "" && a.Symbol == idOrSymbol) {
			return a, true
		}
	}
	return AssetInfo{}, false
}

// Member returns the member with this id or name.
func (p *Plan) Member(idOrName string) (*Member, bool) {
	for i := range p.Members {
		if m := &p.Members[i]; m.ID == idOrName || m.Name == idOrName {
			c := *m
			return &c, true
		}
	}
	return nil, false
}

// SetCurrency sets the plan currency and stamps it on every amount of the plan.
func (p *Plan) SetCurrency(cur string) {
	p.Settings.Currency = cur
	p.Settings.FireTarget = p.Settings.FireTarget.WithCurrency(cur)
	for i := range p.Accounts {
		p.Accounts[i].InitialBalance = p.Accounts[i].InitialBalance.WithCurrency(cur)
	}
	for i := range p.Assets {
		a := &p.Assets[i]
		for j := range a.PriceHistory {
			a.PriceHistory[j].Price = a.PriceHistory[j].Price.WithCurrency(cur)
		}
		for j := range a.DividendHistory {
			a.DividendHistory[j].Amount = a.DividendHistory[j].Amount.WithCurrency(cur)
		}
	}
}

// DividendSeries is the dividend income of one account.
type DividendSeries struct {
	Account Account
	Series  []DividendPoint
	Total   Money
}

// Projection gathers every series computed for a plan in a single run.
type Projection struct {
	Settings    PlanSettings
	Book        *Book
	Accounts    []AccountProjection
	Holdings    []HoldingProjection
	Dividends   []DividendSeries
	NetWorth    []NetWorthPoint
	Goal        *GoalResult // nil when the FIRE goal is disabled.
	Diagnostics Diagnostics
}

// Project runs every projector over the plan.
//
// Settings are validated first; after that nothing fails, the conditions met
// on the way are collected in Diagnostics.
func Project(plan *Plan, feed TransactionFeed, ages AgeModel) (*Projection, error) {
	book, err := NewBook(plan.Settings, feed)
	if err != nil {
		return nil, fmt.Errorf("cannot project plan: %w", err)
	}

	p := &Projection{
		Settings: plan.Settings,
		Book:     book,
		Accounts: ProjectAccounts(plan.Accounts, book),
		Holdings: TrackHoldings(plan.Assets, book),
	}
	for _, acc := range plan.Accounts {
		series := AccumulateDividends(AccountView(acc.ID), book)
		p.Dividends = append(p.Dividends, DividendSeries{Account: acc, Series: series, Total: TotalDividends(series)})
	}
	p.NetWorth = NetWorth(book.Range(), p.Accounts, p.Holdings, ages)
	if plan.Settings.FireEnabled {
		g := DetectGoal(p.NetWorth, plan.Settings.FireTarget)
		p.Goal = &g
	}

	diags := book.Diagnostics()
	for _, h := range p.Holdings {
		diags = append(diags, h.Warnings...)
	}
	p.Diagnostics = diags.sorted()
	return p, nil
}

// Holding returns the projection of the asset with this id.
func (p *Projection) Holding(assetID string) (HoldingProjection, bool) {
	for _, h := range p.Holdings {
		if h.Asset.ID == assetID {
			return h, true
		}
	}
	return HoldingProjection{}, false
}

// Account returns the projection of the account with this id.
func (p *Projection) Account(id string) (AccountProjection, bool) {
	for _, a := range p.Accounts {
		if a.Account.ID == id {
			return a, true
		}
	}
	return AccountProjection{}, false
}

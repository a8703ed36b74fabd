package lifeplan

// BalancePoint is the balance of an account at the end of a plan year.
type BalancePoint struct {
	Year    int
	Balance Money
}

// AccountProjection is the year by year balance of one account.
type AccountProjection struct {
	Account Account
	Series  []BalancePoint // one entry per plan year, chronological.
	Final   Money          // balance at the end of the plan.
	Flows   Money          // sum of all classified amounts over the plan.
}

// At returns the balance at the end of year, or false if year is outside the plan.
func (p AccountProjection) At(year int) (Money, bool) {
	for _, pt := range p.Series {
		if pt.Year == year {
			return pt.Balance, true
		}
	}
	return Money{}, false
}

// ProjectAccount computes the running balance of acc over the plan years.
//
// The balance of a year includes every transaction of that year and of all
// the previous ones.
func ProjectAccount(acc Account, book *Book) AccountProjection {
	r := book.Range()
	zero := book.Settings().zero()
	p := AccountProjection{
		Account: acc,
		Series:  make([]BalancePoint, 0, r.Len()),
		Flows:   zero,
	}
	running := zero.Add(acc.InitialBalance)
	view := AccountView(acc.ID)
	for year := range r.Years() {
		delta := zero
		for _, tx := range book.Year(year) {
			if e := Classify(tx, view); e.Applies {
				delta = delta.Add(e.Amount)
			}
		}
		running = running.Add(delta)
		p.Flows = p.Flows.Add(delta)
		p.Series = append(p.Series, BalancePoint{Year: year, Balance: running})
	}
	p.Final = running
	return p
}

// ProjectAccounts projects every account, in the given order.
func ProjectAccounts(accounts []Account, book *Book) []AccountProjection {
	res := make([]AccountProjection, 0, len(accounts))
	for _, acc := range accounts {
		res = append(res, ProjectAccount(acc, book))
	}
	return res
}

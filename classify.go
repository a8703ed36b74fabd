package lifeplan

// Perspective identifies the entity a transaction is classified against.
type Perspective struct {
	asset bool
	id    string
}

// AccountView returns the perspective of a cash account.
func AccountView(id string) Perspective { return Perspective{id: id} }

// AssetView returns the perspective of an asset holding.
func AssetView(id string) Perspective { return Perspective{asset: true, id: id} }

// ID returns the account or asset id.
func (p Perspective) ID() string { return p.id }

// IsAsset returns true for an asset perspective.
func (p Perspective) IsAsset() bool { return p.asset }

// Effect is the signed yearly effect of a transaction on one account or asset.
type Effect struct {
	Applies  bool
	Amount   Money    // signed cash movement over the year.
	Quantity Quantity // signed change of units, asset perspective only.
}

// Classify returns the effect of tx on the entity seen from p.
//
// From an account, cash leaves through Expense, Transfer.From and Buy, and
// enters through Income, Transfer.To, Sell and Dividend. From an asset, Buy
// adds units and Sell removes them, the amount being the cash invested (negative)
// or returned (positive). A Dividend applies to its asset without changing the
// quantity.
func Classify(tx Transaction, p Perspective) Effect {
	yearly := tx.YearlyAmount()
	in := Effect{Applies: true, Amount: yearly}
	out := Effect{Applies: true, Amount: yearly.Neg()}

	if p.asset {
		switch v := tx.(type) {
		case Buy:
			if v.Asset == p.id {
				out.Quantity = v.Quantity
				return out
			}
		case Sell:
			if v.Asset == p.id {
				in.Quantity = v.Quantity.Neg()
				return in
			}
		case Dividend:
			if v.Asset != "" && v.Asset == p.id {
				return in
			}
		}
		return Effect{}
	}

	switch v := tx.(type) {
	case Expense:
		if v.Account == p.id {
			return out
		}
	case Income:
		if v.Account == p.id {
			return in
		}
	case Transfer:
		switch {
		case v.From == p.id && v.To == p.id:
			return Effect{Applies: true, Amount: yearly.Sub(yearly)}
		case v.From == p.id:
			return out
		case v.To == p.id:
			return in
		}
	case Buy:
		if v.Account == p.id {
			return out
		}
	case Sell:
		if v.Account == p.id {
			return in
		}
	case Dividend:
		if v.Account == p.id {
			return in
		}
	}
	return Effect{}
}

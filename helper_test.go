package lifeplan

import "github.com/shopspring/decimal"

// JPY is a helper for test to create yen money from const
func JPY(v float64) Money { return M(v, "JPY") }

// settings returns valid plan settings in JPY.
func settings(from, to int) PlanSettings {
	return PlanSettings{StartYear: from, EndYear: to, Currency: "JPY"}
}

func expense(id string, year, month int, amount float64, freq int, account string) Record {
	return Record{ID: id, Type: TypeExpense, Amount: decimal.NewFromFloat(amount), Frequency: freq, Year: year, Month: month, ToAccountID: account}
}

func income(id string, year, month int, amount float64, freq int, account string) Record {
	return Record{ID: id, Type: TypeIncome, Amount: decimal.NewFromFloat(amount), Frequency: freq, Year: year, Month: month, ToAccountID: account}
}

func transfer(id string, year, month int, amount float64, freq int, from, to string) Record {
	return Record{ID: id, Type: TypeTransfer, Amount: decimal.NewFromFloat(amount), Frequency: freq, Year: year, Month: month, FromAccountID: from, ToAccountID: to}
}

func buy(id string, year, month int, amount float64, quantity float64, account, asset string) Record {
	return Record{ID: id, Type: TypeInvestment, Subtype: SubtypeBuy, Amount: decimal.NewFromFloat(amount), Frequency: 1, Year: year, Month: month, FromAccountID: account, HoldingAssetID: asset, Quantity: decimal.NewFromFloat(quantity)}
}

func sell(id string, year, month int, amount float64, quantity float64, account, asset string) Record {
	return Record{ID: id, Type: TypeInvestment, Subtype: SubtypeSell, Amount: decimal.NewFromFloat(amount), Frequency: 1, Year: year, Month: month, ToAccountID: account, HoldingAssetID: asset, Quantity: decimal.NewFromFloat(quantity)}
}

func dividend(id string, year, month int, amount float64, account, asset string) Record {
	return Record{ID: id, Type: TypeInvestment, Subtype: SubtypeDividend, Amount: decimal.NewFromFloat(amount), Frequency: 1, Year: year, Month: month, ToAccountID: account, HoldingAssetID: asset}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// decode is a test helper to decode a valid record.
func decode(r Record) Transaction { return must(r.Decode("JPY")) }

package lifeplan

import (
	"errors"
	"fmt"
)

// ErrInvalidPlanRange is returned when the plan start year is not strictly before the end year.
var ErrInvalidPlanRange = errors.New("invalid plan range")

// PlanSettings are the life-plan level parameters of a projection.
//
// They are immutable during a projection and passed explicitly to every
// function that needs them.
type PlanSettings struct {
	StartYear     int     `json:"planStartYear"`
	EndYear       int     `json:"planEndYear"`
	FireTarget    Money   `json:"fireTargetAmount"`
	FireEnabled   bool    `json:"fireEnabled"`
	InflationRate Percent `json:"inflationRate,omitempty"` // stored only, never applied.
	Currency      string  `json:"currency,omitempty"`
}

// Validate rejects settings that cannot be projected.
func (s PlanSettings) Validate() error {
	if s.StartYear >= s.EndYear {
		return fmt.Errorf("%w: start year %d must be before end year %d", ErrInvalidPlanRange, s.StartYear, s.EndYear)
	}
	if s.FireTarget.IsNegative() {
		return fmt.Errorf("fire target must not be negative, got %s", s.FireTarget)
	}
	return nil
}

// Range returns the inclusive range of plan years.
func (s PlanSettings) Range() Range { return Range{From: s.StartYear, To: s.EndYear} }

// zero returns a zero amount in the plan currency.
func (s PlanSettings) zero() Money { return M(0, s.Currency) }

// Account is a cash account of the household.
type Account struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	InitialBalance Money  `json:"initialBalance"`
}

// PricePoint is the known price of one unit of an asset in a given year.
type PricePoint struct {
	Year  int   `json:"year"`
	Price Money `json:"price"`
}

// DividendPerShare is the dividend paid per unit of an asset in a given year.
type DividendPerShare struct {
	Year   int   `json:"year"`
	Amount Money `json:"dividendPerShare"`
}

// AssetInfo describes an investable asset and its sparse market history.
type AssetInfo struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Symbol          string             `json:"symbol"`
	PriceHistory    []PricePoint       `json:"priceHistory"`
	DividendHistory []DividendPerShare `json:"dividendHistory"`
}

// Price returns the price recorded for exactly that year.
//
// There is no carry forward: a year without an entry has no price.
func (a AssetInfo) Price(year int) (Money, bool) {
	for _, p := range a.PriceHistory {
		if p.Year == year {
			return p.Price, true
		}
	}
	return Money{}, false
}

// DividendPerShare returns the per-unit dividend recorded for exactly that year.
func (a AssetInfo) DividendPerShare(year int) (Money, bool) {
	for _, d := range a.DividendHistory {
		if d.Year == year {
			return d.Amount, true
		}
	}
	return Money{}, false
}

// Category labels expense and income transactions.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Event is a life event grouping a set of transactions.
type Event struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Color          string   `json:"color"`
	TransactionIDs []string `json:"transactionIds"`
}

// Member is a household member whose age anchors the plan timeline.
type Member struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CurrentAge int    `json:"currentAge"`
}

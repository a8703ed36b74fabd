package lifeplan

// DefaultAge is the age used for the plan timeline when no household member
// is selected. It is the default of the `default_age` configuration key.
const DefaultAge = 30

// AgeModel maps plan years to the age of the selected household member.
type AgeModel struct {
	Member      *Member // nil when no member is selected.
	CurrentYear int     // calendar year in which Member.CurrentAge holds.
	DefaultAge  int     // base age used when Member is nil.
}

// Age returns the age at the given plan year.
func (m AgeModel) Age(year int) int {
	base := m.DefaultAge
	if m.Member != nil {
		base = m.Member.CurrentAge
	}
	return base + (year - m.CurrentYear)
}

// NetWorthPoint is the total value of the household at the end of a plan year.
type NetWorthPoint struct {
	Year  int
	Age   int
	Cash  Money // sum of account balances.
	Asset Money // sum of holding valuations.
	Total Money
}

// NetWorth combines account balances and holding valuations per plan year.
// All projections must come from the same Book.
func NetWorth(r Range, accounts []AccountProjection, holdings []HoldingProjection, ages AgeModel) []NetWorthPoint {
	res := make([]NetWorthPoint, 0, r.Len())
	for year := range r.Years() {
		i := r.Index(year)
		var pt NetWorthPoint
		pt.Year, pt.Age = year, ages.Age(year)
		for _, a := range accounts {
			if i < len(a.Series) {
				pt.Cash = pt.Cash.Add(a.Series[i].Balance)
			}
		}
		for _, h := range holdings {
			if i < len(h.Series) {
				pt.Asset = pt.Asset.Add(h.Series[i].Valuation)
			}
		}
		pt.Total = pt.Cash.Add(pt.Asset)
		res = append(res, pt)
	}
	return res
}

// GoalResult is the outcome of a FIRE goal detection.
type GoalResult struct {
	Achieved bool
	Year     int // first year with a net worth at or above target.
	Age      int
	Target   Money
	Progress Percent // last net worth over target.
}

// YearsFrom returns the number of years between start and the achievement year.
func (g GoalResult) YearsFrom(start int) (int, bool) {
	if !g.Achieved {
		return 0, false
	}
	return g.Year - start, true
}

// DetectGoal returns the first point of series whose total reaches target.
//
// A later dip below target does not cancel the achievement.
func DetectGoal(series []NetWorthPoint, target Money) GoalResult {
	res := GoalResult{Target: target}
	if len(series) > 0 {
		res.Progress = series[len(series)-1].Total.Ratio(target)
	}
	for _, pt := range series {
		if pt.Total.GreaterThanOrEqual(target) {
			res.Achieved, res.Year, res.Age = true, pt.Year, pt.Age
			return res
		}
	}
	return res
}

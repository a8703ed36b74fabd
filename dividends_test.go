package lifeplan

import "testing"

func TestAccumulateDividends(t *testing.T) {
	book := must(NewBookFromRecords(settings(2025, 2027),
		dividend("d1", 2025, 6, 60, "acc", ""),
		dividend("d2", 2027, 6, 40, "acc", "fund"),
		dividend("d3", 2027, 12, 10, "other", "fund"),
		income("salary", 2025, 1, 1000, 1, "acc"),
	))

	tests := []struct {
		name string
		view Perspective
		want []Money
	}{
		{"account", AccountView("acc"), []Money{JPY(60), JPY(0), JPY(40)}},
		{"asset", AssetView("fund"), []Money{JPY(0), JPY(0), JPY(50)}},
		{"unknown account", AccountView("nope"), []Money{JPY(0), JPY(0), JPY(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccumulateDividends(tt.view, book)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].Year != 2025+i || !got[i].Amount.Equal(w) {
					t.Errorf("[%d] = {%d %s}, want {%d %s}", i, got[i].Year, got[i].Amount, 2025+i, w)
				}
			}
		})
	}
}

func TestDividend_AccountAndHolding(t *testing.T) {
	book := must(NewBookFromRecords(settings(2025, 2026),
		buy("b1", 2025, 1, 1000, 10, "acc", "fund"),
		dividend("d1", 2025, 6, 60, "acc", "fund"),
	))

	series := AccumulateDividends(AccountView("acc"), book)
	if !series[0].Amount.Equal(JPY(60)) {
		t.Errorf("dividends in 2025 = %s, want %s", series[0].Amount, JPY(60))
	}
	if total := TotalDividends(series); !total.Equal(JPY(60)) {
		t.Errorf("TotalDividends = %s, want %s", total, JPY(60))
	}

	acc := ProjectAccount(Account{ID: "acc", InitialBalance: JPY(2000)}, book)
	if b, _ := acc.At(2025); !b.Equal(JPY(1060)) {
		t.Errorf("balance in 2025 = %s, want %s", b, JPY(1060))
	}

	h := TrackHolding(AssetInfo{ID: "fund"}, book)
	if q := h.Final().Quantity; !q.Equal(Q(10)) {
		t.Errorf("quantity = %s, want 10", q)
	}
}

func TestExpectedDividends(t *testing.T) {
	book := must(NewBookFromRecords(settings(2025, 2027),
		buy("b1", 2025, 1, 1000, 10, "acc", "fund"),
		buy("b2", 2026, 1, 1000, 10, "acc", "fund"),
	))
	asset := AssetInfo{
		ID: "fund",
		PriceHistory: []PricePoint{
			{Year: 2025, Price: JPY(100)},
			{Year: 2026, Price: JPY(100)},
			{Year: 2027, Price: JPY(100)},
		},
		DividendHistory: []DividendPerShare{
			{Year: 2025, Amount: JPY(2)},
			{Year: 2027, Amount: JPY(3)},
		},
	}

	got := ExpectedDividends(TrackHolding(asset, book))

	want := []Money{JPY(20), JPY(0), JPY(60)}
	for i, w := range want {
		if !got[i].Amount.Equal(w) {
			t.Errorf("expected dividends in %d = %s, want %s", got[i].Year, got[i].Amount, w)
		}
	}
}

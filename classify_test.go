package lifeplan

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		view     Perspective
		applies  bool
		amount   Money
		quantity Quantity
	}{
		{"expense on account", expense("e", 2025, 1, 5000, 12, "acc"), AccountView("acc"), true, JPY(-60000), Q(0)},
		{"expense on other account", expense("e", 2025, 1, 5000, 12, "acc"), AccountView("other"), false, Money{}, Q(0)},
		{"negative expense amount is a magnitude", expense("e", 2025, 1, -5000, 1, "acc"), AccountView("acc"), true, JPY(-5000), Q(0)},
		{"income on account", income("i", 2025, 1, 300000, 12, "acc"), AccountView("acc"), true, JPY(3600000), Q(0)},
		{"transfer from", transfer("t", 2025, 1, 100, 2, "a", "b"), AccountView("a"), true, JPY(-200), Q(0)},
		{"transfer to", transfer("t", 2025, 1, 100, 2, "a", "b"), AccountView("b"), true, JPY(200), Q(0)},
		{"transfer to itself", transfer("t", 2025, 1, 100, 2, "a", "a"), AccountView("a"), true, JPY(0), Q(0)},
		{"buy cash leg", buy("b", 2025, 1, 1000, 10, "acc", "ast"), AccountView("acc"), true, JPY(-1000), Q(0)},
		{"buy holding leg", buy("b", 2025, 1, 1000, 10, "acc", "ast"), AssetView("ast"), true, JPY(-1000), Q(10)},
		{"sell cash leg", sell("s", 2025, 1, 1500, 10, "acc", "ast"), AccountView("acc"), true, JPY(1500), Q(0)},
		{"sell holding leg", sell("s", 2025, 1, 1500, 10, "acc", "ast"), AssetView("ast"), true, JPY(1500), Q(-10)},
		{"dividend cash", dividend("d", 2025, 1, 60, "acc", "ast"), AccountView("acc"), true, JPY(60), Q(0)},
		{"dividend on asset", dividend("d", 2025, 1, 60, "acc", "ast"), AssetView("ast"), true, JPY(60), Q(0)},
		{"dividend without asset", dividend("d", 2025, 1, 60, "acc", ""), AssetView(""), false, Money{}, Q(0)},
		{"expense never applies to an asset", expense("e", 2025, 1, 10, 1, "x"), AssetView("x"), false, Money{}, Q(0)},
		{"asset id is not an account id", buy("b", 2025, 1, 1000, 10, "acc", "ast"), AccountView("ast"), false, Money{}, Q(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(decode(tt.record), tt.view)
			if got.Applies != tt.applies {
				t.Fatalf("Applies = %v, want %v", got.Applies, tt.applies)
			}
			if !got.Amount.Equal(tt.amount) {
				t.Errorf("Amount = %s, want %s", got.Amount, tt.amount)
			}
			if !got.Quantity.Equal(tt.quantity) {
				t.Errorf("Quantity = %s, want %s", got.Quantity, tt.quantity)
			}
		})
	}
}

func TestRecord_Decode(t *testing.T) {
	valid := []struct {
		name   string
		record Record
		want   Kind
	}{
		{"expense", expense("e", 2025, 1, 1, 1, "a"), KindExpense},
		{"income", income("i", 2025, 1, 1, 1, "a"), KindIncome},
		{"transfer", transfer("t", 2025, 1, 1, 1, "a", "b"), KindTransfer},
		{"buy", buy("b", 2025, 1, 1, 1, "a", "x"), KindBuy},
		{"sell", sell("s", 2025, 1, 1, 1, "a", "x"), KindSell},
		{"dividend", dividend("d", 2025, 1, 1, "a", ""), KindDividend},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := tt.record.Decode("JPY")
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if tx.What() != tt.want {
				t.Errorf("What() = %v, want %v", tx.What(), tt.want)
			}
		})
	}

	malformed := []struct {
		name   string
		record Record
	}{
		{"expense without account", expense("e", 2025, 1, 1, 1, "")},
		{"income without account", income("i", 2025, 1, 1, 1, "")},
		{"transfer without from", transfer("t", 2025, 1, 1, 1, "", "b")},
		{"transfer without to", transfer("t", 2025, 1, 1, 1, "a", "")},
		{"buy without asset", buy("b", 2025, 1, 1, 1, "a", "")},
		{"buy without account", buy("b", 2025, 1, 1, 1, "", "x")},
		{"sell without asset", sell("s", 2025, 1, 1, 1, "a", "")},
		{"dividend without account", dividend("d", 2025, 1, 1, "", "x")},
		{"investment without subtype", Record{ID: "x", Type: TypeInvestment, ToAccountID: "a"}},
		{"expense with subtype", Record{ID: "x", Type: TypeExpense, Subtype: SubtypeBuy, ToAccountID: "a"}},
		{"unknown type", Record{ID: "x", Type: "gift", ToAccountID: "a"}},
		{"negative frequency", expense("e", 2025, 1, 1, -1, "a")},
		{"invalid month", expense("e", 2025, 13, 1, 1, "a")},
		{"negative quantity", buy("b", 2025, 1, 1, -1, "a", "x")},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.record.Decode("JPY")
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("Decode() error = %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestRecord_DecodeDefaultsFrequency(t *testing.T) {
	tx := decode(expense("e", 2025, 1, 100, 0, "a"))
	if got := tx.Header().Frequency; got != 1 {
		t.Errorf("Frequency = %d, want 1", got)
	}
	if got := tx.YearlyAmount(); !got.Equal(JPY(100)) {
		t.Errorf("YearlyAmount() = %s, want %s", got, JPY(100))
	}
}

func TestTransaction_RecordRoundTrip(t *testing.T) {
	records := []Record{
		expense("e", 2025, 3, 1200, 12, "a"),
		transfer("t", 2026, 0, 50, 1, "a", "b"),
		buy("b", 2027, 6, 1000, 2.5, "a", "x"),
		sell("s", 2028, 7, 900, 1, "b", "x"),
		dividend("d", 2029, 12, 30, "a", "x"),
	}
	for _, r := range records {
		got := decode(r).Record()
		if got.ID != r.ID || got.Type != r.Type || got.Subtype != r.Subtype || !got.Amount.Equal(r.Amount) ||
			got.Year != r.Year || got.Month != r.Month || got.FromAccountID != r.FromAccountID ||
			got.ToAccountID != r.ToAccountID || got.HoldingAssetID != r.HoldingAssetID || !got.Quantity.Equal(r.Quantity) {
			t.Errorf("Record() = %+v, want %+v", got, r)
		}
	}
}

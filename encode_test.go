package lifeplan

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestEncodeRecord_FieldOrder(t *testing.T) {
	tests := []struct {
		rec  Record
		want string
	}{
		{
			expense("rent", 2025, 1, 5000, 12, "acc"),
			`{"id":"rent","type":"expense","amount":5000,"frequency":12,"year":2025,"month":1,"toAccountId":"acc"}`,
		},
		{
			buy("b1", 2025, 3, 1000.5, 10, "acc", "fund"),
			`{"id":"b1","type":"investment","transactionSubtype":"buy","amount":1000.5,"frequency":1,"year":2025,"month":3,"fromAccountId":"acc","holdingAssetId":"fund","quantity":10}`,
		},
		{
			withEvent(transfer("t", 2026, 0, 1, 2, "a", "b"), "move"),
			`{"id":"t","type":"transfer","amount":1,"frequency":2,"year":2026,"month":0,"fromAccountId":"a","toAccountId":"b","eventId":"move"}`,
		},
	}
	for _, tt := range tests {
		var sb strings.Builder
		if err := EncodeRecord(&sb, tt.rec); err != nil {
			t.Fatalf("EncodeRecord(%q) error = %v", tt.rec.ID, err)
		}
		if got := sb.String(); got != tt.want+"\n" {
			t.Errorf("EncodeRecord(%q) =\n%s\nwant\n%s", tt.rec.ID, got, tt.want)
		}
	}
}

func TestDecodeRecords(t *testing.T) {
	records := []Record{
		categorized(expense("rent", 2025, 1, 5000, 12, "acc"), "home"),
		sell("s1", 2026, 6, 1500, 2.5, "acc", "fund"),
		dividend("d1", 2027, 6, 60, "acc", ""),
	}
	var sb strings.Builder
	if err := EncodeRecords(&sb, records); err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}

	got, err := DecodeRecords(strings.NewReader("\n" + sb.String() + "\n"))
	if err != nil {
		t.Fatalf("DecodeRecords() error = %v", err)
	}
	if diff := cmp.Diff(records, got, decimalCmp); diff != "" {
		t.Errorf("DecodeRecords() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRecords_InvalidLines(t *testing.T) {
	input := `{"id":"ok","type":"income","amount":1,"frequency":1,"year":2025,"month":1,"toAccountId":"a"}
not json
{"id":"also bad",
`
	_, err := DecodeRecords(strings.NewReader(input))
	if err == nil {
		t.Fatal("DecodeRecords() error = nil, want error")
	}
	for _, want := range []string{"line 2", "line 3"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("DecodeRecords() error %q does not mention %q", err, want)
		}
	}
}

func TestDecodePlan(t *testing.T) {
	input := `{
  "settings": {"planStartYear": 2025, "planEndYear": 2060, "fireTargetAmount": 50000000, "fireEnabled": true, "currency": "JPY"},
  "accounts": [{"id": "main", "name": "Main", "initialBalance": 1000000}],
  "assets": [{"id": "fund", "name": "World", "symbol": "WLD", "priceHistory": [{"year": 2025, "price": 12345.6}], "dividendHistory": [{"year": 2025, "dividendPerShare": 12}]}],
  "categories": [{"id": "food", "name": "Food", "color": "#ff0000"}],
  "events": [{"id": "wedding", "name": "Wedding", "color": "#fff", "transactionIds": ["t1"]}],
  "members": [{"id": "m1", "name": "Alex", "currentAge": 35}]
}`
	p, err := DecodePlan(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodePlan() error = %v", err)
	}

	if got := p.Settings.FireTarget; !got.Equal(JPY(50000000)) || got.Currency() != "JPY" {
		t.Errorf("FireTarget = %s (%q), want %s", got, got.Currency(), JPY(50000000))
	}
	if got := p.Accounts[0].InitialBalance.Currency(); got != "JPY" {
		t.Errorf("InitialBalance currency = %q, want JPY", got)
	}
	asset, ok := p.Asset("WLD")
	if !ok {
		t.Fatal("Asset(WLD) not found")
	}
	if price, ok := asset.Price(2025); !ok || !price.Equal(JPY(12345.6)) || price.Currency() != "JPY" {
		t.Errorf("Price(2025) = %s, %v", price, ok)
	}
	if m, ok := p.Member("m1"); !ok || m.CurrentAge != 35 {
		t.Errorf("Member(m1) = %v, %v", m, ok)
	}

	var sb strings.Builder
	if err := EncodePlan(&sb, p); err != nil {
		t.Fatalf("EncodePlan() error = %v", err)
	}
	again, err := DecodePlan(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("DecodePlan(EncodePlan()) error = %v", err)
	}
	if diff := cmp.Diff(p, again, projectionCmp...); diff != "" {
		t.Errorf("plan round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPlan(t *testing.T) {
	dir := t.TempDir()
	plan, _ := samplePlan()
	if err := SavePlan(dir, plan); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	// without transactions file.
	_, feed, err := LoadPlan(dir)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if n := len(feed.Records()); n != 0 {
		t.Errorf("LoadPlan() returned %d records, want 0", n)
	}

	for _, rec := range []Record{income("i", 2026, 1, 10, 1, "main"), expense("e", 2025, 1, 5, 1, "main")} {
		if err := AppendRecord(dir, rec); err != nil {
			t.Fatalf("AppendRecord() error = %v", err)
		}
	}
	got, feed, err := LoadPlan(dir)
	if err != nil {
		t.Fatalf("LoadPlan() error = %v", err)
	}
	if got.Settings.StartYear != 2025 || len(got.Accounts) != 2 {
		t.Errorf("LoadPlan() plan = %+v", got.Settings)
	}
	var ids []string
	for _, r := range feed.Records() {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]string{"e", "i"}, ids); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPlan_Missing(t *testing.T) {
	if _, _, err := LoadPlan(t.TempDir()); err == nil {
		t.Error("LoadPlan() of an empty folder error = nil, want error")
	}
}

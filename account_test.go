package lifeplan

import (
	"errors"
	"strconv"
	"testing"
)

func TestProjectAccount_MonthlyExpense(t *testing.T) {
	book := must(NewBookFromRecords(settings(2025, 2027),
		expense("rent", 2025, 1, 5000, 12, "acc"),
	))
	acc := Account{ID: "acc", Name: "Main", InitialBalance: JPY(100000)}

	got := ProjectAccount(acc, book)

	want := []BalancePoint{
		{Year: 2025, Balance: JPY(40000)},
		{Year: 2026, Balance: JPY(40000)},
		{Year: 2027, Balance: JPY(40000)},
	}
	if len(got.Series) != len(want) {
		t.Fatalf("len(Series) = %d, want %d", len(got.Series), len(want))
	}
	for i := range want {
		if got.Series[i].Year != want[i].Year || !got.Series[i].Balance.Equal(want[i].Balance) {
			t.Errorf("Series[%d] = {%d %s}, want {%d %s}", i, got.Series[i].Year, got.Series[i].Balance, want[i].Year, want[i].Balance)
		}
	}
	if !got.Final.Equal(JPY(40000)) {
		t.Errorf("Final = %s, want %s", got.Final, JPY(40000))
	}
}

func TestProjectAccount_Cumulative(t *testing.T) {
	book := must(NewBookFromRecords(settings(2025, 2028),
		income("salary", 2025, 1, 1000, 12, "acc"),
		income("salary", 2026, 1, 1000, 12, "acc"),
		expense("car", 2027, 4, 30000, 1, "acc"),
		transfer("save", 2028, 1, 500, 12, "acc", "savings"),
	))

	got := ProjectAccount(Account{ID: "acc"}, book)

	want := []Money{JPY(12000), JPY(24000), JPY(-6000), JPY(-12000)}
	for i, w := range want {
		if !got.Series[i].Balance.Equal(w) {
			t.Errorf("balance in %d = %s, want %s", got.Series[i].Year, got.Series[i].Balance, w)
		}
	}

	savings := ProjectAccount(Account{ID: "savings", InitialBalance: JPY(10)}, book)
	if !savings.Final.Equal(JPY(6010)) {
		t.Errorf("savings Final = %s, want %s", savings.Final, JPY(6010))
	}
}

func TestProjectAccount_Conservation(t *testing.T) {
	book := must(NewBookFromRecords(settings(2025, 2030),
		income("i1", 2025, 1, 250000, 12, "acc"),
		expense("e1", 2026, 2, 90000, 12, "acc"),
		transfer("t1", 2027, 3, 10000, 6, "acc", "sav"),
		transfer("t2", 2028, 3, 2000, 1, "sav", "acc"),
		buy("b1", 2029, 1, 500000, 10, "acc", "fund"),
		sell("s1", 2030, 1, 300000, 5, "acc", "fund"),
		dividend("d1", 2030, 6, 1200, "acc", "fund"),
		expense("other", 2030, 1, 999, 1, "someone-else"),
	))
	acc := Account{ID: "acc", InitialBalance: JPY(1234567)}

	got := ProjectAccount(acc, book)

	sum := JPY(0)
	for tx := range book.All() {
		if e := Classify(tx, AccountView(acc.ID)); e.Applies {
			sum = sum.Add(e.Amount)
		}
	}
	if diff := got.Final.Sub(acc.InitialBalance); !diff.Equal(sum) {
		t.Errorf("Final - Initial = %s, want sum of effects %s", diff, sum)
	}
	if !got.Flows.Equal(sum) {
		t.Errorf("Flows = %s, want %s", got.Flows, sum)
	}
}

func TestProjectAccount_OutOfRangeIgnored(t *testing.T) {
	book := must(NewBookFromRecords(settings(2025, 2026),
		expense("before", 2024, 1, 100, 1, "acc"),
		expense("after", 2027, 1, 100, 1, "acc"),
		expense("in", 2026, 1, 100, 1, "acc"),
	))

	got := ProjectAccount(Account{ID: "acc", InitialBalance: JPY(1000)}, book)

	if !got.Final.Equal(JPY(900)) {
		t.Errorf("Final = %s, want %s", got.Final, JPY(900))
	}
	if n := len(book.Diagnostics()); n != 0 {
		t.Errorf("out of range records produced %d diagnostics, want none", n)
	}
}

func TestProjectAccount_UnavailableYear(t *testing.T) {
	feed := FeedFunc(func(year int) ([]Record, error) {
		if year == 2026 {
			return nil, errors.New("storage offline")
		}
		return []Record{income("i"+strconv.Itoa(year), year, 1, 100, 1, "acc")}, nil
	})
	book := must(NewBook(settings(2025, 2027), feed))

	got := ProjectAccount(Account{ID: "acc"}, book)

	if len(got.Series) != 3 {
		t.Fatalf("len(Series) = %d, want 3", len(got.Series))
	}
	want := []Money{JPY(100), JPY(100), JPY(200)}
	for i, w := range want {
		if !got.Series[i].Balance.Equal(w) {
			t.Errorf("balance in %d = %s, want %s", got.Series[i].Year, got.Series[i].Balance, w)
		}
	}
	if n := book.Diagnostics().Count(FeedUnavailable); n != 1 {
		t.Errorf("FeedUnavailable count = %d, want 1", n)
	}
}

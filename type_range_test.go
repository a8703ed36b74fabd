package lifeplan

import (
	"slices"
	"testing"
)

func TestRange(t *testing.T) {
	r := NewRange(2030, 2025)
	if r.From != 2025 || r.To != 2030 {
		t.Fatalf("NewRange(2030, 2025) = %v, want 2025-2030", r)
	}
	if r.Len() != 6 {
		t.Errorf("Len() = %d, want 6", r.Len())
	}
	if got := slices.Collect(r.Years()); len(got) != 6 || got[0] != 2025 || got[5] != 2030 {
		t.Errorf("Years() = %v", got)
	}
	if r.Index(2027) != 2 || r.Index(2031) != -1 {
		t.Errorf("Index() = %d, %d, want 2, -1", r.Index(2027), r.Index(2031))
	}
	if r.String() != "2025-2030" || NewRange(2025, 2025).String() != "2025" {
		t.Errorf("String() = %q", r.String())
	}
}

func TestRange_Intersect(t *testing.T) {
	tests := []struct {
		a, b Range
		want Range
		ok   bool
	}{
		{NewRange(2025, 2030), NewRange(2028, 2040), NewRange(2028, 2030), true},
		{NewRange(2025, 2030), NewRange(2026, 2027), NewRange(2026, 2027), true},
		{NewRange(2025, 2030), NewRange(2031, 2040), Range{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.a.Intersect(tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.Intersect(%v) = %v, %v, want %v, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

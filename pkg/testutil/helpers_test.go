package testutil

import (
	"testing"

	"github.com/iwvelando/fincalc/internal/engine"
)

func TestFindResult(t *testing.T) {
	results := []engine.Result{
		{Name: "Home Loan", Summary: []engine.Metric{{Key: "monthlyPayment", Value: 8678.23}}},
		{Name: "Retirement SIP", Summary: []engine.Metric{{Key: "totalValue", Value: 824863.67}}},
		{Name: "Retirement SIP Extended", Summary: []engine.Metric{{Key: "totalValue", Value: 9222370.30}}},
	}

	tests := []struct {
		name        string
		searchName  string
		expectFound bool
		key         string
		expected    float64
	}{
		{"Find first result", "Home Loan", true, "monthlyPayment", 8678.23},
		{"Find exact name among prefixes", "Retirement SIP", true, "totalValue", 824863.67},
		{"Find longer name", "Retirement SIP Extended", true, "totalValue", 9222370.30},
		{"Missing result", "Car Loan", false, "", 0},
		{"Empty name", "", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindResult(results, tt.searchName)
			if !tt.expectFound {
				if result != nil {
					t.Errorf("expected nil for %q, got %+v", tt.searchName, result)
				}
				return
			}
			if result == nil {
				t.Fatalf("expected to find %q", tt.searchName)
			}
			if got := result.Value(tt.key); got != tt.expected {
				t.Errorf("%s = %v, expected %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestFindResultReturnsPointerIntoSlice(t *testing.T) {
	results := []engine.Result{{Name: "A"}}
	FindResult(results, "A").Words = "Zero"
	if results[0].Words != "Zero" {
		t.Error("expected FindResult to return a pointer into the slice")
	}
}

func TestFindResultNilSlice(t *testing.T) {
	if FindResult(nil, "A") != nil {
		t.Error("expected nil for a nil slice")
	}
}

func TestAlmostEqual(t *testing.T) {
	if !AlmostEqual(8678.23, 8678.2301, 0.01) {
		t.Error("expected values within tolerance to match")
	}
	if AlmostEqual(8678.23, 8679.23, 0.01) {
		t.Error("expected values outside tolerance to differ")
	}
}

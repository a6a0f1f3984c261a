package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/fincalc/pkg/constants"
)

func TestRangeContains(t *testing.T) {
	r := Range{Min: 7, Max: 8}
	tests := []struct {
		value    float64
		expected bool
	}{
		{7, true},
		{7.1, true},
		{8, true},
		{6.99, false},
		{8.01, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.value); got != tt.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}

func TestCheckRange(t *testing.T) {
	if got := CheckRange("PPF", "annualRate", 7.1, Range{7, 8}); got != "" {
		t.Errorf("expected no warning, got %q", got)
	}

	got := CheckRange("PPF", "annualContribution", 200000, Range{0, constants.MaxPPFContribution})
	if !strings.Contains(got, "'PPF'") || !strings.Contains(got, "2,00,000") || !strings.Contains(got, "1,50,000") {
		t.Errorf("unexpected warning text %q", got)
	}
}

func TestCheckLimits(t *testing.T) {
	tests := []struct {
		name     string
		calcType string
		values   map[string]float64
		expected int
	}{
		{
			name:     "EMI within bounds",
			calcType: constants.TypeEMI,
			values:   map[string]float64{"principal": 1000000, "annualRate": 8.5, "termMonths": 240},
			expected: 0,
		},
		{
			name:     "EMI principal above 100 crore",
			calcType: constants.TypeEMI,
			values:   map[string]float64{"principal": 2000000000, "annualRate": 8.5, "termMonths": 240},
			expected: 1,
		},
		{
			name:     "Step-up rates out of range",
			calcType: constants.TypeStepUpSIP,
			values:   map[string]float64{"monthlyAmount": 5000, "stepUpRate": 30, "annualRate": 20, "years": 20},
			expected: 2,
		},
		{
			name:     "Unlimited fields ignored",
			calcType: constants.TypeSIP,
			values:   map[string]float64{"monthlyAmount": 10000, "corpus": -5},
			expected: 0,
		},
		{
			name:     "Salary calculators have no limits",
			calcType: constants.TypeSalaryOld,
			values:   map[string]float64{"basic": -1},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := CheckLimits("calc", tt.calcType, tt.values)
			if len(warnings) != tt.expected {
				t.Errorf("CheckLimits() returned %d warnings, expected %d: %v", len(warnings), tt.expected, warnings)
			}
		})
	}
}

func TestCheckLimitsOrdered(t *testing.T) {
	warnings := CheckLimits("swp", constants.TypeSWP, map[string]float64{
		"years":          50,
		"annualRate":     20,
		"withdrawalRate": 30,
	})
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "annualRate") || !strings.Contains(warnings[2], "years") {
		t.Errorf("warnings not ordered by field: %v", warnings)
	}
}

func TestEveryGrowthCalculatorHasLimits(t *testing.T) {
	for _, calcType := range constants.CalculatorTypes {
		if strings.HasPrefix(calcType, "salary") {
			continue
		}
		if _, ok := CalculatorLimits[calcType]; !ok {
			t.Errorf("no limits defined for %s", calcType)
		}
	}
}

package tax

import (
	"math"
	"testing"
)

func defaultSalary() SalaryComponents {
	return SalaryComponents{
		Basic:             400000,
		HRA:               200000,
		SpecialAllowance:  200000,
		OtherAllowances:   200000,
		StandardDeduction: 50000,
		Section80C:        150000,
		Section80D:        25000,
		Section80TTA:      10000,
		RentPaid:          120000,
		MetroCity:         true,
		CTC:               1200000,
	}
}

func TestHRAExemption(t *testing.T) {
	tests := []struct {
		name     string
		hra      float64
		rent     float64
		basic    float64
		metro    bool
		expected float64
	}{
		{"Rent above floor limits exemption", 200000, 120000, 400000, true, 80000},
		{"Actual HRA is the least", 50000, 300000, 400000, true, 50000},
		{"Metro cap", 500000, 600000, 400000, true, 200000},
		{"Non-metro cap", 500000, 600000, 400000, false, 160000},
		{"No rent paid goes negative", 200000, 0, 400000, true, -40000},
		{"Rent below floor goes negative", 200000, 30000, 400000, false, -10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HRAExemption(tt.hra, tt.rent, tt.basic, tt.metro)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("HRAExemption() = %.2f, expected %.2f", got, tt.expected)
			}
		})
	}
}

func TestOldRegimeInHand(t *testing.T) {
	result := OldRegimeInHand(defaultSalary())

	if result.Gross != 1000000 {
		t.Errorf("Gross = %.2f, expected 1000000", result.Gross)
	}
	if math.Abs(result.HRAExemption-80000) > 1e-6 {
		t.Errorf("HRAExemption = %.2f, expected 80000", result.HRAExemption)
	}
	if math.Abs(result.Deductions-315000) > 1e-6 {
		t.Errorf("Deductions = %.2f, expected 315000", result.Deductions)
	}
	if math.Abs(result.TaxableIncome-685000) > 1e-6 {
		t.Errorf("TaxableIncome = %.2f, expected 685000", result.TaxableIncome)
	}
	if result.Tax.Total != 51480 {
		t.Errorf("Tax = %d, expected 51480", result.Tax.Total)
	}
	if result.InHandYearly != 948520 {
		t.Errorf("InHandYearly = %.2f, expected 948520", result.InHandYearly)
	}
	if result.InHandMonthly != 79043 {
		t.Errorf("InHandMonthly = %.2f, expected 79043", result.InHandMonthly)
	}
}

func TestNewRegimeInHand(t *testing.T) {
	result := NewRegimeInHand(defaultSalary())

	if result.Deductions != 50000 {
		t.Errorf("Deductions = %.2f, expected only the standard deduction", result.Deductions)
	}
	if result.TaxableIncome != 950000 {
		t.Errorf("TaxableIncome = %.2f, expected 950000", result.TaxableIncome)
	}
	if result.Tax.Total != 54600 {
		t.Errorf("Tax = %d, expected 54600", result.Tax.Total)
	}
	if result.InHandYearly != 945400 {
		t.Errorf("InHandYearly = %.2f, expected 945400", result.InHandYearly)
	}
	if result.InHandMonthly != 78783 {
		t.Errorf("InHandMonthly = %.2f, expected 78783", result.InHandMonthly)
	}
}

func TestSectionCapsApplied(t *testing.T) {
	s := defaultSalary()
	s.Section80C = 400000
	s.Section80D = 90000
	s.Section80TTA = 50000

	deductions, _ := OldRegimeDeductions(s)
	if math.Abs(deductions-315000) > 1e-6 {
		t.Errorf("Deductions = %.2f, expected capped total 315000", deductions)
	}
}

// A negative HRA exemption reduces the other deductions rather than being
// floored at zero.
func TestNegativeHRAExemptionReducesDeductions(t *testing.T) {
	s := defaultSalary()
	s.RentPaid = 0

	result := OldRegimeInHand(s)
	if math.Abs(result.HRAExemption+40000) > 1e-6 {
		t.Fatalf("HRAExemption = %.2f, expected -40000", result.HRAExemption)
	}
	if math.Abs(result.Deductions-195000) > 1e-6 {
		t.Errorf("Deductions = %.2f, expected 195000", result.Deductions)
	}
}

func TestTaxableIncomeFloor(t *testing.T) {
	s := SalaryComponents{Basic: 100000, StandardDeduction: 500000}
	result := NewRegimeInHand(s)
	if result.TaxableIncome != 0 || result.Tax.Total != 0 {
		t.Errorf("expected zero taxable income and tax, got %+v", result)
	}
	if result.InHandYearly != 100000 {
		t.Errorf("InHandYearly = %.2f, expected 100000", result.InHandYearly)
	}
}

func TestZeroSalary(t *testing.T) {
	for _, result := range []SalaryResult{OldRegimeInHand(SalaryComponents{}), NewRegimeInHand(SalaryComponents{StandardDeduction: 50000})} {
		if result.Gross != 0 || result.InHandYearly != 0 || result.InHandMonthly != 0 || result.Tax.Total != 0 {
			t.Errorf("%s regime: expected zero result, got %+v", result.Regime, result)
		}
	}
}

func TestCompare(t *testing.T) {
	c := Compare(defaultSalary())
	if c.Recommended != "old" {
		t.Errorf("Recommended = %q, expected old", c.Recommended)
	}
	if c.Savings != 3120 {
		t.Errorf("Savings = %.2f, expected 3120", c.Savings)
	}

	tie := Compare(SalaryComponents{Basic: 300000, StandardDeduction: 50000})
	if tie.Recommended != "new" || tie.Savings != 0 {
		t.Errorf("tie should recommend new with no savings, got %q %.2f", tie.Recommended, tie.Savings)
	}

	s := defaultSalary()
	s.Section80C, s.Section80D, s.Section80TTA, s.RentPaid = 0, 0, 0, 0
	if got := Compare(s).Recommended; got != "new" {
		t.Errorf("Recommended = %q, expected new without deductions", got)
	}
}

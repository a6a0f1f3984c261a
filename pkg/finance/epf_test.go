package finance

import (
	"math"
	"testing"
)

func TestEPF(t *testing.T) {
	result := EPF(EPFInput{
		MonthlySalary:       50000,
		EmployeeRatePercent: 12,
		EmployerRatePercent: 12,
		AnnualRatePercent:   8.15,
		Years:               30,
	})

	if math.Abs(result.EmployeeMonthly-6000) > 1e-9 || math.Abs(result.EmployerMonthly-6000) > 1e-9 {
		t.Errorf("monthly contributions = %.2f/%.2f, expected 6000/6000", result.EmployeeMonthly, result.EmployerMonthly)
	}
	if math.Abs(result.EmployeeContribution-2160000) > 1e-6 || math.Abs(result.EmployerContribution-2160000) > 1e-6 {
		t.Errorf("contributions = %.2f/%.2f, expected 2160000 each", result.EmployeeContribution, result.EmployerContribution)
	}
	if math.Abs(result.MaturityValue-18563654.94) > 0.01 {
		t.Errorf("MaturityValue = %.2f, expected 18563654.94", result.MaturityValue)
	}
	if math.Abs(result.Interest-(18563654.94-4320000)) > 0.01 {
		t.Errorf("Interest = %.2f, expected %.2f", result.Interest, 18563654.94-4320000)
	}
	if len(result.Series) != 30 {
		t.Fatalf("Series has %d rows, expected 30", len(result.Series))
	}
	if last := result.Series[29]; math.Abs(last.TotalValue-result.MaturityValue) > 1e-6 {
		t.Errorf("final snapshot %.2f does not match maturity %.2f", last.TotalValue, result.MaturityValue)
	}
}

// Splitting the combined stream must give the same total as compounding each
// stream separately.
func TestEPFCombinedEqualsSeparateStreams(t *testing.T) {
	in := EPFInput{MonthlySalary: 80000, EmployeeRatePercent: 12, EmployerRatePercent: 3.67, AnnualRatePercent: 8.25, Years: 25}
	result := EPF(in)

	rate := in.AnnualRatePercent / 12 / 100
	months := in.Years * 12
	separate := FutureValueAnnuityDue(80000*0.12, rate, months) + FutureValueAnnuityDue(80000*0.0367, rate, months)
	if math.Abs(result.MaturityValue-separate) > 1e-6*separate {
		t.Errorf("combined %.4f != separate %.4f", result.MaturityValue, separate)
	}
}

func TestEPFMonotonicity(t *testing.T) {
	result := EPF(EPFInput{MonthlySalary: 50000, EmployeeRatePercent: 12, EmployerRatePercent: 12, AnnualRatePercent: 8.15, Years: 10})
	for i := 1; i < len(result.Series); i++ {
		if result.Series[i].TotalValue <= result.Series[i-1].TotalValue {
			t.Errorf("year %d value did not increase", result.Series[i].Year)
		}
	}
}

func TestEPFDegenerateInputs(t *testing.T) {
	tests := map[string]EPFInput{
		"Zero salary":        {MonthlySalary: 0, EmployeeRatePercent: 12, EmployerRatePercent: 12, AnnualRatePercent: 8.15, Years: 30},
		"Zero employee rate": {MonthlySalary: 50000, EmployeeRatePercent: 0, EmployerRatePercent: 12, AnnualRatePercent: 8.15, Years: 30},
		"Zero interest":      {MonthlySalary: 50000, EmployeeRatePercent: 12, EmployerRatePercent: 12, AnnualRatePercent: 0, Years: 30},
		"Zero years":         {MonthlySalary: 50000, EmployeeRatePercent: 12, EmployerRatePercent: 12, AnnualRatePercent: 8.15, Years: 0},
		"Term too long":      {MonthlySalary: 50000, EmployeeRatePercent: 12, EmployerRatePercent: 12, AnnualRatePercent: 8.15, Years: 101},
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			result := EPF(in)
			if result.MaturityValue != 0 || result.Interest != 0 || result.EmployeeContribution != 0 || result.EmployerContribution != 0 {
				t.Errorf("expected zero result, got %+v", result)
			}
			if result.Series == nil || len(result.Series) != 0 {
				t.Errorf("expected empty non-nil series, got %v", result.Series)
			}
		})
	}
}

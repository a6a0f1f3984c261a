package finance

import (
	"math"
	"testing"
)

func TestStepUpSIP(t *testing.T) {
	result := StepUpSIP(5000, 10, 12, 20)

	if math.Abs(result.TotalValue-9944357.74) > 0.01 {
		t.Errorf("TotalValue = %.2f, expected 9944357.74", result.TotalValue)
	}
	if math.Abs(result.Invested-3436499.97) > 0.01 {
		t.Errorf("Invested = %.2f, expected 3436499.97", result.Invested)
	}
	if len(result.Series) != 20 {
		t.Fatalf("Series has %d rows, expected 20", len(result.Series))
	}

	last := result.Series[19]
	if math.Abs(last.TotalValue-result.TotalValue) > 1e-6 {
		t.Errorf("final snapshot %.2f does not equal total value %.2f", last.TotalValue, result.TotalValue)
	}
	if math.Abs(result.Series[1].PeriodContribution-5500) > 1e-9 {
		t.Errorf("second year contribution = %.2f, expected 5500", result.Series[1].PeriodContribution)
	}
}

// The running value must agree with summing each month's contribution
// compounded for its remaining months.
func TestStepUpSIPMatchesPerMonthSum(t *testing.T) {
	monthly, stepUp, rate, years := 5000.0, 10.0, 12.0, 20
	r := rate / 12 / 100
	n := years * 12

	expected := 0.0
	for m := 1; m <= n; m++ {
		year := (m-1)/12 + 1
		contribution := monthly * math.Pow(1+stepUp/100, float64(year-1))
		expected += contribution * math.Pow(1+r, float64(n-m+1))
	}

	got := StepUpSIP(monthly, stepUp, rate, years).TotalValue
	if math.Abs(got-expected) > 1e-6*expected {
		t.Errorf("StepUpSIP() = %.4f, per-month sum = %.4f", got, expected)
	}
}

func TestStepUpSIPFirstYearMatchesSIP(t *testing.T) {
	stepUp := StepUpSIP(10000, 10, 12, 1)
	sip := SIP(10000, 12, 1)
	if math.Abs(stepUp.TotalValue-sip.TotalValue) > 1e-6 {
		t.Errorf("one-year step-up %.4f should equal SIP %.4f", stepUp.TotalValue, sip.TotalValue)
	}
}

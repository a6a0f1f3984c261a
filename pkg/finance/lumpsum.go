package finance

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// Frequency is the number of compounding periods per year.
type Frequency int

// Supported compounding frequencies.
const (
	Annually  Frequency = 1
	Quarterly Frequency = 4
	Monthly   Frequency = 12
)

// ParseFrequency maps a compounding name to a Frequency. An empty value selects
// quarterly compounding.
func ParseFrequency(name string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "quarterly":
		return Quarterly, nil
	case "monthly":
		return Monthly, nil
	case "annually", "annual", "yearly":
		return Annually, nil
	default:
		return 0, fmt.Errorf("invalid compounding frequency %q: must be monthly, quarterly or annually", name)
	}
}

func (f Frequency) String() string {
	switch f {
	case Annually:
		return "annually"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("every %d per year", int(f))
	}
}

// FixedDeposit compounds a principal at the given frequency for a possibly
// fractional number of years. The series covers each whole year.
func FixedDeposit(principal, annualRatePercent, years float64, frequency Frequency) GrowthResult {
	if !positive(principal, annualRatePercent, years) || years > constants.MaxTermYears || frequency <= 0 {
		return emptyGrowth()
	}

	n := float64(frequency)
	periodic := 1 + mathutil.PercentToDecimal(annualRatePercent)/n

	wholeYears := int(math.Floor(years))
	series := make([]GrowthSnapshot, 0, wholeYears)
	for year := 1; year <= wholeYears; year++ {
		series = append(series, newSnapshot(year, 0, principal, principal*math.Pow(periodic, n*float64(year))))
	}

	total := principal * math.Pow(periodic, n*years)
	return GrowthResult{
		Invested:   principal,
		TotalValue: total,
		Returns:    total - principal,
		Series:     series,
	}
}

// Lumpsum compounds a one-time investment annually.
func Lumpsum(principal, annualRatePercent, years float64) GrowthResult {
	return FixedDeposit(principal, annualRatePercent, years, Annually)
}

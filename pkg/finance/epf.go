package finance

import (
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// EPFInput describes matched provident fund contributions from a monthly salary.
type EPFInput struct {
	MonthlySalary       float64
	EmployeeRatePercent float64
	EmployerRatePercent float64
	AnnualRatePercent   float64
	Years               int
}

// EPFSnapshot is the account state at the end of a year.
type EPFSnapshot struct {
	Year       int
	Employee   float64
	Employer   float64
	TotalValue float64
	Returns    float64
}

// EPFResult is the outcome of an EPF calculation.
type EPFResult struct {
	EmployeeMonthly      float64
	EmployerMonthly      float64
	EmployeeContribution float64
	EmployerContribution float64
	Interest             float64
	MaturityValue        float64
	Series               []EPFSnapshot
}

// EPF computes the maturity of combined employee and employer contributions.
// Both streams share the same rate and term so they are compounded as one.
func EPF(in EPFInput) EPFResult {
	if !positive(in.MonthlySalary, in.EmployeeRatePercent, in.EmployerRatePercent, in.AnnualRatePercent) || in.Years <= 0 || in.Years > constants.MaxTermYears {
		return EPFResult{Series: []EPFSnapshot{}}
	}

	employee := mathutil.ApplyPercentage(in.MonthlySalary, in.EmployeeRatePercent)
	employer := mathutil.ApplyPercentage(in.MonthlySalary, in.EmployerRatePercent)
	rate := mathutil.MonthlyRate(in.AnnualRatePercent)

	series := make([]EPFSnapshot, 0, in.Years)
	for year := 1; year <= in.Years; year++ {
		months := year * constants.MonthsPerYear
		value := FutureValueAnnuityDue(employee+employer, rate, months)
		employeeTotal := employee * float64(months)
		employerTotal := employer * float64(months)
		series = append(series, EPFSnapshot{
			Year:       year,
			Employee:   employeeTotal,
			Employer:   employerTotal,
			TotalValue: value,
			Returns:    value - employeeTotal - employerTotal,
		})
	}

	months := in.Years * constants.MonthsPerYear
	maturity := FutureValueAnnuityDue(employee+employer, rate, months)
	employeeTotal := employee * float64(months)
	employerTotal := employer * float64(months)
	return EPFResult{
		EmployeeMonthly:      employee,
		EmployerMonthly:      employer,
		EmployeeContribution: employeeTotal,
		EmployerContribution: employerTotal,
		Interest:             maturity - employeeTotal - employerTotal,
		MaturityValue:        maturity,
		Series:               series,
	}
}

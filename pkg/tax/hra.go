package tax

import (
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// HRAExemption is the least of the HRA received, rent paid in excess of 10% of
// basic, and 50% (metro) or 40% of basic. The result is not floored at zero,
// so rent below 10% of basic yields a negative exemption.
func HRAExemption(actualHRA, rentPaid, basic float64, metroCity bool) float64 {
	actualHRA = mathutil.Sanitize(actualHRA)
	rentPaid = mathutil.Sanitize(rentPaid)
	basic = mathutil.Sanitize(basic)

	capPercent := constants.HRANonMetroPercent
	if metroCity {
		capPercent = constants.HRAMetroPercent
	}

	excessRent := rentPaid - mathutil.ApplyPercentage(basic, constants.HRABasicFloorPercent)
	return mathutil.Min(actualHRA, mathutil.Min(excessRent, mathutil.ApplyPercentage(basic, capPercent)))
}

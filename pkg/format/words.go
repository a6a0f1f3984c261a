package format

import (
	"math"
	"strings"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

var (
	onesWords  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teensWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// scaleUnit pairs an Indian numbering unit with its word.
type scaleUnit struct {
	value uint64
	word  string
}

// belowCrore lists the units applied after the crore bucket has been split off.
var belowCrore = []scaleUnit{
	{constants.Lakh, "Lakh"},
	{constants.Thousand, "Thousand"},
}

// maxWordsInput caps inputs so the conversion to an integer stays exact.
const maxWordsInput = 1e18

// NumberToWords spells a non-negative amount in English using the Indian
// numbering scale, e.g. 1234567 -> "Twelve Lakh Thirty Four Thousand Five
// Hundred and Sixty Seven". The fractional part is truncated; zero, negative
// and NaN inputs yield "Zero".
func NumberToWords(num float64) string {
	num = math.Floor(mathutil.Sanitize(num))
	if num <= 0 {
		return "Zero"
	}
	if num > maxWordsInput {
		num = maxWordsInput
	}
	return convertIndian(uint64(num))
}

// convertIndian splits n into crore, lakh, thousand and remainder buckets.
// Crores above 999 are spelled recursively ("One Thousand Crore").
func convertIndian(n uint64) string {
	var parts []string

	crore := n / constants.Crore
	if crore > 0 {
		parts = append(parts, convertIndian(crore)+" Crore")
	}
	n %= constants.Crore

	for _, unit := range belowCrore {
		if count := n / unit.value; count > 0 {
			parts = append(parts, convertBelowThousand(count)+" "+unit.word)
		}
		n %= unit.value
	}

	if n > 0 {
		parts = append(parts, convertBelowThousand(n))
	}
	return strings.Join(parts, " ")
}

func convertBelowThousand(n uint64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return onesWords[n]
	case n < 20:
		return teensWords[n-10]
	case n < 100:
		if n%10 != 0 {
			return tensWords[n/10] + " " + onesWords[n%10]
		}
		return tensWords[n/10]
	}

	words := onesWords[n/100] + " Hundred"
	if n%100 != 0 {
		words += " and " + convertBelowThousand(n%100)
	}
	return words
}

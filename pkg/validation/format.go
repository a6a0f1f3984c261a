// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/fincalc/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateCalculationType checks that a calculator type is supported.
func ValidateCalculationType(calcType string) error {
	for _, known := range constants.CalculatorTypes {
		if calcType == known {
			return nil
		}
	}
	return fmt.Errorf("unknown calculator type %q: expected one of %s",
		calcType, strings.Join(constants.CalculatorTypes, ", "))
}

// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/fincalc/internal/engine"
)

// FindResult finds a result by calculation name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []engine.Result, name string) *engine.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// AlmostEqual reports whether two amounts agree within tolerance.
func AlmostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

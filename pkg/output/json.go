package output

import (
	"encoding/json"
	"io"

	"github.com/iwvelando/fincalc/internal/engine"
)

// JSONFormat writes the results as an indented JSON array.
func JSONFormat(w io.Writer, results []engine.Result) error {
	if results == nil {
		results = []engine.Result{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

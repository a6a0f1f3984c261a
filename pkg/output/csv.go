package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/fincalc/internal/engine"
)

func csvValue(value float64, kind engine.Kind) string {
	if kind == engine.KindCount {
		return strconv.FormatInt(int64(value), 10)
	}
	return fmt.Sprintf("%.2f", value)
}

// CsvFormat outputs in comma-separated value format. Each result is a block of
// identity and summary records followed by its breakdown, separated by an
// empty record.
func CsvFormat(w io.Writer, results []engine.Result) error {
	writer := csv.NewWriter(w)
	for i, result := range results {
		records := [][]string{
			{"calculation", result.Name},
			{"type", result.Type},
			{"metric", "label", "value"},
		}
		for _, m := range result.Summary {
			value := m.Text
			if m.Kind != engine.KindText {
				value = csvValue(m.Value, m.Kind)
			}
			records = append(records, []string{m.Key, m.Label, value})
		}
		records = append(records, []string{"words", result.Words})

		if len(result.Rows) > 0 {
			header := make([]string, len(result.Columns))
			for j, c := range result.Columns {
				header[j] = c.Key
			}
			records = append(records, []string{}, header)
			for _, row := range result.Rows {
				cells := make([]string, len(row))
				for j, v := range row {
					kind := engine.KindNumber
					if j < len(result.Columns) {
						kind = result.Columns[j].Kind
					}
					cells[j] = csvValue(v, kind)
				}
				records = append(records, cells)
			}
		}
		if i < len(results)-1 {
			records = append(records, []string{})
		}

		if err := writer.WriteAll(records); err != nil {
			return fmt.Errorf("writing csv for %s: %w", result.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV rendering of results.
func CsvString(results []engine.Result) string {
	var b strings.Builder
	_ = CsvFormat(&b, results)
	return b.String()
}

// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/fincalc/internal/engine"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatValue renders a value for display according to its kind.
func FormatValue(value float64, kind engine.Kind) string {
	switch kind {
	case engine.KindCurrency:
		return format.INR(value)
	case engine.KindPercent:
		return format.Percent(value)
	case engine.KindCount:
		return message.NewPrinter(language.English).Sprintf("%d", int64(value))
	default:
		return format.Number(value)
	}
}

// FormatMetric renders a summary metric for display.
func FormatMetric(m engine.Metric) string {
	if m.Kind == engine.KindText {
		return m.Text
	}
	return FormatValue(m.Value, m.Kind)
}

// Render writes results to w in the requested output format.
func Render(w io.Writer, outputFormat string, results []engine.Result) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, results)
		return nil
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []engine.Result) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", result.Name, result.Type)))

		summary := table{Headers: []string{"Metric", "Value"}}
		for _, m := range result.Summary {
			summary.Rows = append(summary.Rows, []string{m.Label, FormatMetric(m)})
		}
		_, _ = fmt.Fprint(w, summary.render())
		if result.Words != "" {
			_, _ = fmt.Fprintln(w, wordsStyle.Render("  "+result.Words+" Rupees"))
		}

		if len(result.Rows) > 0 {
			breakdown := table{Headers: make([]string, len(result.Columns))}
			for j, c := range result.Columns {
				breakdown.Headers[j] = c.Label
			}
			for _, row := range result.Rows {
				cells := make([]string, len(row))
				for j, v := range row {
					kind := engine.KindNumber
					if j < len(result.Columns) {
						kind = result.Columns[j].Kind
					}
					cells[j] = FormatValue(v, kind)
				}
				breakdown.Rows = append(breakdown.Rows, cells)
			}
			_, _ = p.Fprintf(w, "  Breakdown: %d rows\n", len(result.Rows))
			_, _ = fmt.Fprint(w, breakdown.render())

			if trend := trendColumn(result); trend >= 0 {
				values := make([]float64, len(result.Rows))
				for j, row := range result.Rows {
					values[j] = row[trend]
				}
				_, _ = fmt.Fprintln(w, renderTrend(result.Columns[trend].Label, values))
			}
		}

		if i < len(results)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
}

// trendColumn picks the column charted under a breakdown: the total value or
// balance when present, otherwise -1.
func trendColumn(result engine.Result) int {
	for _, key := range []string{"totalValue", "balance", "remainingCorpus"} {
		for i, c := range result.Columns {
			if c.Key == key {
				return i
			}
		}
	}
	return -1
}

// PrettyString returns the pretty rendering of results.
func PrettyString(results []engine.Result) string {
	var b strings.Builder
	PrettyFormat(&b, results)
	return b.String()
}

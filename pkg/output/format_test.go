package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/fincalc/internal/engine"
)

func sampleResults() []engine.Result {
	return []engine.Result{
		{
			Name: "Home Loan",
			Type: "emi",
			Summary: []engine.Metric{
				{Key: "monthlyPayment", Label: "Monthly EMI", Value: 8678.23, Kind: engine.KindCurrency},
				{Key: "totalPayment", Label: "Total Payment", Value: 1041387.6, Kind: engine.KindCurrency},
			},
			Columns: []engine.Column{
				{Key: "month", Label: "Month", Kind: engine.KindCount},
				{Key: "interest", Label: "Interest", Kind: engine.KindCurrency},
				{Key: "balance", Label: "Balance", Kind: engine.KindCurrency},
			},
			Rows: [][]float64{
				{1, 4166.67, 495488.44},
				{2, 4129.07, 490939.28},
			},
			Words: "Ten Lakh Forty One Thousand Three Hundred and Eighty Seven",
		},
		{
			Name: "Regimes",
			Type: "salary-compare",
			Summary: []engine.Metric{
				{Key: "recommended", Label: "Recommended Regime", Kind: engine.KindText, Text: "old"},
				{Key: "effectiveTaxRate", Label: "Effective Tax Rate", Value: 4.29, Kind: engine.KindPercent},
			},
			Columns: []engine.Column{},
			Rows:    [][]float64{},
		},
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		kind     engine.Kind
		expected string
	}{
		{"Currency", 1234567, engine.KindCurrency, "₹12,34,567"},
		{"Percent", 8.15, engine.KindPercent, "8.15%"},
		{"Count", 360, engine.KindCount, "360"},
		{"Number", 1234.5, engine.KindNumber, "1,234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value, tt.kind); got != tt.expected {
				t.Errorf("FormatValue() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatMetricText(t *testing.T) {
	m := engine.Metric{Kind: engine.KindText, Text: "new"}
	if got := FormatMetric(m); got != "new" {
		t.Errorf("FormatMetric() = %q, expected new", got)
	}
}

func TestPrettyFormat(t *testing.T) {
	out := PrettyString(sampleResults())

	for _, want := range []string{
		"Home Loan (emi)",
		"Monthly EMI",
		"₹8,678",
		"Ten Lakh Forty One Thousand",
		"Breakdown: 2 rows",
		"₹4,95,488",
		"Regimes (salary-compare)",
		"Recommended Regime",
		"4.29%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q\n%s", want, out)
		}
	}
	if strings.Count(out, "Breakdown:") != 1 {
		t.Errorf("expected a breakdown only for the result with rows")
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, sampleResults()); err != nil {
		t.Fatalf("CsvFormat() error: %v", err)
	}

	reader := csv.NewReader(strings.NewReader(buf.String()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}

	if records[0][0] != "calculation" || records[0][1] != "Home Loan" {
		t.Errorf("first record = %v", records[0])
	}

	var foundPayment, foundHeader, foundRow, foundText bool
	for _, r := range records {
		switch {
		case len(r) == 3 && r[0] == "monthlyPayment":
			foundPayment = r[2] == "8678.23"
		case len(r) == 3 && r[0] == "month" && r[1] == "interest":
			foundHeader = true
		case len(r) == 3 && r[0] == "1":
			foundRow = r[1] == "4166.67" && r[2] == "495488.44"
		case len(r) == 3 && r[0] == "recommended":
			foundText = r[2] == "old"
		}
	}
	if !foundPayment || !foundHeader || !foundRow || !foundText {
		t.Errorf("missing csv content: payment=%v header=%v row=%v text=%v\n%s",
			foundPayment, foundHeader, foundRow, foundText, buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, sampleResults()); err != nil {
		t.Fatalf("JSONFormat() error: %v", err)
	}

	var decoded []engine.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Value("monthlyPayment") != 8678.23 {
		t.Errorf("unexpected decoded results: %+v", decoded)
	}

	buf.Reset()
	if err := JSONFormat(&buf, nil); err != nil {
		t.Fatalf("JSONFormat(nil) error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("JSONFormat(nil) = %q, expected []", buf.String())
	}
}

func TestRender(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "json"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, format, sampleResults()); err != nil {
				t.Fatalf("Render(%s) error: %v", format, err)
			}
			if buf.Len() == 0 {
				t.Errorf("Render(%s) wrote nothing", format)
			}
		})
	}

	if err := Render(&bytes.Buffer{}, "xml", nil); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline(nil); got != "" {
		t.Errorf("sparkline(nil) = %q", got)
	}
	got := []rune(sparkline([]float64{0, 50, 100}))
	if len(got) != 3 || got[0] != '▁' || got[2] != '█' {
		t.Errorf("sparkline() = %q", string(got))
	}
}

func TestSample(t *testing.T) {
	values := make([]float64, 360)
	for i := range values {
		values[i] = float64(i)
	}
	got := sample(values, maxTrendPoints)
	if len(got) != maxTrendPoints {
		t.Fatalf("sample() returned %d points", len(got))
	}
	if got[0] != 0 || got[len(got)-1] != 359 {
		t.Errorf("sample() endpoints = %v, %v", got[0], got[len(got)-1])
	}
}

func TestTableAlignsMultibyteCells(t *testing.T) {
	tbl := table{
		Headers: []string{"Metric", "Value"},
		Rows:    [][]string{{"EMI", "₹8,678"}, {"Total", "₹10,41,388"}},
	}
	lines := strings.Split(strings.TrimRight(tbl.render(), "\n"), "\n")
	width := len([]rune(lines[0]))
	for _, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("line %q has width %d, expected %d", line, len([]rune(line)), width)
		}
	}
}

package engine

import "github.com/iwvelando/fincalc/pkg/mathutil"

// Kind tells renderers how to display a value.
type Kind string

// Value kinds.
const (
	KindCurrency Kind = "currency"
	KindPercent  Kind = "percent"
	KindCount    Kind = "count"
	KindNumber   Kind = "number"
	KindText     Kind = "text"
)

// Metric is one headline figure of a result. Text metrics carry their value in Text.
type Metric struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Kind  Kind    `json:"kind"`
	Text  string  `json:"text,omitempty"`
}

// Column describes one column of the breakdown rows.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
}

// Result is the presentation-ready outcome of one calculation.
type Result struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Summary []Metric    `json:"summary"`
	Columns []Column    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
	Words   string      `json:"words"`
}

// Metric looks up a summary metric by key.
func (r Result) Metric(key string) (Metric, bool) {
	for _, m := range r.Summary {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}

// Value returns the value of a summary metric, or 0 when it is absent.
func (r Result) Value(key string) float64 {
	m, _ := r.Metric(key)
	return m.Value
}

// sanitize replaces NaN and infinite figures, e.g. from overflowing inputs,
// with 0 so every result encodes as JSON.
func (r *Result) sanitize() {
	for i := range r.Summary {
		r.Summary[i].Value = mathutil.Sanitize(r.Summary[i].Value)
	}
	for _, row := range r.Rows {
		for j := range row {
			row[j] = mathutil.Sanitize(row[j])
		}
	}
}

func currency(key, label string, value float64) Metric {
	return Metric{Key: key, Label: label, Value: value, Kind: KindCurrency}
}

func percent(key, label string, value float64) Metric {
	return Metric{Key: key, Label: label, Value: value, Kind: KindPercent}
}

func text(key, label, value string) Metric {
	return Metric{Key: key, Label: label, Kind: KindText, Text: value}
}

func column(key, label string, kind Kind) Column {
	return Column{Key: key, Label: label, Kind: kind}
}

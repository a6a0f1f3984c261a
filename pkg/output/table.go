package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	wordsStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)

	trendStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)

// table is a bordered text table. The first column is left aligned and the
// rest are right aligned.
type table struct {
	Headers []string
	Rows    [][]string
}

func (t table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	return widths
}

func rule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(borderStyle.Render(left))
	for i, w := range widths {
		b.WriteString(borderStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(borderStyle.Render(mid))
		}
	}
	b.WriteString(borderStyle.Render(right))
	b.WriteString("\n")
}

func pad(cell string, width int, left bool) string {
	gap := width - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if left {
		return " " + cell + strings.Repeat(" ", gap) + " "
	}
	return " " + strings.Repeat(" ", gap) + cell + " "
}

func (t table) render() string {
	if len(t.Headers) == 0 {
		return ""
	}
	widths := t.widths()

	var b strings.Builder
	rule(&b, widths, "╭", "┬", "╮")

	b.WriteString(borderStyle.Render("│"))
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i], i == 0)))
		b.WriteString(borderStyle.Render("│"))
	}
	b.WriteString("\n")
	rule(&b, widths, "├", "┼", "┤")

	for _, row := range t.Rows {
		b.WriteString(borderStyle.Render("│"))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i == 0)))
			b.WriteString(borderStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	rule(&b, widths, "╰", "┴", "╯")
	return b.String()
}

// sparkline renders a series as unicode blocks scaled to its maximum.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// maxTrendPoints bounds the sparkline width for long schedules.
const maxTrendPoints = 60

// sample picks at most n evenly spaced values, always keeping the last one.
func sample(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	out := make([]float64, 0, n)
	step := float64(len(values)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, values[int(float64(i)*step+0.5)])
	}
	return out
}

func renderTrend(label string, values []float64) string {
	return fmt.Sprintf("  %s %s", label, trendStyle.Render(sparkline(sample(values, maxTrendPoints))))
}

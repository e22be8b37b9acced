package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style is the presentation of a chart.
type Style struct {
	Width      int    // Cells of the longest bar.
	Glyph      string // Repeated to draw a bar.
	BarColor   lipgloss.TerminalColor
	TitleColor lipgloss.TerminalColor
	LabelColor lipgloss.TerminalColor
	ValueColor lipgloss.TerminalColor
}

// DefaultStyle is a dark palette with 50-cell bars.
func DefaultStyle() Style {
	return Style{
		Width:      50,
		Glyph:      "█",
		BarColor:   lipgloss.Color("25"),
		TitleColor: lipgloss.Color("205"),
		LabelColor: lipgloss.Color("255"),
		ValueColor: lipgloss.Color("86"),
	}
}

// withDefaults fills unset fields from [DefaultStyle].
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.Width < 1 {
		s.Width = d.Width
	}
	if s.Glyph == "" {
		s.Glyph = d.Glyph
	}
	if s.BarColor == nil {
		s.BarColor = d.BarColor
	}
	if s.TitleColor == nil {
		s.TitleColor = d.TitleColor
	}
	if s.LabelColor == nil {
		s.LabelColor = d.LabelColor
	}
	if s.ValueColor == nil {
		s.ValueColor = d.ValueColor
	}
	return s
}

// Chart draws horizontal bar charts to a writer.
type Chart struct {
	w     io.Writer
	style Style

	title lipgloss.Style
	axis  lipgloss.Style
	label lipgloss.Style
	bar   lipgloss.Style
	value lipgloss.Style
}

// NewChart returns a chart writing to w. profile decides which escape codes
// are emitted; termenv.Ascii gives plain text.
func NewChart(w io.Writer, style Style, profile termenv.Profile) *Chart {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	style = style.withDefaults()
	return &Chart{
		w:     w,
		style: style,
		title: r.NewStyle().Bold(true).Foreground(style.TitleColor),
		axis:  r.NewStyle().Faint(true),
		label: r.NewStyle().Foreground(style.LabelColor),
		bar:   r.NewStyle().Foreground(style.BarColor),
		value: r.NewStyle().Foreground(style.ValueColor),
	}
}

// Render draws one bar per label. Bars are scaled so the largest value
// spans Style.Width cells.
func (c *Chart) Render(labels []string, values []float64, title, yLabel string) error {
	return c.render(labels, values, title, "", yLabel)
}

// RenderResult draws an analysis result, including its category label.
func (c *Chart) RenderResult(r Result) error {
	return c.render(r.Labels, r.Values, r.Title, r.XLabel, r.YLabel)
}

func (c *Chart) render(labels []string, values []float64, title, xLabel, yLabel string) error {
	if len(labels) != len(values) {
		return fmt.Errorf("chart: %d labels for %d values", len(labels), len(values))
	}

	var b strings.Builder
	b.WriteString(c.title.Render(title))
	b.WriteString("\n\n")
	if xLabel != "" {
		b.WriteString(c.axis.Render(xLabel))
		b.WriteString("\n")
	}
	if len(values) == 0 {
		b.WriteString(c.axis.Render("(no data)"))
		b.WriteString("\n")
		_, err := io.WriteString(c.w, b.String())
		return err
	}

	labelWidth, peak := 0, 0.0
	for i, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
		peak = max(peak, values[i])
	}

	for i, l := range labels {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(l))
		b.WriteString(c.label.Render(pad + l))
		b.WriteString(" ")
		if n := barCells(values[i], peak, c.style.Width); n > 0 {
			b.WriteString(c.bar.Render(strings.Repeat(c.style.Glyph, n)))
			b.WriteString(" ")
		}
		b.WriteString(c.value.Render(fmt.Sprintf("%.1f", values[i])))
		b.WriteString("\n")
	}
	b.WriteString(c.axis.Render(strings.Repeat(" ", labelWidth+1) + yLabel))
	b.WriteString("\n")

	_, err := io.WriteString(c.w, b.String())
	return err
}

// barCells scales v against peak. Any positive value gets at least one cell.
func barCells(v, peak float64, width int) int {
	if v <= 0 || peak <= 0 {
		return 0
	}
	return max(1, int(math.Round(v/peak*float64(width))))
}

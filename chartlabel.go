package courbe

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

const (
	defaultFormat = "%.01f"

	// Point-based sizes and padding map onto cells at this scale.
	pointsPerCell = 8

	// Sizes at or above this render bold.
	boldSize = 32
)

// ChartLabel derives display text from a ChartValue and a LabelConfig,
// recomputing synchronously whenever either notifies. It never mutates
// them; both are owned by the surrounding chart.
//
// At rest the configured title is shown. While an interaction is in
// progress the label shows the formatted current value, and appends the
// delimiter and the point's legend text when the config asks for it.
type ChartLabel struct {
	title     string // retained per construction contract, display uses config title
	labelType LabelType
	format    string
	scheme    Scheme

	value  *ChartValue
	config *LabelConfig

	valueSub  Sub
	configSub Sub

	text string
}

// Option adjusts ChartLabel construction.
type Option func(*ChartLabel)

// WithType sets the label type; default is Title.
func WithType(lt LabelType) Option {
	return func(lbl *ChartLabel) {
		lbl.labelType = lt
	}
}

// WithFormat sets the numeric format pattern; default is one fixed
// decimal place.
func WithFormat(format string) Option {
	return func(lbl *ChartLabel) {
		lbl.format = format
	}
}

// WithScheme sets the color scheme; default is TermScheme.
func WithScheme(scheme Scheme) Option {
	return func(lbl *ChartLabel) {
		lbl.scheme = scheme
	}
}

// NewChartLabel creates a label observing value and config, both owned
// by the caller. Call Close to release the subscriptions.
func NewChartLabel(value *ChartValue, config *LabelConfig, title string, opts ...Option) *ChartLabel {

	lbl := &ChartLabel{
		title:  title,
		format: defaultFormat,
		scheme: TermScheme{},
		value:  value,
		config: config,
	}
	for _, opt := range opts {
		opt(lbl)
	}

	lbl.text = config.Title()
	lbl.valueSub = value.Subscribe(lbl.onValue)
	lbl.configSub = config.Subscribe(lbl.onConfig)

	return lbl
}

// Close unsubscribes from both observables.
func (lbl *ChartLabel) Close() {
	lbl.value.Unsubscribe(lbl.valueSub)
	lbl.config.Unsubscribe(lbl.configSub)
}

// Text returns the current display text.
func (lbl *ChartLabel) Text() string {
	return lbl.text
}

// Render returns the display text styled per the label type.
func (lbl *ChartLabel) Render() string {

	styling := lbl.labelType.Styling()
	pad := styling.Pad

	style := lipgloss.NewStyle().
		Foreground(styling.Color(lbl.scheme)).
		Padding(pad.Top/pointsPerCell, pad.Trailing/pointsPerCell, pad.Bottom/pointsPerCell, pad.Leading/pointsPerCell)
	if styling.Size >= boldSize {
		style = style.Bold(true)
	}

	return style.Render(lbl.text)
}

// onValue recomputes text for a chart value change.
func (lbl *ChartLabel) onValue() {

	if !lbl.value.Interacting() {
		lbl.text = lbl.config.Title()
		return
	}

	text := fmt.Sprintf(lbl.format, lbl.value.Value())
	if lbl.value.Text() != "" && lbl.config.ShowLegend() {
		text += lbl.config.Delimiter() + lbl.value.Text()
	}
	lbl.text = text
}

// onConfig recomputes text for a config change. Unlike onValue the
// legend text is appended bare: no delimiter, no legend gate.
func (lbl *ChartLabel) onConfig() {

	if !lbl.value.Interacting() {
		lbl.text = lbl.config.Title()
		return
	}

	lbl.text = fmt.Sprintf(lbl.format, lbl.value.Value()) + lbl.value.Text()
}

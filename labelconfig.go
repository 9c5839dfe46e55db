package courbe

// LabelConfig holds label text settings shared by every label in a
// chart. It is created once per chart by the owning caller and passed
// by reference; setters apply the change and then notify subscribers.
type LabelConfig struct {
	Feed

	title      string
	delimiter  string
	showLegend bool
}

func NewLabelConfig(title string) *LabelConfig {
	return &LabelConfig{title: title}
}

// SetTitle replaces the title; empty string is allowed.
func (cfg *LabelConfig) SetTitle(title string) {
	cfg.title = title
	cfg.notify()
}

// SetLegendDisplay toggles whether a point's legend text is shown.
func (cfg *LabelConfig) SetLegendDisplay(show bool) {
	cfg.showLegend = show
	cfg.notify()
}

// SetLegendDelimiter replaces the separator between a value and its
// legend text.
func (cfg *LabelConfig) SetLegendDelimiter(delimiter string) {
	cfg.delimiter = delimiter
	cfg.notify()
}

func (cfg *LabelConfig) Title() string {
	return cfg.title
}

func (cfg *LabelConfig) Delimiter() string {
	return cfg.delimiter
}

func (cfg *LabelConfig) ShowLegend() bool {
	return cfg.showLegend
}

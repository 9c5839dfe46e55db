package courbe

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "courbe/entity"
)

const (
	footerHeight = 2
)

var sampleTitles = []string{"Weekly Sales", "Sensor 7", "Throughput"}

// Model is the bubbletea model for the chart demo. Arrow keys scrub
// data points, driving ChartValue; the labels update themselves.
type Model struct {
	store  Store
	logger nt.Logger
	ctx    context.Context

	config *LabelConfig
	value  *ChartValue
	title  *ChartLabel
	legend *ChartLabel

	points   []nt.Point
	selected int

	errorString string

	width  int
	height int
}

// NewModel creates a bt model wired to a store and chart definition.
func NewModel(ctx context.Context, store Store, chartFile *ChartFile, lgr nt.Logger) (model Model, err error) {

	lt, err := chartFile.LabelType()
	if err != nil {
		return
	}

	format := chartFile.Format
	if format == "" {
		format = defaultFormat
	}

	config := chartFile.Config()
	value := NewChartValue()

	model = Model{
		store:    store,
		logger:   lgr,
		ctx:      ctx,
		config:   config,
		value:    value,
		title:    NewChartLabel(value, config, chartFile.Title, WithType(lt), WithFormat(format)),
		legend:   NewChartLabel(value, config, chartFile.Title, WithType(Legend), WithFormat(format)),
		selected: -1,
	}

	return
}

func (m Model) Init() tea.Cmd {
	return m.loadPoints
}

// loadPoints pulls the series from the store.
func (m Model) loadPoints() tea.Msg {

	points, err := m.store.Points()
	if err != nil {
		return errorMsg{err: err}
	}
	return pointsMsg{points: points}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case pointsMsg:
		m.points = msg.points
		return m, nil

	case errorMsg:
		m.logger.Error(m.ctx, "error msg", msg.err)
		m.errorString = msg.err.Error()
		return m, nil

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			m.selected = -1
			m.value.Release()

		case "right", "l":
			m.scrub(m.selected + 1)

		case "left", "h":
			m.scrub(m.selected - 1)

		case "g":
			m.config.SetLegendDisplay(!m.config.ShowLegend())

		case "t":
			m.config.SetTitle(nextTitle(m.config.Title()))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.width == 0 { // Todo: use m.initialized
		return tea.NewView("Loading...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.title.Render(),
		Sparkline(m.points, m.selected),
		m.legend.Render(),
	)

	footerContent := RenderFooter(m.selected, len(m.points), m.store.Name(), m.width)
	if m.errorString != "" {
		footerContent = m.errorString
	}

	// Compose layers on canvas
	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(lipgloss.NewLayer("chart", content))
	canvas.Compose(lipgloss.NewLayer("footer", footerContent).Y(m.height - footerHeight))

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// scrub clamps the selection to the series and touches the chart value.
func (m *Model) scrub(to int) {

	if len(m.points) == 0 {
		return
	}
	if to < 0 {
		to = 0
	}
	if to > len(m.points)-1 {
		to = len(m.points) - 1
	}

	m.selected = to
	pt := m.points[to]
	m.value.Touch(pt.Value, pt.Label)
}

// nextTitle cycles through sample titles for the demo.
func nextTitle(current string) string {

	for i, title := range sampleTitles {
		if title == current {
			return sampleTitles[(i+1)%len(sampleTitles)]
		}
	}
	return sampleTitles[0]
}

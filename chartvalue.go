package courbe

// ChartValue tracks the data point under the user's cursor while an
// interaction is in progress. Mutation is the chart's job; labels only
// read and subscribe. When Interacting is false the value and text are
// not meaningful for display.
type ChartValue struct {
	Feed

	value       float64
	text        string
	interacting bool
}

func NewChartValue() *ChartValue {
	return &ChartValue{}
}

// Touch records the point under the cursor and marks an interaction in
// progress.
func (val *ChartValue) Touch(value float64, text string) {
	val.value = value
	val.text = text
	val.interacting = true
	val.notify()
}

// Release ends the interaction.
func (val *ChartValue) Release() {
	val.interacting = false
	val.notify()
}

func (val *ChartValue) Value() float64 {
	return val.value
}

func (val *ChartValue) Text() string {
	return val.text
}

func (val *ChartValue) Interacting() bool {
	return val.interacting
}

package courbe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setup(title string, opts ...Option) (*ChartValue, *LabelConfig, *ChartLabel) {

	value := NewChartValue()
	config := NewLabelConfig(title)
	label := NewChartLabel(value, config, "fallback", opts...)

	return value, config, label
}

func TestChartLabelInitialText(t *testing.T) {

	// constructor title is not part of the display path
	_, _, label := setup("Weekly Sales")
	assert.Equal(t, "Weekly Sales", label.Text())
}

func TestChartLabelAtRest(t *testing.T) {

	value, config, label := setup("Weekly Sales")
	config.SetLegendDisplay(true)

	// not interacting, value changes still show the title
	value.Release()
	assert.Equal(t, "Weekly Sales", label.Text())

	config.SetTitle("Sensor 7")
	assert.Equal(t, "Sensor 7", label.Text())
}

func TestChartLabelFormatsValue(t *testing.T) {

	value, _, label := setup("Weekly Sales")

	value.Touch(3.14159, "")
	assert.Equal(t, "3.1", label.Text())
}

func TestChartLabelLegendOff(t *testing.T) {

	value, config, label := setup("Weekly Sales")
	config.SetLegendDelimiter(": ")

	// legend text present but display off: value only
	value.Touch(3.14159, "Mon")
	assert.Equal(t, "3.1", label.Text())
}

func TestChartLabelLegendOn(t *testing.T) {

	value, config, label := setup("Weekly Sales")
	config.SetLegendDelimiter(": ")
	config.SetLegendDisplay(true)

	value.Touch(3.14159, "Mon")
	assert.Equal(t, "3.1: Mon", label.Text())

	// empty legend text leaves nothing to append
	value.Touch(3.14159, "")
	assert.Equal(t, "3.1", label.Text())
}

func TestChartLabelConfigChangePath(t *testing.T) {

	value, config, label := setup("Weekly Sales")
	config.SetLegendDelimiter(": ")

	value.Touch(3.14159, "Mon")
	assert.Equal(t, "3.1", label.Text())

	// the config path appends legend text bare: no delimiter, and the
	// legend display flag is not consulted
	config.SetLegendDelimiter("; ")
	assert.Equal(t, "3.1Mon", label.Text())

	// back on the value path the delimiter and flag apply again
	config.SetLegendDisplay(true)
	value.Touch(3.14159, "Mon")
	assert.Equal(t, "3.1; Mon", label.Text())
}

func TestChartLabelIdempotent(t *testing.T) {

	value, config, label := setup("Weekly Sales")
	config.SetLegendDisplay(true)
	config.SetLegendDelimiter(": ")

	value.Touch(3.14159, "Mon")
	first := label.Text()

	value.Touch(3.14159, "Mon")
	assert.Equal(t, first, label.Text())
}

func TestChartLabelCustomFormat(t *testing.T) {

	value, _, label := setup("Weekly Sales", WithFormat("%.3f"))

	value.Touch(3.14159, "")
	assert.Equal(t, "3.142", label.Text())
}

func TestChartLabelClose(t *testing.T) {

	value, config, label := setup("Weekly Sales")

	label.Close()
	value.Touch(3.14159, "Mon")
	config.SetTitle("Sensor 7")

	// no subscriptions left, text frozen
	assert.Equal(t, "Weekly Sales", label.Text())
}

func TestChartLabelSharedConfig(t *testing.T) {

	value := NewChartValue()
	config := NewLabelConfig("Weekly Sales")
	title := NewChartLabel(value, config, "")
	legend := NewChartLabel(value, config, "", WithType(Legend))

	config.SetTitle("Sensor 7")
	assert.Equal(t, "Sensor 7", title.Text())
	assert.Equal(t, "Sensor 7", legend.Text())
}

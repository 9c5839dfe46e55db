package courbe

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	nt "courbe/entity"
)

func TestSparkIndex(t *testing.T) {

	assert.Equal(t, 0, sparkIndex(2.0, 2.0, 4.0))
	assert.Equal(t, 7, sparkIndex(6.0, 2.0, 4.0))
	assert.Equal(t, 3, sparkIndex(4.0, 2.0, 4.0))

	// flat series
	assert.Equal(t, 0, sparkIndex(5.0, 5.0, 0))
}

func TestSparkline(t *testing.T) {

	points := []nt.Point{
		{Value: 3.2, Label: "Mon"},
		{Value: 4.7, Label: "Tue"},
		{Value: 2.9, Label: "Wed"},
		{Value: 5.1, Label: "Thu"},
	}

	line := Sparkline(points, 1)
	assert.Equal(t, len(points), lipgloss.Width(line))

	assert.Empty(t, Sparkline(nil, -1))
}

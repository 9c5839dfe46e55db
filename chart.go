package courbe

import (
	"strings"

	"github.com/samber/lo"

	nt "courbe/entity"
)

var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a series as block runes, one column per point,
// scaled between the series min and max. The selected column is
// highlighted; pass -1 for no selection.
func Sparkline(points []nt.Point, selected int) string {

	if len(points) == 0 {
		return ""
	}

	values := lo.Map(points, func(pt nt.Point, _ int) float64 {
		return pt.Value
	})
	lowest := lo.Min(values)
	span := lo.Max(values) - lowest

	var out strings.Builder
	for i, val := range values {
		spark := string(sparks[sparkIndex(val, lowest, span)])
		if i == selected {
			out.WriteString(hlStyle.Render(spark))
			continue
		}
		out.WriteString(mutedStyle.Render(spark))
	}

	return out.String()
}

// sparkIndex scales a value into the spark rune range. A flat series
// (span zero) maps everything to the lowest rune.
func sparkIndex(val, lowest, span float64) int {

	if span <= 0 {
		return 0
	}
	return int((val - lowest) / span * float64(len(sparks)-1))
}

package entity

// Point is a single chart data point: a numeric value plus an optional
// textual legend such as a weekday or category name.
type Point struct {
	Value float64
	Label string
}

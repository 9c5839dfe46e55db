package courbe

import nt "courbe/entity"

// pointsMsg contains a loaded series
type pointsMsg struct {
	points []nt.Point
}

// errorMsg contains an error
type errorMsg struct {
	err error
}

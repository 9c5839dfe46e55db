package courbe

import (
	nt "courbe/entity"
)

// Todo: mouse scrubbing in addition to keys
// Todo: let chart.yaml pick a scheme

// Store specifies a backing datastore for a chart series.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load a series file
	Load(path string) (err error)
	// Points returns the loaded series in file order
	Points() (points []nt.Point, err error)
}

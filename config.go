package courbe

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ChartFile is the on-disk chart definition.
type ChartFile struct {
	Title     string `yaml:"title"`
	Delimiter string `yaml:"delimiter,omitempty"`
	Legend    bool   `yaml:"legend,omitempty"`
	Label     string `yaml:"label,omitempty"`
	Format    string `yaml:"format,omitempty"`
	Data      string `yaml:"data"`
}

// LoadChartFile reads a chart definition from a yaml file.
func LoadChartFile(path string) (chartFile *ChartFile, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	chartFile = &ChartFile{}
	err = yaml.Unmarshal(data, chartFile)
	if err != nil {
		chartFile = nil
		err = errors.Wrapf(err, "failed to unmarshal chart file")
	}
	return
}

// Config builds the LabelConfig described by the file.
func (chartFile *ChartFile) Config() *LabelConfig {

	config := NewLabelConfig(chartFile.Title)
	config.SetLegendDelimiter(chartFile.Delimiter)
	config.SetLegendDisplay(chartFile.Legend)

	return config
}

// LabelType resolves the file's label type name; blank means Title.
func (chartFile *ChartFile) LabelType() (LabelType, error) {
	return ParseLabelType(chartFile.Label)
}

package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/marcboeker/go-duckdb"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"

	"courbe"
	"courbe/store/duck"
	"courbe/util"
)

const (
	chartPath = "chart.yaml"
	logPath   = "courbe.log"
)

func main() {

	file := util.OpenLog(logPath, 0644)
	defer util.CloseLog(file)

	lgr := &sabot.Sabot{Writer: file}
	ctx := context.Background()

	chartFile, err := courbe.LoadChartFile(chartPath)
	if err != nil {
		fail(err)
	}

	dk, err := duck.New(lgr)
	if err != nil {
		fail(err)
	}
	defer dk.Close()

	err = dk.Load(chartFile.Data)
	if err != nil {
		fail(err)
	}

	model, err := courbe.NewModel(ctx, dk, chartFile, lgr)
	if err != nil {
		fail(err)
	}

	lgr.Info(ctx, "starting chart", "data", chartFile.Data)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

package record

import (
	"io"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
)

// PopulationChart renders population per generation as a PNG line chart.
func PopulationChart(w io.Writer, population []int) error {
	if len(population) < 2 {
		return errors.Errorf("population chart needs at least 2 generations, got %d", len(population))
	}
	xs := make([]float64, len(population))
	ys := make([]float64, len(population))
	for i, p := range population {
		xs[i] = float64(i)
		ys[i] = float64(p)
	}

	graph := chart.Chart{
		Width:  800,
		Height: 300,
		XAxis: chart.XAxis{
			Name:  "generation",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "population",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "alive",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "render population chart")
	}
	return nil
}

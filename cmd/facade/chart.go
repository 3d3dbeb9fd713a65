package main

import (
	"fmt"
	"image/color"

	"github.com/aclements/facade"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// wallChart plots the WWR of each wall as a bar, with the building's
// overall WWR as a horizontal line.
func wallChart(title string, a *facade.Annotation) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = "Wall"
	plt.Y.Label.Text = "WWR"
	plt.Y.Min = 0

	vals := make(plotter.Values, len(a.Walls))
	names := make([]string, len(a.Walls))
	for i, w := range a.Walls {
		vals[i] = w.WWR
		names[i] = fmt.Sprintf("%d (%+.0f,%+.0f)", i, w.Direction[0], w.Direction[1])
	}
	if len(vals) > 0 {
		bars, err := plotter.NewBarChart(vals, vg.Points(20))
		if err != nil {
			return nil, err
		}
		bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
		bars.LineStyle.Width = 0
		plt.Add(bars)
		plt.NominalX(names...)
	}

	overall := plotter.NewFunction(func(float64) float64 { return a.Overall.WWR })
	overall.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	overall.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	plt.Add(overall)
	plt.Legend.Add("overall", overall)
	return plt, nil
}

func saveWallChart(path, title string, a *facade.Annotation) error {
	plt, err := wallChart(title, a)
	if err != nil {
		return err
	}
	return plt.Save(20*vg.Centimeter, 15*vg.Centimeter, path)
}

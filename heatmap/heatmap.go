// Package heatmap exports distance grids as standalone go-echarts HTML pages.
// Columns run along the x axis, rows along the y axis, and the colour encodes
// the distance. Unreachable (Infinity) cells are left blank so the visual map
// spans finite values only.
package heatmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/distgrid/distance"
	"github.com/katalvlaran/distgrid/grid"
)

// ErrEmpty is returned when there is no grid to render.
var ErrEmpty = errors.New("heatmap: grid is nil")

// palette is the viridis ramp, near to far.
var palette = []string{"#fde725", "#b5de2b", "#6ece58", "#35b779", "#1f9e89", "#26828e", "#31688e", "#3e4989", "#482777", "#440154"}

// Write renders g as an HTML heatmap page to w.
func Write(w io.Writer, title string, g *grid.Grid[distance.Distance]) error {
	if g == nil {
		return ErrEmpty
	}
	sum := distance.Summarize(g)
	maxD := sum.Max
	if maxD.IsInf() {
		maxD = 0
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: sum.String()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: axisLabels(g.Cols()), Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: axisLabels(g.Rows()), Name: "y"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxD),
			InRange:    &opts.VisualMapInRange{Color: palette},
		}),
	)
	hm.AddSeries("distance", points(g))

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("heatmap: render: %w", err)
	}
	return nil
}

// WriteFile writes case_NNN.html under dir (created if needed) and returns
// the file path.
func WriteFile(dir string, caseIndex int, g *grid.Grid[distance.Distance]) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("heatmap: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("case_%03d.html", caseIndex))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("heatmap: create %s: %w", path, err)
	}
	if err := Write(f, fmt.Sprintf("Distance map, case %d", caseIndex), g); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("heatmap: close %s: %w", path, err)
	}

	return path, nil
}

// points converts finite cells to [x, y, distance] triples.
func points(g *grid.Grid[distance.Distance]) []opts.HeatMapData {
	out := make([]opts.HeatMapData, 0, g.Size())
	for i, d := range g.Values() {
		if d.IsInf() {
			continue
		}
		c := g.Coordinate(i)
		out = append(out, opts.HeatMapData{Value: [3]interface{}{c.X, c.Y, int(d)}})
	}
	return out
}

func axisLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

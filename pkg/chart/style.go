package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	processorAxisLabel  = "Number of Processors (p)"
	speedupAxisLabel    = "Speedup S(p)"
	efficiencyAxisLabel = "Efficiency (%)"
)

var (
	referenceColor = color.Gray{Y: 150}
	dashes         = []vg.Length{vg.Points(6), vg.Points(3)}
	thinLine       = vg.Points(1.5)
	thickLine      = vg.Points(2.5)
)

func seriesColors() ([]color.Color, error) {
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", 9)
	if err != nil {
		return nil, fmt.Errorf("loading series palette: %w", err)
	}

	return palette.Colors(), nil
}

// newPanelPlot a plot with a log2 processor axis ticked at every processor count.
func newPanelPlot(title, yLabel string, processors []int) *plot.Plot {
	p := plot.New()

	p.Title.Text = title
	p.X.Label.Text = processorAxisLabel
	p.Y.Label.Text = yLabel

	p.X.Scale = plot.LogScale{}
	ticks := make([]plot.Tick, len(processors))
	for i, proc := range processors {
		ticks[i] = plot.Tick{Value: float64(proc), Label: fmt.Sprint(proc)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 220}
	grid.Horizontal.Color = color.Gray{Y: 220}
	p.Add(grid)

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.Legend.TextStyle.Font.Size = vg.Points(9)

	return p
}

func glyphFor(square bool) draw.GlyphDrawer {
	if square {
		return draw.BoxGlyph{}
	}

	return draw.CircleGlyph{}
}

package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Renderer draws the figures of one analysis configuration.
type Renderer struct {
	cfg    config.AnalysisConfiguration
	colors []color.Color
}

func NewRenderer(cfg config.AnalysisConfiguration) (*Renderer, error) {
	colors, err := seriesColors()
	if err != nil {
		return nil, err
	}

	return &Renderer{
		cfg:    cfg,
		colors: colors,
	}, nil
}

func (r *Renderer) processors() []float64 {
	xs := make([]float64, len(r.cfg.Processors))
	for i, p := range r.cfg.Processors {
		xs[i] = float64(p)
	}
	return xs
}

// RenderFigure draws the 2x2 grid of the figure and writes it as a PNG to its output path.
func (r *Renderer) RenderFigure(figure config.FigureConfiguration) error {
	f, err := os.Create(figure.OutputPath)
	if err != nil {
		return fmt.Errorf("creating figure file: %w", err)
	}
	defer f.Close()

	if err := r.WriteFigure(f, figure); err != nil {
		return err
	}

	log.Debugf("Figure saved to %s", figure.OutputPath)

	return f.Close()
}

// WriteFigure draws the 2x2 grid of the figure as PNG into w.
func (r *Renderer) WriteFigure(w io.Writer, figure config.FigureConfiguration) error {
	plots, err := r.buildGrid(figure)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(figure.WidthInches)*vg.Inch, vg.Length(figure.HeightInches)*vg.Inch),
		vgimg.UseDPI(figure.DPI),
	)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      common.FigureRows,
		Cols:      common.FigureCols,
		PadX:      8 * vg.Millimeter,
		PadY:      8 * vg.Millimeter,
		PadTop:    4 * vg.Millimeter,
		PadBottom: 4 * vg.Millimeter,
		PadLeft:   4 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}

	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encoding figure %s: %w", figure.OutputPath, err)
	}

	return nil
}

func (r *Renderer) buildGrid(figure config.FigureConfiguration) ([][]*plot.Plot, error) {
	if len(figure.Panels) != common.FigureRows*common.FigureCols {
		return nil, fmt.Errorf("figure %s has %d panels, expected %d",
			figure.OutputPath, len(figure.Panels), common.FigureRows*common.FigureCols)
	}

	plots := make([][]*plot.Plot, common.FigureRows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, common.FigureCols)
		for i := range plots[j] {
			panel := figure.Panels[j*common.FigureCols+i]
			log.Debugf("Building %s panel %q", panel.Kind, panel.Title)

			p, err := r.buildPanel(panel)
			if err != nil {
				return nil, fmt.Errorf("panel %q: %w", panel.Title, err)
			}
			plots[j][i] = p
		}
	}

	return plots, nil
}

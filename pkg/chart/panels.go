package chart

import (
	"fmt"
	"image/color"

	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"
	"github.com/eth-easl/speedup/pkg/model"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// panelBuilder accumulates the series of one panel and the y values they span.
type panelBuilder struct {
	plot    *plot.Plot
	colors  []color.Color
	series  int
	entries int
	yValues []float64
}

func (pb *panelBuilder) legend(label string, thumbs ...plot.Thumbnailer) {
	pb.plot.Legend.Add(label, thumbs...)
	pb.entries++
}

func (pb *panelBuilder) nextColor() color.Color {
	c := pb.colors[pb.series%len(pb.colors)]
	pb.series++
	return c
}

func (pb *panelBuilder) addCurve(label string, xs, ys []float64, square bool, width vg.Length) error {
	line, points, err := plotter.NewLinePoints(xyPairs(xs, ys))
	if err != nil {
		return fmt.Errorf("curve %q: %w", label, err)
	}

	c := pb.nextColor()
	line.LineStyle.Color = c
	line.LineStyle.Width = width
	points.GlyphStyle.Color = c
	points.GlyphStyle.Shape = glyphFor(square)
	points.GlyphStyle.Radius = vg.Points(3)

	pb.plot.Add(line, points)
	pb.legend(label, line, points)
	pb.yValues = append(pb.yValues, ys...)

	return nil
}

// addHorizontal a dashed line at y spanning [xMin, xMax]. A nil color uses the last series color.
func (pb *panelBuilder) addHorizontal(label string, y, xMin, xMax float64, c color.Color) error {
	line, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: y}, {X: xMax, Y: y}})
	if err != nil {
		return fmt.Errorf("horizontal line %q: %w", label, err)
	}

	if c == nil {
		c = pb.colors[(pb.series-1+len(pb.colors))%len(pb.colors)]
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = thinLine
	line.LineStyle.Dashes = dashes

	pb.plot.Add(line)
	pb.legend(label, line)

	return nil
}

func (pb *panelBuilder) addLinearIdeal(processors []float64) error {
	line, err := plotter.NewLine(xyPairs(processors, processors))
	if err != nil {
		return fmt.Errorf("linear ideal: %w", err)
	}

	line.LineStyle.Color = referenceColor
	line.LineStyle.Width = thinLine
	line.LineStyle.Dashes = dashes

	pb.plot.Add(line)
	pb.legend("Linear (ideal)", line)
	pb.yValues = append(pb.yValues, processors...)

	return nil
}

// fitYAxis fixes the y range to [0, yMax], or to the plotted values with some headroom.
func (pb *panelBuilder) fitYAxis(yMax float64) {
	pb.plot.Y.Min = 0
	if yMax > 0 {
		pb.plot.Y.Max = yMax
		return
	}
	if len(pb.yValues) > 0 {
		pb.plot.Y.Max = floats.Max(pb.yValues) * 1.05
	}
}

func xyPairs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}

func (r *Renderer) buildPanel(panel config.PanelConfiguration) (*plot.Plot, error) {
	pb, err := r.populate(panel)
	if err != nil {
		return nil, err
	}

	return pb.plot, nil
}

func (r *Renderer) populate(panel config.PanelConfiguration) (*panelBuilder, error) {
	yLabel := speedupAxisLabel
	if panel.Kind == common.EfficiencyPanel {
		yLabel = efficiencyAxisLabel
	}

	pb := &panelBuilder{
		plot:   newPanelPlot(panel.Title, yLabel, r.cfg.Processors),
		colors: r.colors,
	}

	var err error
	switch panel.Kind {
	case common.AmdahlPanel:
		err = r.perMeasurement(pb, model.Amdahl, panel.ShowAsymptotes)
	case common.GustafsonPanel:
		err = r.perMeasurement(pb, model.Gustafson, false)
	case common.ComparisonPanel:
		err = r.comparison(pb)
	case common.EfficiencyPanel:
		err = r.efficiency(pb)
	case common.CrossStudyPanel:
		err = r.references(pb, panel.References)
	case common.FractionSweepPanel:
		err = r.fractionSweep(pb, panel.Fractions)
	default:
		err = fmt.Errorf("unsupported panel kind %q", panel.Kind)
	}
	if err != nil {
		return nil, err
	}

	pb.fitYAxis(panel.YMax)

	return pb, nil
}

// perMeasurement one curve per table entry, optionally with its 1/fs asymptote.
func (r *Renderer) perMeasurement(pb *panelBuilder, law model.Law, asymptotes bool) error {
	for _, m := range r.cfg.Measurements {
		curve := model.Evaluate(law, m.SequentialFraction, r.cfg.Processors)
		log.Tracef("%s curve for %d: %v", law, m.ProblemSize, curve.Speedups())

		label := fmt.Sprintf("%s (fs=%.*f)", common.ChartLabel(r.cfg.ProblemKind, m.ProblemSize), r.cfg.ChartFractionDigits, m.SequentialFraction)
		if err := pb.addCurve(label, curve.Processors(), curve.Speedups(), law == model.Gustafson, thinLine); err != nil {
			return err
		}

		if asymptotes && m.SequentialFraction > 0 {
			bound := model.MaxSpeedup(m.SequentialFraction)
			xs := curve.Processors()
			if err := pb.addHorizontal(fmt.Sprintf("Max=%.2f", bound), bound, xs[0], xs[len(xs)-1], nil); err != nil {
				return err
			}
		}
	}

	return pb.addLinearIdeal(r.processors())
}

func (r *Renderer) comparison(pb *panelBuilder) error {
	fs := r.cfg.SelectedMeasurement().SequentialFraction

	amdahl := model.Evaluate(model.Amdahl, fs, r.cfg.Processors)
	if err := pb.addCurve("Amdahl's Law", amdahl.Processors(), amdahl.Speedups(), false, thickLine); err != nil {
		return err
	}
	gustafson := model.Evaluate(model.Gustafson, fs, r.cfg.Processors)
	if err := pb.addCurve("Gustafson's Law", gustafson.Processors(), gustafson.Speedups(), true, thickLine); err != nil {
		return err
	}

	return pb.addLinearIdeal(r.processors())
}

func (r *Renderer) efficiency(pb *panelBuilder) error {
	fs := r.cfg.SelectedMeasurement().SequentialFraction

	amdahl := model.Evaluate(model.Amdahl, fs, r.cfg.Processors)
	if err := pb.addCurve("Amdahl Efficiency", amdahl.Processors(), amdahl.Efficiencies(), false, thickLine); err != nil {
		return err
	}
	gustafson := model.Evaluate(model.Gustafson, fs, r.cfg.Processors)
	if err := pb.addCurve("Gustafson Efficiency", gustafson.Processors(), gustafson.Efficiencies(), true, thickLine); err != nil {
		return err
	}

	xs := r.processors()
	pb.yValues = append(pb.yValues, 100)
	pb.plot.Legend.Top = false

	return pb.addHorizontal("100% Efficiency", 100, xs[0], xs[len(xs)-1], referenceColor)
}

func (r *Renderer) references(pb *panelBuilder, refs []config.ReferenceCurve) error {
	for i, ref := range refs {
		curve := model.Evaluate(model.Amdahl, ref.SequentialFraction, r.cfg.Processors)
		if err := pb.addCurve(ref.Label, curve.Processors(), curve.Speedups(), i%2 == 1, thickLine); err != nil {
			return err
		}
	}

	return pb.addLinearIdeal(r.processors())
}

func (r *Renderer) fractionSweep(pb *panelBuilder, fractions []float64) error {
	for _, fs := range fractions {
		curve := model.Evaluate(model.Amdahl, fs, r.cfg.Processors)
		if err := pb.addCurve(fmt.Sprintf("fs=%.4f", fs), curve.Processors(), curve.Speedups(), false, thinLine); err != nil {
			return err
		}
	}

	return pb.addLinearIdeal(r.processors())
}

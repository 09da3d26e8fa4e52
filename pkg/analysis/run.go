package analysis

import (
	"fmt"
	"io"

	"github.com/eth-easl/speedup/pkg/chart"
	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"
	"github.com/eth-easl/speedup/pkg/metric"
	"github.com/eth-easl/speedup/pkg/model"
	"github.com/eth-easl/speedup/pkg/report"

	log "github.com/sirupsen/logrus"
)

// Run renders every figure of the study, prints the report to out and, if configured,
// exports the evaluated points as CSV.
func Run(cfg config.AnalysisConfiguration, out io.Writer) error {
	log.Debugf("Running analysis %s over problem sizes %v (fs %v) and processors %v",
		cfg.Name, cfg.Measurements.Sizes(), cfg.Measurements.Fractions(), cfg.Processors)
	logMeasurements(cfg.Measurements)

	renderer, err := chart.NewRenderer(cfg)
	if err != nil {
		return err
	}
	printer := report.NewPrinter(out, cfg)

	for _, figure := range cfg.Figures {
		if err := renderer.RenderFigure(figure); err != nil {
			return fmt.Errorf("rendering %s: %w", figure.OutputPath, err)
		}
		if err := printer.PrintFigureSaved(figure.OutputPath); err != nil {
			return err
		}
	}

	if err := printer.PrintReport(); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}

	if cfg.WithCSVExport() {
		exporter := metric.NewExporter()
		for _, m := range cfg.Measurements {
			exporter.Report(metric.RecordsFor(cfg.Name, m, cfg.Processors)...)
		}
		if err := exporter.FinishAndSave(cfg.CSVPath); err != nil {
			return err
		}
	}

	return nil
}

func logMeasurements(table common.MeasurementTable) {
	for _, m := range table {
		log.WithFields(log.Fields{
			"problem_size": m.ProblemSize,
			"fs":           m.SequentialFraction,
			"max_speedup":  model.MaxSpeedup(m.SequentialFraction),
		}).Debug("Measurement")
	}
}

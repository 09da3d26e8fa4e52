package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"
	"github.com/eth-easl/speedup/pkg/metric"
	"github.com/eth-easl/speedup/pkg/model"
)

// Printer writes the console report of one analysis configuration.
type Printer struct {
	w   io.Writer
	cfg config.AnalysisConfiguration
}

func NewPrinter(w io.Writer, cfg config.AnalysisConfiguration) *Printer {
	return &Printer{
		w:   w,
		cfg: cfg,
	}
}

func (p *Printer) PrintFigureSaved(path string) error {
	_, err := fmt.Fprintf(p.w, "Plot saved as %s\n", path)
	return err
}

// PrintReport the study banner, one table per measurement and the narrative sections.
func (p *Printer) PrintReport() error {
	var buf bytes.Buffer

	rule := strings.Repeat("=", p.cfg.RuleWidth)
	fmt.Fprintf(&buf, "\n%s\n%s\n%s\n", rule, p.cfg.Title, rule)

	for _, m := range p.cfg.Measurements {
		p.writeMeasurement(&buf, m)
	}

	if err := p.writeNarrative(&buf); err != nil {
		return err
	}

	_, err := buf.WriteTo(p.w)
	return err
}

func (p *Printer) writeMeasurement(buf *bytes.Buffer, m common.Measurement) {
	fs := m.SequentialFraction

	fmt.Fprintf(buf, "\n%s\n", common.ReportHeading(p.cfg.ProblemKind, m.ProblemSize))
	fmt.Fprintf(buf, "Sequential fraction fs = %.*f (%.*f%%)\n",
		p.cfg.ReportFractionDigits, fs, p.cfg.ReportPercentDigits, fs*100)
	fmt.Fprintf(buf, "Maximum theoretical speedup (Amdahl) = %s\n", formatMaxSpeedup(fs))

	fmt.Fprintf(buf, "\n%-*s %-*s %-*s %-*s %-*s\n",
		common.ProcessorColumnWidth, "p",
		common.ValueColumnWidth, "Amdahl S(p)",
		common.ValueColumnWidth, "Amdahl Eff%",
		common.ValueColumnWidth, "Gustafson S(p)",
		common.ValueColumnWidth, "Gustafson Eff%")
	fmt.Fprintln(buf, strings.Repeat("-", p.cfg.RuleWidth))

	for _, record := range metric.RecordsFor(p.cfg.Name, m, p.cfg.Processors) {
		fmt.Fprintln(buf, FormatRow(record))
	}
}

// FormatRow one line of a measurement table.
func FormatRow(record metric.SpeedupRecord) string {
	return fmt.Sprintf("%-*d %-*.3f %-*.2f %-*.3f %-*.2f",
		common.ProcessorColumnWidth, record.Processors,
		common.ValueColumnWidth, record.AmdahlSpeedup,
		common.ValueColumnWidth, record.AmdahlEfficiency,
		common.ValueColumnWidth, record.GustafsonSpeedup,
		common.ValueColumnWidth, record.GustafsonEfficiency)
}

func formatMaxSpeedup(fs float64) string {
	if fs == 0 {
		return "Infinite (perfectly parallelizable)"
	}

	return fmt.Sprintf("%.2f", model.MaxSpeedup(fs))
}

package config

import (
	"github.com/eth-easl/speedup/pkg/common"
)

// AnalysisConfiguration describes one study: its measurements, the processor counts they
// are evaluated over, the figures to render and the console report.
type AnalysisConfiguration struct {
	Name        string             `json:"Name"`
	Title       string             `json:"Title"`
	ProblemKind common.ProblemKind `json:"ProblemKind"`

	Measurements        common.MeasurementTable `json:"Measurements"`
	Processors          []int                   `json:"Processors"`
	SelectedProblemSize int                     `json:"SelectedProblemSize"`

	ChartFractionDigits  int `json:"ChartFractionDigits"`
	ReportFractionDigits int `json:"ReportFractionDigits"`
	ReportPercentDigits  int `json:"ReportPercentDigits"`
	RuleWidth            int `json:"RuleWidth"`

	Figures   []FigureConfiguration `json:"Figures"`
	Narrative []NarrativeSection    `json:"Narrative"`

	// Optional
	CSVPath string `json:"CSVPath"`
}

type FigureConfiguration struct {
	OutputPath   string               `json:"OutputPath"`
	WidthInches  float64              `json:"WidthInches"`
	HeightInches float64              `json:"HeightInches"`
	DPI          int                  `json:"DPI"`
	Panels       []PanelConfiguration `json:"Panels"`
}

type PanelConfiguration struct {
	Kind  common.PanelKind `json:"Kind"`
	Title string           `json:"Title"`

	// Optional
	YMax           float64          `json:"YMax"`
	ShowAsymptotes bool             `json:"ShowAsymptotes"`
	References     []ReferenceCurve `json:"References"`
	Fractions      []float64        `json:"Fractions"`
}

// ReferenceCurve a labelled sequential fraction that is not part of the measurement table.
type ReferenceCurve struct {
	Label              string  `json:"Label"`
	SequentialFraction float64 `json:"SequentialFraction"`
}

// NarrativeSection lines are text/template strings executed against the selected measurement.
type NarrativeSection struct {
	Heading string   `json:"Heading"`
	Lines   []string `json:"Lines"`
}

func (c *AnalysisConfiguration) SelectedMeasurement() common.Measurement {
	m, ok := c.Measurements.Lookup(c.SelectedProblemSize)
	if !ok {
		return c.Measurements[len(c.Measurements)-1]
	}

	return m
}

func (c *AnalysisConfiguration) WithCSVExport() bool {
	return c.CSVPath != ""
}

package study

import (
	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"
)

// VectorOperations add_noise carries a data dependency and stays sequential, so fs does
// not shrink with N.
func VectorOperations() config.AnalysisConfiguration {
	return config.AnalysisConfiguration{
		Name:        VectorOperationsName,
		Title:       "EXERCISE 3: AMDAHL'S AND GUSTAFSON'S LAW ANALYSIS",
		ProblemKind: common.VectorProblem,
		Measurements: common.MeasurementTable{
			{ProblemSize: 5_000_000, SequentialFraction: 0.276},
			{ProblemSize: 10_000_000, SequentialFraction: 0.276},
			{ProblemSize: 100_000_000, SequentialFraction: 0.277},
		},
		Processors:           processors(),
		SelectedProblemSize:  100_000_000,
		ChartFractionDigits:  3,
		ReportFractionDigits: 4,
		ReportPercentDigits:  2,
		RuleWidth:            70,
		Figures: []config.FigureConfiguration{
			{
				OutputPath:   "ex3_analysis.png",
				WidthInches:  common.DefaultFigureWidthInches,
				HeightInches: common.DefaultFigureHeightInches,
				DPI:          common.DefaultFigureDPI,
				Panels: []config.PanelConfiguration{
					{Kind: common.AmdahlPanel, Title: "Amdahl's Law: Strong Scaling", ShowAsymptotes: true},
					{Kind: common.GustafsonPanel, Title: "Gustafson's Law: Weak Scaling"},
					{Kind: common.ComparisonPanel, Title: "Amdahl vs Gustafson (N=100M, fs=0.277)"},
					{Kind: common.EfficiencyPanel, Title: "Parallel Efficiency (N=100M, fs=0.277)"},
				},
			},
		},
		Narrative: []config.NarrativeSection{
			{
				Heading: "KEY OBSERVATIONS:",
				Lines: []string{
					"1. Amdahl's Law (Strong Scaling):",
					"   - Speedup saturates as p increases",
					"   - Maximum speedup limited by sequential fraction: ~{{printf \"%.2f\" .MaxSpeedup}}x",
					"   - Efficiency decreases rapidly with more processors",
					"",
					"2. Gustafson's Law (Weak Scaling):",
					"   - Speedup scales nearly linearly with p",
					"   - Assumes problem size grows with number of processors",
					"   - Better scalability for larger problems",
					"",
					"3. The sequential part (add_noise) limits strong scaling",
					"   - add_noise is inherently sequential (data dependency)",
					"   - Other parts (init_b, compute_addition, reduction) are parallelizable",
				},
			},
		},
	}
}

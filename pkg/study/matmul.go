package study

import (
	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"
)

// VectorOperationsFraction fs of the vector benchmark at N=100M, used as the reference
// curve when the two benchmarks are compared.
const VectorOperationsFraction = 0.277

// MatrixMultiplication generate_noise is O(N) while the product is O(N^3), so fs falls as
// N grows.
func MatrixMultiplication() config.AnalysisConfiguration {
	amdahl := config.PanelConfiguration{
		Kind:           common.AmdahlPanel,
		Title:          "Amdahl's Law: Matrix Multiplication Strong Scaling",
		YMax:           70,
		ShowAsymptotes: true,
	}
	gustafson := config.PanelConfiguration{
		Kind:  common.GustafsonPanel,
		Title: "Gustafson's Law: Matrix Multiplication Weak Scaling",
	}

	return config.AnalysisConfiguration{
		Name:        MatrixMultiplicationName,
		Title:       "EXERCISE 4: MATRIX MULTIPLICATION - AMDAHL'S AND GUSTAFSON'S LAW ANALYSIS",
		ProblemKind: common.MatrixProblem,
		Measurements: common.MeasurementTable{
			{ProblemSize: 256, SequentialFraction: 0.000172},  // 5us / 29ms
			{ProblemSize: 512, SequentialFraction: 0.000009},  // 2us / 223ms
			{ProblemSize: 1024, SequentialFraction: 0.000001}, // 3us / 5635ms
		},
		Processors:           processors(),
		SelectedProblemSize:  512,
		ChartFractionDigits:  5,
		ReportFractionDigits: 6,
		ReportPercentDigits:  4,
		RuleWidth:            80,
		Figures: []config.FigureConfiguration{
			{
				OutputPath:   "ex4_analysis.png",
				WidthInches:  common.DefaultFigureWidthInches,
				HeightInches: common.DefaultFigureHeightInches,
				DPI:          common.DefaultFigureDPI,
				Panels: []config.PanelConfiguration{
					amdahl,
					gustafson,
					{Kind: common.ComparisonPanel, Title: "Amdahl vs Gustafson (N=512, fs=0.00001)"},
					{Kind: common.EfficiencyPanel, Title: "Parallel Efficiency (N=512, fs=0.00001)"},
				},
			},
			{
				OutputPath:   "ex4_context.png",
				WidthInches:  common.DefaultFigureWidthInches,
				HeightInches: common.DefaultFigureHeightInches,
				DPI:          common.DefaultFigureDPI,
				Panels: []config.PanelConfiguration{
					amdahl,
					gustafson,
					{
						Kind:  common.CrossStudyPanel,
						Title: "Amdahl's Law: Exercise 3 vs Exercise 4",
						References: []config.ReferenceCurve{
							{Label: "Ex3: Vector ops (fs=0.277)", SequentialFraction: VectorOperationsFraction},
							{Label: "Ex4: MatMul (fs=0.00001)", SequentialFraction: 0.000009},
						},
					},
					{
						Kind:      common.FractionSweepPanel,
						Title:     "Impact of Sequential Fraction on Speedup",
						Fractions: []float64{0.5, 0.25, 0.1, 0.05, 0.01, 0.001, 0.0001},
					},
				},
			},
		},
		Narrative: []config.NarrativeSection{
			{
				Heading: "COMPARISON: EXERCISE 3 vs EXERCISE 4",
				Lines: []string{
					"",
					"Exercise 3 (Vector Operations):",
					"  - Sequential fraction: fs ≈ 27.7%",
					"  - Sequential part: add_noise() - O(N) with data dependency",
					"  - Parallel part: init, addition, reduction - O(N)",
					"  - Max speedup: ~3.6x (limited by sequential part)",
					"  - Problem: Sequential fraction does NOT decrease with N",
					"",
					"Exercise 4 (Matrix Multiplication):",
					"  - Sequential fraction: fs < 0.1% (for N=512)",
					"  - Sequential part: generate_noise() - O(N)",
					"  - Parallel part: matrix multiplication - O(N³)",
					"  - Max speedup: Nearly linear (hundreds to thousands)",
					"  - Problem: Sequential fraction DECREASES as N increases",
				},
			},
			{
				Heading: "KEY OBSERVATIONS:",
				Lines: []string{
					"1. Matrix Multiplication is Highly Parallelizable:",
					"   - Sequential overhead (generate_noise) is O(N)",
					"   - Computational work (matmul) is O(N³)",
					"   - As N increases, fs → 0, speedup → p (linear)",
					"",
					"2. Comparison with Exercise 3:",
					"   - Ex3: Sequential and parallel parts both O(N) → fs constant",
					"   - Ex4: Sequential O(N), parallel O(N³) → fs decreases with N",
					"   - Ex4 has MUCH better scalability!",
					"",
					"3. Practical Implications:",
					"   - Ex4 benefits greatly from parallelization",
					"   - Even with 64 cores, can achieve near-linear speedup",
					"   - Larger matrices → better parallel efficiency",
					"   - This is why HPC systems excel at matrix operations!",
					"",
					"4. Gustafson's Law:",
					"   - Both exercises scale well under Gustafson's model",
					"   - Weak scaling: increase problem size with processors",
					"   - More realistic for many real-world applications",
				},
			},
		},
	}
}

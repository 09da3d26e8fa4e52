package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"
	"github.com/eth-easl/speedup/pkg/metric"
	"github.com/eth-easl/speedup/pkg/study"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRow(t *testing.T) {
	tests := []struct {
		fs       float64
		p        int
		expected string
	}{
		{fs: 0.276, p: 1, expected: "1        1.000           100.00          1.000           100.00         "},
		{fs: 0.276, p: 64, expected: "64       3.481           5.44            46.612          72.83          "},
		{fs: 0.277, p: 64, expected: "64       3.469           5.42            46.549          72.73          "},
		{fs: 0.000009, p: 64, expected: "64       63.964          99.94           63.999          100.00         "},
	}

	for _, test := range tests {
		record := metric.NewSpeedupRecord("test", common.Measurement{ProblemSize: 1, SequentialFraction: test.fs}, test.p)
		assert.Equal(t, test.expected, FormatRow(record))
	}
}

func TestVectorOperationsReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, study.VectorOperations())

	require.NoError(t, printer.PrintFigureSaved("ex3_analysis.png"))
	require.NoError(t, printer.PrintReport())

	out := buf.String()
	lines := strings.Split(out, "\n")
	rule := strings.Repeat("=", 70)

	assert.Equal(t, "Plot saved as ex3_analysis.png", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, rule, lines[2])
	assert.Equal(t, "EXERCISE 3: AMDAHL'S AND GUSTAFSON'S LAW ANALYSIS", lines[3])
	assert.Equal(t, rule, lines[4])
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "N = 5,000,000", lines[6])
	assert.Equal(t, "Sequential fraction fs = 0.2760 (27.60%)", lines[7])
	assert.Equal(t, "Maximum theoretical speedup (Amdahl) = 3.62", lines[8])
	assert.Equal(t, "", lines[9])
	assert.Equal(t, "p        Amdahl S(p)     Amdahl Eff%     Gustafson S(p)  Gustafson Eff% ", lines[10])
	assert.Equal(t, strings.Repeat("-", 70), lines[11])
	assert.Equal(t, "1        1.000           100.00          1.000           100.00         ", lines[12])

	assert.Contains(t, out, "\nN = 10,000,000\n")
	assert.Contains(t, out, "\nN = 100,000,000\nSequential fraction fs = 0.2770 (27.70%)\nMaximum theoretical speedup (Amdahl) = 3.61\n")
	assert.Contains(t, out, "\n64       3.469           5.42            46.549          72.73          \n")

	assert.Contains(t, out, "\n\n"+rule+"\nKEY OBSERVATIONS:\n"+rule+"\n1. Amdahl's Law (Strong Scaling):\n")
	assert.Contains(t, out, "   - Maximum speedup limited by sequential fraction: ~3.61x\n")
	assert.True(t, strings.HasSuffix(out, "   - Other parts (init_b, compute_addition, reduction) are parallelizable\n"+rule+"\n"))

	assert.Equal(t, 3, strings.Count(out, "\n64       "))
}

func TestMatrixMultiplicationReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, study.MatrixMultiplication()).PrintReport())

	out := buf.String()
	rule := strings.Repeat("=", 80)

	assert.True(t, strings.HasPrefix(out, "\n"+rule+"\nEXERCISE 4: MATRIX MULTIPLICATION - AMDAHL'S AND GUSTAFSON'S LAW ANALYSIS\n"+rule+"\n"))
	assert.Contains(t, out, "\nMatrix Size N = 256x256\nSequential fraction fs = 0.000172 (0.0172%)\nMaximum theoretical speedup (Amdahl) = 5813.95\n")
	assert.Contains(t, out, "\nMatrix Size N = 1024x1024\nSequential fraction fs = 0.000001 (0.0001%)\nMaximum theoretical speedup (Amdahl) = 1000000.00\n")
	assert.Contains(t, out, "\n"+strings.Repeat("-", 80)+"\n")
	assert.Contains(t, out, rule+"\nCOMPARISON: EXERCISE 3 vs EXERCISE 4\n"+rule+"\n\nExercise 3 (Vector Operations):\n")
	assert.Contains(t, out, "  - Parallel part: matrix multiplication - O(N³)\n")
	assert.Contains(t, out, rule+"\nKEY OBSERVATIONS:\n"+rule+"\n1. Matrix Multiplication is Highly Parallelizable:\n")
	assert.True(t, strings.HasSuffix(out, "   - More realistic for many real-world applications\n"+rule+"\n"))
}

func TestFullyParallelMeasurement(t *testing.T) {
	cfg := config.AnalysisConfiguration{
		Name:         "ideal",
		Title:        "IDEAL",
		ProblemKind:  common.MatrixProblem,
		Measurements: common.MeasurementTable{{ProblemSize: 64, SequentialFraction: 0}},
		Processors:   []int{1, 2},
		RuleWidth:    10,
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, cfg).PrintReport())

	out := buf.String()
	assert.Contains(t, out, "Maximum theoretical speedup (Amdahl) = Infinite (perfectly parallelizable)\n")
	assert.Contains(t, out, "\n2        2.000           100.00          2.000           100.00         \n")
	assert.True(t, strings.HasSuffix(out, strings.Repeat("-", 10)+"\n"+
		"1        1.000           100.00          1.000           100.00         \n"+
		"2        2.000           100.00          2.000           100.00         \n"))
}

func TestNarrativeTemplateError(t *testing.T) {
	cfg := study.VectorOperations()
	cfg.Narrative = []config.NarrativeSection{{Heading: "BROKEN", Lines: []string{"{{.Missing"}}}

	var buf bytes.Buffer
	assert.Error(t, NewPrinter(&buf, cfg).PrintReport())
	assert.Zero(t, buf.Len())
}

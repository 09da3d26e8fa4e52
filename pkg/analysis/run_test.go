package analysis

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eth-easl/speedup/pkg/config"
	"github.com/eth-easl/speedup/pkg/metric"
	"github.com/eth-easl/speedup/pkg/study"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intoDir(cfg config.AnalysisConfiguration, dir string) config.AnalysisConfiguration {
	figures := make([]config.FigureConfiguration, len(cfg.Figures))
	for i, figure := range cfg.Figures {
		figure.OutputPath = filepath.Join(dir, figure.OutputPath)
		figure.DPI = 30
		figures[i] = figure
	}
	cfg.Figures = figures
	return cfg
}

func TestRunMatrixMultiplication(t *testing.T) {
	dir := t.TempDir()
	cfg := intoDir(study.MatrixMultiplication(), dir)
	cfg.CSVPath = filepath.Join(dir, "ex4.csv")

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out))

	for _, name := range []string{"ex4_analysis.png", "ex4_context.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Contains(t, out.String(), "Plot saved as "+filepath.Join(dir, name)+"\n")
	}
	assert.Contains(t, out.String(), "Matrix Size N = 512x512")

	f, err := os.Open(cfg.CSVPath)
	require.NoError(t, err)
	defer f.Close()

	var records []metric.SpeedupRecord
	require.NoError(t, gocsv.UnmarshalFile(f, &records))
	require.Len(t, records, 3*7)
	assert.Equal(t, 256, records[0].ProblemSize)
	assert.Equal(t, 1024, records[len(records)-1].ProblemSize)
	assert.Equal(t, 64, records[len(records)-1].Processors)
	for _, record := range records {
		assert.Equal(t, records[0].RunID, record.RunID)
	}
}

func TestRunVectorOperationsWithoutExport(t *testing.T) {
	dir := t.TempDir()
	cfg := intoDir(study.VectorOperations(), dir)

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out))

	assert.True(t, strings.HasPrefix(out.String(), "Plot saved as "+filepath.Join(dir, "ex3_analysis.png")+"\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunFailsOnUnwritableFigure(t *testing.T) {
	cfg := intoDir(study.VectorOperations(), filepath.Join(t.TempDir(), "missing"))

	var out bytes.Buffer
	assert.Error(t, Run(cfg, &out))
	assert.Zero(t, out.Len())
}

package study

import (
	"os"
	"strings"
	"testing"

	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathToCmd() string {
	wd, _ := os.Getwd()
	if strings.HasSuffix(wd, "pkg/study") {
		return "../../cmd/"
	}
	return "cmd/"
}

func TestShippedConfigurationsMatchPresets(t *testing.T) {
	tests := []struct {
		file   string
		preset config.AnalysisConfiguration
	}{
		{file: "config_vector.json", preset: VectorOperations()},
		{file: "config_matmul.json", preset: MatrixMultiplication()},
	}

	for _, test := range tests {
		t.Run(test.file, func(t *testing.T) {
			loaded := config.ReadConfigurationFile(pathToCmd() + test.file)
			assert.Equal(t, test.preset, loaded)
		})
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, preset := range []config.AnalysisConfiguration{VectorOperations(), MatrixMultiplication()} {
		config.CheckAnalysisConfiguration(preset)
	}
}

func TestMeasuredFractions(t *testing.T) {
	vector := VectorOperations()
	assert.Equal(t, common.MeasurementTable{
		{ProblemSize: 5_000_000, SequentialFraction: 0.276},
		{ProblemSize: 10_000_000, SequentialFraction: 0.276},
		{ProblemSize: 100_000_000, SequentialFraction: 0.277},
	}, vector.Measurements)
	assert.Equal(t, 0.277, vector.SelectedMeasurement().SequentialFraction)

	matmul := MatrixMultiplication()
	assert.Equal(t, []int{256, 512, 1024}, matmul.Measurements.Sizes())
	assert.Equal(t, 0.000009, matmul.SelectedMeasurement().SequentialFraction)

	// fs shrinks with N for the matrix product
	fractions := matmul.Measurements.Fractions()
	for i := 1; i < len(fractions); i++ {
		assert.Less(t, fractions[i], fractions[i-1])
	}
}

func TestByName(t *testing.T) {
	cfg, ok := ByName(VectorOperationsName)
	require.True(t, ok)
	assert.Equal(t, "ex3_analysis.png", cfg.Figures[0].OutputPath)

	cfg, ok = ByName(MatrixMultiplicationName)
	require.True(t, ok)
	require.Len(t, cfg.Figures, 2)
	assert.Equal(t, "ex4_context.png", cfg.Figures[1].OutputPath)

	_, ok = ByName("ex5")
	assert.False(t, ok)
}

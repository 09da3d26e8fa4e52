// Package study holds the measured sequential fractions of the two benchmarks and the
// figures and commentary that go with them. The fractions are hand-measured constants
// and are reproduced here verbatim.
package study

import (
	"github.com/eth-easl/speedup/pkg/config"
)

const (
	VectorOperationsName     = "ex3"
	MatrixMultiplicationName = "ex4"
)

// ByName returns the built-in study, or false if there is none with that name.
func ByName(name string) (config.AnalysisConfiguration, bool) {
	switch name {
	case VectorOperationsName:
		return VectorOperations(), true
	case MatrixMultiplicationName:
		return MatrixMultiplication(), true
	default:
		return config.AnalysisConfiguration{}, false
	}
}

func processors() []int {
	return []int{1, 2, 4, 8, 16, 32, 64}
}

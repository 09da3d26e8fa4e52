/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package common

// DefaultProcessorCounts processor counts every study is evaluated over.
var DefaultProcessorCounts = []int{1, 2, 4, 8, 16, 32, 64}

type ProblemKind string

const (
	// VectorProblem N is a vector length, printed with digit grouping.
	VectorProblem ProblemKind = "vector"
	// MatrixProblem N is the dimension of an NxN matrix.
	MatrixProblem ProblemKind = "matrix"
)

var ValidProblemKinds = []ProblemKind{VectorProblem, MatrixProblem}

type PanelKind string

const (
	AmdahlPanel        PanelKind = "amdahl"
	GustafsonPanel     PanelKind = "gustafson"
	ComparisonPanel    PanelKind = "comparison"
	EfficiencyPanel    PanelKind = "efficiency"
	CrossStudyPanel    PanelKind = "cross-study"
	FractionSweepPanel PanelKind = "fraction-sweep"
)

var ValidPanelKinds = []PanelKind{
	AmdahlPanel,
	GustafsonPanel,
	ComparisonPanel,
	EfficiencyPanel,
	CrossStudyPanel,
	FractionSweepPanel,
}

const (
	// FigureRows and FigureCols the layout of every rendered figure
	FigureRows = 2
	FigureCols = 2

	DefaultFigureWidthInches  = 14
	DefaultFigureHeightInches = 10
	DefaultFigureDPI          = 300
)

// Column widths of the report tables.
const (
	ProcessorColumnWidth = 8
	ValueColumnWidth     = 15
)

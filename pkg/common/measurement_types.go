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

// Measurement associates a problem size with the sequential fraction observed for it.
type Measurement struct {
	ProblemSize        int     `json:"ProblemSize"`
	SequentialFraction float64 `json:"SequentialFraction"`
}

// MeasurementTable keeps measurements in the order they were declared.
type MeasurementTable []Measurement

func (mt MeasurementTable) Lookup(problemSize int) (Measurement, bool) {
	for _, m := range mt {
		if m.ProblemSize == problemSize {
			return m, true
		}
	}

	return Measurement{}, false
}

func (mt MeasurementTable) Sizes() []int {
	sizes := make([]int, len(mt))
	for i, m := range mt {
		sizes[i] = m.ProblemSize
	}

	return sizes
}

func (mt MeasurementTable) Fractions() []float64 {
	fractions := make([]float64, len(mt))
	for i, m := range mt {
		fractions[i] = m.SequentialFraction
	}

	return fractions
}

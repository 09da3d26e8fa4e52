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

package model

import "math"

type Law int

const (
	Amdahl Law = iota
	Gustafson
)

func (l Law) String() string {
	switch l {
	case Amdahl:
		return "Amdahl"
	case Gustafson:
		return "Gustafson"
	default:
		return "Unknown"
	}
}

// Speedup dispatches to the closed-form formula of the law.
func (l Law) Speedup(fs float64, p int) float64 {
	if l == Gustafson {
		return GustafsonSpeedup(fs, p)
	}

	return AmdahlSpeedup(fs, p)
}

// AmdahlSpeedup is the strong-scaling bound S(p) = 1 / (fs + (1-fs)/p).
func AmdahlSpeedup(fs float64, p int) float64 {
	return 1.0 / (fs + (1-fs)/float64(p))
}

// GustafsonSpeedup is the weak-scaling speedup S(p) = fs + p*(1-fs).
func GustafsonSpeedup(fs float64, p int) float64 {
	return fs + float64(p)*(1-fs)
}

// Efficiency in percent.
func Efficiency(speedup float64, p int) float64 {
	return speedup / float64(p) * 100
}

// MaxSpeedup is the Amdahl asymptote 1/fs, +Inf for a fully parallel workload.
func MaxSpeedup(fs float64) float64 {
	if fs == 0 {
		return math.Inf(1)
	}

	return 1.0 / fs
}

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

type Point struct {
	Processors int
	Speedup    float64
}

// Curve holds the points of one law for one sequential fraction, in processor order.
type Curve struct {
	Law      Law
	Fraction float64
	Points   []Point
}

func Evaluate(law Law, fs float64, processors []int) Curve {
	points := make([]Point, len(processors))
	for i, p := range processors {
		points[i] = Point{
			Processors: p,
			Speedup:    law.Speedup(fs, p),
		}
	}

	return Curve{
		Law:      law,
		Fraction: fs,
		Points:   points,
	}
}

func (c Curve) Processors() []float64 {
	xs := make([]float64, len(c.Points))
	for i, pt := range c.Points {
		xs[i] = float64(pt.Processors)
	}

	return xs
}

func (c Curve) Speedups() []float64 {
	ys := make([]float64, len(c.Points))
	for i, pt := range c.Points {
		ys[i] = pt.Speedup
	}

	return ys
}

func (c Curve) Efficiencies() []float64 {
	ys := make([]float64, len(c.Points))
	for i, pt := range c.Points {
		ys[i] = Efficiency(pt.Speedup, pt.Processors)
	}

	return ys
}

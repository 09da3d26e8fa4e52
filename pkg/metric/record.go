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

package metric

import (
	"github.com/eth-easl/speedup/pkg/common"
	"github.com/eth-easl/speedup/pkg/model"
)

// SpeedupRecord both laws evaluated for one measurement at one processor count.
type SpeedupRecord struct {
	RunID               string  `csv:"run_id"`
	Study               string  `csv:"study"`
	ProblemSize         int     `csv:"problem_size"`
	SequentialFraction  float64 `csv:"sequential_fraction"`
	Processors          int     `csv:"processors"`
	AmdahlSpeedup       float64 `csv:"amdahl_speedup"`
	AmdahlEfficiency    float64 `csv:"amdahl_efficiency_pct"`
	GustafsonSpeedup    float64 `csv:"gustafson_speedup"`
	GustafsonEfficiency float64 `csv:"gustafson_efficiency_pct"`
}

func NewSpeedupRecord(study string, m common.Measurement, p int) SpeedupRecord {
	amdahl := model.AmdahlSpeedup(m.SequentialFraction, p)
	gustafson := model.GustafsonSpeedup(m.SequentialFraction, p)

	return SpeedupRecord{
		Study:               study,
		ProblemSize:         m.ProblemSize,
		SequentialFraction:  m.SequentialFraction,
		Processors:          p,
		AmdahlSpeedup:       amdahl,
		AmdahlEfficiency:    model.Efficiency(amdahl, p),
		GustafsonSpeedup:    gustafson,
		GustafsonEfficiency: model.Efficiency(gustafson, p),
	}
}

func RecordsFor(study string, m common.Measurement, processors []int) []SpeedupRecord {
	records := make([]SpeedupRecord, len(processors))
	for i, p := range processors {
		records[i] = NewSpeedupRecord(study, m, p)
	}

	return records
}

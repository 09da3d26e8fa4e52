package common

import (
	"os"
	"slices"

	log "github.com/sirupsen/logrus"
)

func CheckPath(path string) {
	if path == "" {
		return
	}
	_, err := os.Stat(path)
	if err != nil {
		log.Fatal(err)
	}
}

func CheckSequentialFraction(fs float64) {
	if fs < 0 || fs > 1 {
		log.Fatal("Sequential fraction must be within [0, 1], got ", fs)
	}
}

func CheckProcessorCounts(processors []int) {
	if len(processors) == 0 {
		log.Fatal("No processor counts given")
	}
	for i, p := range processors {
		if p < 1 {
			log.Fatal("Invalid processor count ", p)
		}
		if i > 0 && p <= processors[i-1] {
			log.Fatal("Processor counts must be strictly increasing, got ", processors)
		}
	}
}

func CheckMeasurementTable(table MeasurementTable) {
	if len(table) == 0 {
		log.Fatal("Measurement table is empty")
	}
	seen := make(map[int]bool, len(table))
	for _, m := range table {
		if seen[m.ProblemSize] {
			log.Fatal("Duplicate problem size ", m.ProblemSize, " in measurement table")
		}
		seen[m.ProblemSize] = true
		CheckSequentialFraction(m.SequentialFraction)
	}
}

func CheckProblemKind(kind ProblemKind) {
	if !slices.Contains(ValidProblemKinds, kind) {
		log.Fatal("Invalid problem kind ", kind)
	}
}

func CheckPanelKind(kind PanelKind) {
	if !slices.Contains(ValidPanelKinds, kind) {
		log.Fatal("Invalid panel kind ", kind)
	}
}

package common

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupingPrinter = message.NewPrinter(language.English)

// GroupDigits renders 100000000 as "100,000,000".
func GroupDigits(n int) string {
	return groupingPrinter.Sprintf("%d", n)
}

// ChartLabel is the problem size as shown in chart legends.
func ChartLabel(kind ProblemKind, size int) string {
	if kind == VectorProblem {
		return "N=" + GroupDigits(size)
	}

	return fmt.Sprintf("N=%d", size)
}

// ReportHeading is the problem size as shown above a report table.
func ReportHeading(kind ProblemKind, size int) string {
	if kind == MatrixProblem {
		return fmt.Sprintf("Matrix Size N = %dx%d", size, size)
	}

	return "N = " + GroupDigits(size)
}

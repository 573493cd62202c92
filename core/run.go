package core

import "strings"

// Run is a maximal substring of a field value that is either entirely decimal digits or entirely non-digit characters.
type Run struct {
	Text    string
	Numeric bool
}

// Runs is slice of Run.
type Runs []Run

// String returns the concatenation of all runs, which is the original field value.
func (runs Runs) String() string {
	var builder strings.Builder
	for _, run := range runs {
		builder.WriteString(run.Text)
	}
	return builder.String()
}

// SplitRuns splits the value at every point where a digit is adjacent to a non-digit.
// An empty value has no runs.
func SplitRuns(value string) Runs {
	runs := make(Runs, 0, 4)

	start := 0
	for i := 1; i <= len(value); i++ {
		if i < len(value) && isDigit(value[i]) == isDigit(value[start]) {
			continue
		}
		runs = append(runs, Run{Text: value[start:i], Numeric: isDigit(value[start])})
		start = i
	}
	return runs
}

// isDigit reports whether b is an ASCII decimal digit.
// Multi-byte UTF-8 sequences never contain bytes in this range, so scanning bytes is safe.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

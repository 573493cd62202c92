package core

import "strings"

// NullSentinel is the field value that is treated as null.
// It is always sorted before any other value, regardless of the Order.
const NullSentinel = "null"

// CompareFields returns -1 when a sorts before b, 1 when a sorts after b, and 0 when they are equal in natural order.
//
// Examples:
//
//	CompareFields("null", "")       // -1
//	CompareFields("a10", "a9")      //  1
//	CompareFields("a007", "a7")     //  0
func CompareFields(a, b string) int {
	return Comparator(ASC)(a, b)
}

// Comparator returns a function that compares two field values in the specified order.
// The order is applied to the run comparison only, null values stay at the top.
func Comparator(order Order) func(a, b string) int {
	return func(a, b string) int {
		aIsNull, bIsNull := a == NullSentinel, b == NullSentinel
		switch {
		case aIsNull && bIsNull:
			return 0
		case aIsNull:
			return -1
		case bIsNull:
			return 1
		}
		return order.Apply(CompareRuns(SplitRuns(a), SplitRuns(b)))
	}
}

// CompareRuns compares runs by position, and breaks ties by the number of runs.
func CompareRuns(a, b Runs) int {
	length := len(a)
	if len(b) < length {
		length = len(b)
	}

	for i := 0; i < length; i++ {
		if result := compareRun(a[i], b[i]); result != 0 {
			return result
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareRun(a, b Run) int {
	if a.Numeric && b.Numeric {
		return CompareNumeric(a.Text, b.Text)
	}
	return strings.Compare(a.Text, b.Text)
}

// CompareNumeric compares two strings of decimal digits by their integer value.
// It has no upper bound on the number of digits.
func CompareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

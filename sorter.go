package natorder

import (
	"slices"

	"github.com/soranoba/natorder/core"
)

// Row is an ordered sequence of string fields.
type Row []string

// Sorter sorts rows in natural order of a column.
// It holds no state other than its configuration, so it can be shared between goroutines.
type Sorter struct {
	Column int        `json:"column" query:"column"`
	Order  core.Order `json:"order"  query:"order"`
}

var defaultLocks = newLockTable()

// NewSorter returns a Sorter that sorts by the column in ascending order.
func NewSorter(column int) *Sorter {
	return &Sorter{
		Column: column,
		Order:  core.ASC,
	}
}

// Sort sorts rows by the column in ascending natural order.
// See Sorter.Sort.
func Sort(rows *[]Row, column int) error {
	return NewSorter(column).Sort(rows)
}

// Compare compares two field values in ascending natural order.
// See core.CompareFields.
func Compare(a, b string) int {
	return core.CompareFields(a, b)
}

// Validate returns an error when the values of Sorter is invalid.
func (sorter *Sorter) Validate() error {
	if sorter.Column < 0 {
		return &ValidationError{Field: "Column", Message: "must be greater than or equal to 0"}
	}
	if !sorter.Order.Validate() {
		return &ValidationError{Field: "Order", Message: "is invalid"}
	}
	return nil
}

// Compare compares the column of two rows.
// It panics if either row has no field at the column.
func (sorter *Sorter) Compare(a, b Row) int {
	return core.Comparator(sorter.Order)(a[sorter.Column], b[sorter.Column])
}

// Sort reorders rows in place, so that no row is greater than the next one.
// The sort is stable. Rows are not copied, only the order of the slice is changed.
//
// It returns an error wrapping ErrInvalidArgument when rows is nil, and an error wrapping ErrOutOfRange
// when any row has no field at the column. In both cases rows is not modified.
//
// Concurrent calls for collections sharing elements of one backing array are serialized.
func (sorter *Sorter) Sort(rows *[]Row) error {
	if rows == nil {
		return &ValidationError{Field: "Rows", Message: "must not be nil"}
	}
	if !sorter.Order.Validate() {
		return &ValidationError{Field: "Order", Message: "is invalid"}
	}
	if len(*rows) == 0 {
		return nil
	}

	unlock := defaultLocks.lock(*rows)
	defer unlock()

	for i, row := range *rows {
		if sorter.Column < 0 || sorter.Column >= len(row) {
			return &ColumnRangeError{Row: i, Column: sorter.Column, Width: len(row)}
		}
	}

	compare := core.Comparator(sorter.Order)
	slices.SortStableFunc(*rows, func(a, b Row) int {
		return compare(a[sorter.Column], b[sorter.Column])
	})
	return nil
}

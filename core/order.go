package core

import (
	"fmt"
	"strings"
)

// Order is the direction of the sort for non-null values.
type Order string

const (
	// ASC is ascending, with the smallest values first.
	ASC Order = "asc"
	// DESC is descending, with the greatest values first.
	DESC Order = "desc"
)

// ParseOrder returns an Order from the string, ignoring case.
// An empty string is ASC.
func ParseOrder(str string) (Order, error) {
	switch order := Order(strings.ToLower(str)); order {
	case "", ASC:
		return ASC, nil
	case DESC:
		return DESC, nil
	default:
		return "", fmt.Errorf("unsupported order: %q", str)
	}
}

// Validate returns true, if it is valid. Otherwise, it returns false.
func (order Order) Validate() bool {
	_, err := ParseOrder(string(order))
	return err == nil
}

// Apply returns the result of a comparison in the order.
func (order Order) Apply(result int) int {
	if strings.ToLower(string(order)) == string(DESC) {
		return -result
	}
	return result
}

// Reverse returns ASC for DESC, and DESC for ASC.
func (order Order) Reverse() Order {
	if strings.ToLower(string(order)) == string(DESC) {
		return ASC
	}
	return DESC
}

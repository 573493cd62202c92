package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/soranoba/natorder"
	"github.com/soranoba/natorder/core"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	flag.PrintDefaults()
}

func exit(msg string, e error) {
	if e != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", msg, e.Error())
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}

	flag.Usage()

	os.Exit(2)
}

func sampleRows() []natorder.Row {
	return []natorder.Row{
		{"1", "", "null", "553зерно29", "22"},
		{"2", "345", "т", "554зерно29", ""},
		{"3", "589", "т", "", "54"},
		{"4", "null", "т", "бананы", "null"},
		{"5", "345", "", "null", "89"},
		{"6", "345", "т", "554зерно28", ""},
		{"7", "345", "т", "553зерна29", ""},
	}
}

func writeRows(w io.Writer, rows []natorder.Row) {
	for _, row := range rows {
		fmt.Fprintf(w, "[%s]\n", strings.Join(row, ", "))
	}
}

func buildSorter(column int, orderStr string, reverse bool) (*natorder.Sorter, error) {
	order, err := core.ParseOrder(orderStr)
	if err != nil {
		return nil, err
	}
	if reverse {
		order = order.Reverse()
	}

	sorter := &natorder.Sorter{Column: column, Order: order}
	if err := sorter.Validate(); err != nil {
		return nil, err
	}
	return sorter, nil
}

func main() {
	options := struct {
		column  int
		order   string
		reverse bool
	}{}

	flag.IntVar(&options.column, "column", 3, "the zero-based column to sort by")
	flag.StringVar(&options.order, "order", string(core.ASC), "asc or desc")
	flag.BoolVar(&options.reverse, "reverse", false, "reverse the order")

	flag.Usage = usage
	flag.Parse()

	sorter, err := buildSorter(options.column, options.order, options.reverse)
	if err != nil {
		exit("invalid options", err)
	}

	rows := sampleRows()
	if err := sorter.Sort(&rows); err != nil {
		exit("unable to sort rows", err)
	}

	writeRows(os.Stdout, rows)
}

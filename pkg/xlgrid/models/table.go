package models

import (
	"fmt"
)

// Table is a dense, fixed-shape, row-major grid of values. It is the tabular
// source produced by the parsers and wrapped by a worksheet.
type Table struct {
	name  string
	rows  int
	cols  int
	cells []Value
}

// NewTable creates an empty table with the given shape.
func NewTable(name string, rows, cols int) *Table {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Table{
		name:  name,
		rows:  rows,
		cols:  cols,
		cells: make([]Value, rows*cols),
	}
}

// TableFromRows builds a table from ragged rows. The column count is the
// length of the longest row; short rows are padded with empty values.
func TableFromRows(name string, rows [][]Value) *Table {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	t := NewTable(name, len(rows), cols)
	for r, row := range rows {
		copy(t.cells[r*cols:], row)
	}
	return t
}

// Name returns the declared table name.
func (t *Table) Name() string { return t.name }

// Rows returns the row count.
func (t *Table) Rows() int { return t.rows }

// Cols returns the column count.
func (t *Table) Cols() int { return t.cols }

// Get returns the value at zero-based indices, or an empty value outside the
// table.
func (t *Table) Get(rowIndex, colIndex int) Value {
	if !t.inBounds(rowIndex, colIndex) {
		return Value{}
	}
	return t.cells[rowIndex*t.cols+colIndex]
}

// Set stores a value at zero-based indices.
func (t *Table) Set(rowIndex, colIndex int, v Value) error {
	if !t.inBounds(rowIndex, colIndex) {
		return fmt.Errorf("table %q: index (%d, %d) outside %dx%d", t.name, rowIndex, colIndex, t.rows, t.cols)
	}
	t.cells[rowIndex*t.cols+colIndex] = v
	return nil
}

func (t *Table) inBounds(rowIndex, colIndex int) bool {
	return rowIndex >= 0 && rowIndex < t.rows && colIndex >= 0 && colIndex < t.cols
}

package xlgrid

import (
	"strings"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// Cells is an ordered list of cells.
type Cells []*Cell

// InRow returns the cells with the given 1-based row number.
func (cs Cells) InRow(row int) Cells {
	return cs.filter(func(c *Cell) bool { return c.Row() == row })
}

// InColumn returns the cells with the given 1-based column number.
func (cs Cells) InColumn(col int) Cells {
	return cs.filter(func(c *Cell) bool { return c.Column() == col })
}

// InColumnLabel returns the cells whose column label matches, ignoring case.
func (cs Cells) InColumnLabel(label string) Cells {
	return cs.filter(func(c *Cell) bool { return strings.EqualFold(c.ColumnLabel(), label) })
}

// FirstInRow returns the first cell with the given row number.
func (cs Cells) FirstInRow(row int) (*Cell, bool) {
	return cs.first(func(c *Cell) bool { return c.Row() == row })
}

// FirstInColumn returns the first cell with the given column number.
func (cs Cells) FirstInColumn(col int) (*Cell, bool) {
	return cs.first(func(c *Cell) bool { return c.Column() == col })
}

// FirstInColumnLabel returns the first cell whose column label matches,
// ignoring case.
func (cs Cells) FirstInColumnLabel(label string) (*Cell, bool) {
	return cs.first(func(c *Cell) bool { return strings.EqualFold(c.ColumnLabel(), label) })
}

// Values returns the raw values in order.
func (cs Cells) Values() []models.Value {
	out := make([]models.Value, len(cs))
	for i, c := range cs {
		out[i] = c.value
	}
	return out
}

// Addresses returns the A1 addresses in order.
func (cs Cells) Addresses() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Address()
	}
	return out
}

func (cs Cells) filter(keep func(*Cell) bool) Cells {
	var out Cells
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (cs Cells) first(match func(*Cell) bool) (*Cell, bool) {
	for _, c := range cs {
		if match(c) {
			return c, true
		}
	}
	return nil, false
}

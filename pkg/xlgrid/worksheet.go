package xlgrid

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// Worksheet is one named grid. It exclusively owns its tabular source and is
// the only place bounds are checked and cells are materialized. Nothing is
// cached: every accessor reads the source at call time.
type Worksheet struct {
	id    uuid.UUID
	name  string
	table Table
	rows  int // fixed at construction
	cols  int // fixed at construction

	printAreas []address.Range
}

// NewWorksheet wraps a table, naming the sheet after the table.
func NewWorksheet(t Table) *Worksheet {
	return NewNamedWorksheet(t, t.Name())
}

// NewNamedWorksheet wraps a table under an explicit name.
func NewNamedWorksheet(t Table, name string) *Worksheet {
	return &Worksheet{
		id:    uuid.New(),
		name:  name,
		table: t,
		rows:  t.Rows(),
		cols:  t.Cols(),
	}
}

// ID returns the sheet's identity.
func (ws *Worksheet) ID() uuid.UUID { return ws.id }

// Name returns the sheet name.
func (ws *Worksheet) Name() string { return ws.name }

// RowCount returns the number of rows.
func (ws *Worksheet) RowCount() int { return ws.rows }

// ColumnCount returns the number of columns.
func (ws *Worksheet) ColumnCount() int { return ws.cols }

// Writable reports whether the sheet's source accepts writes.
func (ws *Worksheet) Writable() bool {
	_, ok := ws.table.(WritableTable)
	return ok
}

// Cell returns the cell at 1-based row and column numbers.
func (ws *Worksheet) Cell(row, col int) (*Cell, error) {
	return ws.cellAt(row-1, col-1)
}

// CellAt returns the cell at an A1 address.
func (ws *Worksheet) CellAt(addr string) (*Cell, error) {
	row, col, err := address.Parse(addr)
	if err != nil {
		return nil, err
	}
	return ws.Cell(row, col)
}

// Value returns the raw value at 1-based row and column numbers without
// building a Cell.
func (ws *Worksheet) Value(row, col int) (models.Value, error) {
	if err := ws.check(row-1, col-1); err != nil {
		return models.Value{}, err
	}
	return ws.table.Get(row-1, col-1), nil
}

// ValueAt returns the raw value at an A1 address.
func (ws *Worksheet) ValueAt(addr string) (models.Value, error) {
	row, col, err := address.Parse(addr)
	if err != nil {
		return models.Value{}, err
	}
	return ws.Value(row, col)
}

// Row returns every cell of a row in ascending column order.
func (ws *Worksheet) Row(row int) (Cells, error) {
	if row < 1 || row > ws.rows {
		return nil, &RangeError{Sheet: ws.name, Row: row, MaxRow: ws.rows, MaxCol: ws.cols, RowOnly: true}
	}
	return ws.rowCells(row - 1), nil
}

// Column returns every cell of a column in ascending row order.
func (ws *Worksheet) Column(col int) (Cells, error) {
	if col < 1 || col > ws.cols {
		return nil, &RangeError{Sheet: ws.name, Col: col, MaxRow: ws.rows, MaxCol: ws.cols, ColOnly: true}
	}
	return ws.colCells(col - 1), nil
}

// ColumnByLabel returns every cell of a labelled column, e.g. "B".
func (ws *Worksheet) ColumnByLabel(label string) (Cells, error) {
	col, err := address.ColumnNumber(label)
	if err != nil {
		return nil, err
	}
	return ws.Column(col)
}

// Cells returns every cell in row-major order: all of row 1, then row 2, ...
func (ws *Worksheet) Cells() Cells {
	out := make(Cells, 0, ws.rows*ws.cols)
	for r := 0; r < ws.rows; r++ {
		for c := 0; c < ws.cols; c++ {
			out = append(out, ws.build(r, c))
		}
	}
	return out
}

// Rows returns the cells grouped by row.
func (ws *Worksheet) Rows() []Cells {
	out := make([]Cells, ws.rows)
	for r := range out {
		out[r] = ws.rowCells(r)
	}
	return out
}

// Columns returns the cells grouped by column.
func (ws *Worksheet) Columns() []Cells {
	out := make([]Cells, ws.cols)
	for c := range out {
		out[c] = ws.colCells(c)
	}
	return out
}

// Range returns the cells of an A1 range such as "B2:D5", grouped by row.
// A sheet-qualified reference must name this sheet.
func (ws *Worksheet) Range(ref string) ([]Cells, error) {
	rng, err := address.ParseRange(ref)
	if err != nil {
		return nil, err
	}
	if rng.Sheet != "" && !strings.EqualFold(rng.Sheet, ws.name) {
		return nil, &SheetError{Name: rng.Sheet, Err: ErrSheetNotFound}
	}
	if err := ws.checkRange(rng); err != nil {
		return nil, err
	}
	return ws.cellsIn(rng), nil
}

// SetValue writes v at 1-based row and column numbers.
func (ws *Worksheet) SetValue(row, col int, v interface{}) error {
	return ws.setAt(row-1, col-1, models.Of(v))
}

// SetValueAt writes v at an A1 address.
func (ws *Worksheet) SetValueAt(addr string, v interface{}) error {
	row, col, err := address.Parse(addr)
	if err != nil {
		return err
	}
	return ws.SetValue(row, col, v)
}

func (ws *Worksheet) check(rowIndex, colIndex int) error {
	if rowIndex < 0 || rowIndex >= ws.rows || colIndex < 0 || colIndex >= ws.cols {
		return &RangeError{
			Sheet:  ws.name,
			Row:    rowIndex + 1,
			Col:    colIndex + 1,
			MaxRow: ws.rows,
			MaxCol: ws.cols,
		}
	}
	return nil
}

// checkRange verifies both corners of rng lie within the sheet.
func (ws *Worksheet) checkRange(rng address.Range) error {
	if err := ws.check(rng.R1-1, rng.C1-1); err != nil {
		return err
	}
	return ws.check(rng.R2-1, rng.C2-1)
}

// cellsIn materializes an in-bounds range, grouped by row.
func (ws *Worksheet) cellsIn(rng address.Range) []Cells {
	out := make([]Cells, 0, rng.Rows())
	for r := rng.R1 - 1; r < rng.R2; r++ {
		row := make(Cells, 0, rng.Cols())
		for c := rng.C1 - 1; c < rng.C2; c++ {
			row = append(row, ws.build(r, c))
		}
		out = append(out, row)
	}
	return out
}

func (ws *Worksheet) cellAt(rowIndex, colIndex int) (*Cell, error) {
	if err := ws.check(rowIndex, colIndex); err != nil {
		return nil, err
	}
	return ws.build(rowIndex, colIndex), nil
}

func (ws *Worksheet) setAt(rowIndex, colIndex int, v models.Value) error {
	if err := ws.check(rowIndex, colIndex); err != nil {
		return err
	}
	wt, ok := ws.table.(WritableTable)
	if !ok {
		return ErrReadOnly
	}
	return wt.Set(rowIndex, colIndex, v)
}

// build materializes a cell; indices must already be in bounds.
func (ws *Worksheet) build(rowIndex, colIndex int) *Cell {
	v := ws.table.Get(rowIndex, colIndex)
	return &Cell{
		handle:   Handle{Sheet: ws.id, RowIndex: rowIndex, ColIndex: colIndex},
		value:    v,
		dataType: v.Kind(),
		grid:     ws,
	}
}

func (ws *Worksheet) rowCells(rowIndex int) Cells {
	out := make(Cells, ws.cols)
	for c := range out {
		out[c] = ws.build(rowIndex, c)
	}
	return out
}

func (ws *Worksheet) colCells(colIndex int) Cells {
	out := make(Cells, ws.rows)
	for r := range out {
		out[r] = ws.build(r, colIndex)
	}
	return out
}

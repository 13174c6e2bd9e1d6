package xlgrid

import (
	"github.com/google/uuid"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/convert"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// Handle identifies a grid position: the owning sheet and zero-based indices.
type Handle struct {
	Sheet    uuid.UUID
	RowIndex int
	ColIndex int
}

// materializer is the narrow view of a Worksheet a Cell navigates through.
type materializer interface {
	cellAt(rowIndex, colIndex int) (*Cell, error)
	setAt(rowIndex, colIndex int, v models.Value) error
}

// Cell is a snapshot of one grid position. Its value does not follow later
// writes to the sheet, except writes made through SetValue.
type Cell struct {
	handle   Handle
	value    models.Value
	dataType models.Kind
	grid     materializer
}

// Handle returns the cell's identity.
func (c *Cell) Handle() Handle { return c.handle }

// SheetID returns the id of the owning sheet.
func (c *Cell) SheetID() uuid.UUID { return c.handle.Sheet }

// RowIndex returns the zero-based row index.
func (c *Cell) RowIndex() int { return c.handle.RowIndex }

// ColIndex returns the zero-based column index.
func (c *Cell) ColIndex() int { return c.handle.ColIndex }

// Row returns the 1-based row number.
func (c *Cell) Row() int { return c.handle.RowIndex + 1 }

// Column returns the 1-based column number.
func (c *Cell) Column() int { return c.handle.ColIndex + 1 }

// ColumnLabel returns the column label, e.g. "B".
func (c *Cell) ColumnLabel() string {
	label, _ := address.ColumnLabel(c.Column())
	return label
}

// Address returns the A1-style address, e.g. "B3".
func (c *Cell) Address() string {
	return address.MustFormat(c.Row(), c.Column())
}

// Value returns the raw value snapshot.
func (c *Cell) Value() models.Value { return c.value }

// DataType returns the kind of the raw value.
func (c *Cell) DataType() models.Kind { return c.dataType }

// IsEmpty reports whether the raw value is absent.
func (c *Cell) IsEmpty() bool { return c.value.IsEmpty() }

// Text renders the raw value as text; empty cells render as "".
func (c *Cell) Text() string { return c.value.String() }

func (c *Cell) String() string { return c.value.String() }

// Offset returns the cell rowDelta rows and colDelta columns away, read fresh
// from the owning sheet. Targets outside the sheet fail with ErrOutOfRange.
func (c *Cell) Offset(rowDelta, colDelta int) (*Cell, error) {
	return c.grid.cellAt(c.handle.RowIndex+rowDelta, c.handle.ColIndex+colDelta)
}

// SetValue writes v into the owning sheet's source at this cell's position and
// updates the snapshot. The snapshot is unchanged if the write fails.
func (c *Cell) SetValue(v interface{}) error {
	mv := models.Of(v)
	if err := c.grid.setAt(c.handle.RowIndex, c.handle.ColIndex, mv); err != nil {
		return err
	}
	c.value = mv
	c.dataType = mv.Kind()
	return nil
}

// To converts the cell value to T. With onErrorDefault a failed conversion
// yields T's zero value; otherwise it returns an error matching
// ErrConversionFailed.
func To[T convert.Scalar](c *Cell, onErrorDefault bool) (T, error) {
	policy := convert.RaiseOnError
	if onErrorDefault {
		policy = convert.DefaultOnError
	}
	r, err := convert.To[T](c.value, policy)
	return r.Value, err
}

// ToOptional converts the cell value to T, reporting false when no value is
// present. Blank cells and failed conversions are absent with onErrorNull and
// T's zero value without it.
func ToOptional[T convert.Scalar](c *Cell, onErrorNull bool) (T, bool) {
	var zero T
	if convert.IsBlank(c.value) {
		return zero, !onErrorNull
	}

	policy := convert.DefaultOnError
	if onErrorNull {
		policy = convert.NullOnError
	}
	r, _ := convert.To[T](c.value, policy)
	return r.Get()
}

// IsParseable reports whether the cell value converts to T. Blank cells are
// never parseable.
func IsParseable[T convert.Scalar](c *Cell) bool {
	return convert.TryParse[T](c.value)
}

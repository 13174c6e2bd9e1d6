package xlgrid

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/convert"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

func mustCell(t *testing.T, ws *Worksheet, addr string) *Cell {
	t.Helper()
	c, err := ws.CellAt(addr)
	require.NoError(t, err)
	return c
}

func TestCellPosition(t *testing.T) {
	ws := NewWorksheet(gridTable())
	c := mustCell(t, ws, "B3")

	assert.Equal(t, 2, c.RowIndex())
	assert.Equal(t, 1, c.ColIndex())
	assert.Equal(t, 3, c.Row())
	assert.Equal(t, 2, c.Column())
	assert.Equal(t, "B", c.ColumnLabel())
	assert.Equal(t, "B3", c.Address())
	assert.Equal(t, Handle{Sheet: ws.ID(), RowIndex: 2, ColIndex: 1}, c.Handle())
}

func TestCellText(t *testing.T) {
	ws := NewWorksheet(gridTable())

	assert.Equal(t, "a1", mustCell(t, ws, "A1").Text())
	assert.Equal(t, "2.5", mustCell(t, ws, "B2").Text())
	assert.Equal(t, "True", mustCell(t, ws, "B3").String())
	assert.Equal(t, "", mustCell(t, ws, "A3").Text())
}

func TestCellOffset(t *testing.T) {
	ws := NewWorksheet(gridTable())
	c := mustCell(t, ws, "B2")

	left, err := c.Offset(1, -1)
	require.NoError(t, err)
	assert.Equal(t, "A3", left.Address())

	same, err := c.Offset(0, 0)
	require.NoError(t, err)
	assert.Equal(t, c.Handle(), same.Handle())

	_, err = c.Offset(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = c.Offset(0, -2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCellOffsetReadsCurrentValue(t *testing.T) {
	tbl := gridTable()
	ws := NewWorksheet(tbl)
	c := mustCell(t, ws, "A1")

	require.NoError(t, tbl.Set(1, 0, models.Text("fresh")))

	below, err := c.Offset(1, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Text("fresh"), below.Value())
}

func TestCellTo(t *testing.T) {
	ws := NewWorksheet(gridTable())

	n, err := To[int](mustCell(t, ws, "B1"), false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, err := To[float64](mustCell(t, ws, "B2"), false)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	d, err := To[decimal.Decimal](mustCell(t, ws, "B2"), false)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.5").Equal(d))

	s, err := To[string](mustCell(t, ws, "B3"), false)
	require.NoError(t, err)
	assert.Equal(t, "True", s)

	_, err = To[int](mustCell(t, ws, "A1"), false)
	require.ErrorIs(t, err, ErrConversionFailed)
	var convErr *convert.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, models.KindText, convErr.From)

	n, err = To[int](mustCell(t, ws, "A1"), true)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = To[time.Time](mustCell(t, ws, "B1"), false)
	assert.ErrorIs(t, err, ErrConversionFailed)
}

func TestCellToOptional(t *testing.T) {
	ws := NewWorksheet(gridTable())

	tests := []struct {
		name        string
		addr        string
		onErrorNull bool
		expected    float64
		present     bool
	}{
		{"number", "B2", true, 2.5, true},
		{"blank null", "A3", true, 0, false},
		{"blank zero", "A3", false, 0, true},
		{"bad text null", "A1", true, 0, false},
		{"bad text zero", "A1", false, 0, true},
		{"bool", "B3", true, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ToOptional[float64](mustCell(t, ws, tt.addr), tt.onErrorNull)
			assert.Equal(t, tt.expected, v)
			assert.Equal(t, tt.present, ok)
		})
	}
}

func TestCellIsParseable(t *testing.T) {
	tbl := gridTable()
	require.NoError(t, tbl.Set(2, 0, models.Text("   ")))
	ws := NewWorksheet(tbl)

	assert.True(t, IsParseable[int](mustCell(t, ws, "B1")))
	assert.True(t, IsParseable[bool](mustCell(t, ws, "B3")))
	assert.True(t, IsParseable[string](mustCell(t, ws, "A1")))
	assert.False(t, IsParseable[float64](mustCell(t, ws, "A1")))
	assert.False(t, IsParseable[string](mustCell(t, ws, "A3")))
	assert.False(t, IsParseable[int](mustCell(t, ws, "A3")))
}

func TestCellSetValue(t *testing.T) {
	ws := NewWorksheet(gridTable())
	c := mustCell(t, ws, "A3")
	stale := mustCell(t, ws, "A3")

	require.NoError(t, c.SetValue(7))
	assert.Equal(t, models.Number(7), c.Value())
	assert.Equal(t, models.KindNumber, c.DataType())

	v, err := ws.Value(3, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Number(7), v)

	// Other snapshots keep the value they were built with
	assert.True(t, stale.IsEmpty())
	fresh := mustCell(t, ws, "A3")
	assert.Equal(t, models.Number(7), fresh.Value())

	require.NoError(t, c.SetValue(nil))
	assert.True(t, c.IsEmpty())
}

func TestCellSetValueReadOnly(t *testing.T) {
	ws := NewWorksheet(readOnlyTable{gridTable()})
	c := mustCell(t, ws, "A1")

	assert.ErrorIs(t, c.SetValue("x"), ErrReadOnly)
	assert.Equal(t, models.Text("a1"), c.Value())
	assert.Equal(t, models.KindText, c.DataType())
}

package xlgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

func TestCellsFilters(t *testing.T) {
	cells := NewWorksheet(gridTable()).Cells()

	assert.Equal(t, []string{"A2", "B2"}, cells.InRow(2).Addresses())
	assert.Equal(t, []string{"B1", "B2", "B3"}, cells.InColumn(2).Addresses())
	assert.Equal(t, []string{"A1", "A2", "A3"}, cells.InColumnLabel("a").Addresses())
	assert.Empty(t, cells.InRow(9))

	c, ok := cells.FirstInRow(3)
	require.True(t, ok)
	assert.Equal(t, "A3", c.Address())

	c, ok = cells.FirstInColumn(2)
	require.True(t, ok)
	assert.Equal(t, models.Number(1), c.Value())

	c, ok = cells.FirstInColumnLabel("B")
	require.True(t, ok)
	assert.Equal(t, "B1", c.Address())

	_, ok = cells.FirstInColumnLabel("Z")
	assert.False(t, ok)
}

func TestCellsValues(t *testing.T) {
	row, err := NewWorksheet(gridTable()).Row(3)
	require.NoError(t, err)

	assert.Equal(t, []models.Value{models.Empty(), models.Bool(true)}, row.Values())
}

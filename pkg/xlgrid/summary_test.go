package xlgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

func TestSummarize(t *testing.T) {
	tbl := models.TableFromRows("S", [][]models.Value{
		{models.Text("Amount")},
		{models.Number(2)},
		{models.Text("4")},
		{models.Empty()},
		{models.Text("n/a")},
		{models.Number(6)},
	})
	ws := NewWorksheet(tbl)

	summary, err := ws.Summarize(1, 1)
	require.NoError(t, err)

	assert.Equal(t, "A", summary.Column)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Empty)
	assert.Equal(t, 12.0, summary.Sum)
	assert.Equal(t, 4.0, summary.Mean)
	assert.Equal(t, 4.0, summary.Median)
	assert.Equal(t, 2.0, summary.Min)
	assert.Equal(t, 6.0, summary.Max)
	assert.InDelta(t, 1.633, summary.StdDev, 0.001)
}

func TestSummarizeNoNumbers(t *testing.T) {
	ws := NewWorksheet(gridTable())

	summary, err := ws.Summarize(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 1, summary.Empty)

	summary, err = ws.Summarize(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)

	_, err = ws.Summarize(3, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

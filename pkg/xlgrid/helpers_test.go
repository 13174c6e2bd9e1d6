package xlgrid

import (
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// gridTable returns a 3x2 table:
//
//	   A      B
//	1  "a1"   1
//	2  "a2"   2.5
//	3  empty  true
func gridTable() *models.Table {
	return models.TableFromRows("Data", [][]models.Value{
		{models.Text("a1"), models.Number(1)},
		{models.Text("a2"), models.Number(2.5)},
		{models.Empty(), models.Bool(true)},
	})
}

// readOnlyTable hides the Set method of a models.Table.
type readOnlyTable struct {
	t *models.Table
}

func (r readOnlyTable) Name() string                            { return r.t.Name() }
func (r readOnlyTable) Rows() int                               { return r.t.Rows() }
func (r readOnlyTable) Cols() int                               { return r.t.Cols() }
func (r readOnlyTable) Get(rowIndex, colIndex int) models.Value { return r.t.Get(rowIndex, colIndex) }

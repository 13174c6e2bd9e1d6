package xlgrid

import (
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// Table is the tabular data source a Worksheet wraps. Its shape must not
// change while a Worksheet owns it.
type Table interface {
	Name() string
	Rows() int
	Cols() int
	Get(rowIndex, colIndex int) models.Value
}

// WritableTable is a Table that accepts writes. Cell and Worksheet writes
// require it.
type WritableTable interface {
	Table
	Set(rowIndex, colIndex int, v models.Value) error
}

var _ WritableTable = (*models.Table)(nil)

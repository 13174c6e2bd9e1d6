// Package output serializes workbook snapshots.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// ToJSON serializes a workbook snapshot.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet snapshot.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// ValueToJSON serializes any result the CLI prints, such as a single cell or
// a column summary.
func ValueToJSON(v interface{}, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

package xlgrid

import (
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// Snapshot captures the workbook's current values for serialization.
func (wb *Workbook) Snapshot() *models.WorkbookData {
	data := &models.WorkbookData{
		BookName: wb.Name,
		Sheets:   make([]models.SheetData, 0, len(wb.sheets)),
	}
	for _, ws := range wb.sheets {
		data.Sheets = append(data.Sheets, ws.Snapshot())
	}
	for _, dn := range wb.Names() {
		data.Names = append(data.Names, models.NameData{Name: dn.Name, Scope: dn.Scope, RefersTo: dn.RefersTo})
	}
	return data
}

// Snapshot captures the sheet's non-empty cells and table candidates.
func (ws *Worksheet) Snapshot() models.SheetData {
	sheet := models.SheetData{
		Name: ws.name,
		Rows: ws.rows,
		Cols: ws.cols,
	}

	for _, row := range ws.Rows() {
		cellMap := make(map[string]models.Value)
		for _, c := range row {
			if !c.IsEmpty() {
				cellMap[c.ColumnLabel()] = c.Value()
			}
		}
		if len(cellMap) > 0 {
			sheet.Cells = append(sheet.Cells, models.CellRow{R: row[0].Row(), C: cellMap})
		}
	}

	sheet.TableCandidates = ws.TableCandidates(DefaultTableParams())
	for _, rng := range ws.printAreas {
		sheet.PrintAreas = append(sheet.PrintAreas, rng.String())
	}
	return sheet
}

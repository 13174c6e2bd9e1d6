package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the row count of the sheet's grid.
	Rows int `json:"rows"`
	// Cols is the column count of the sheet's grid.
	Cols int `json:"cols"`
	// Cells contains rows that hold at least one non-empty value.
	Cells []CellRow `json:"cells,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains the sheet's print areas, e.g. "A1:F40".
	PrintAreas []string `json:"print_areas,omitempty"`
}

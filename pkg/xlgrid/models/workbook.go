package models

// WorkbookData represents a workbook with its sheets in workbook order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds per-sheet data.
	Sheets []SheetData `json:"sheets"`
	// Names holds defined names in definition order.
	Names []NameData `json:"names,omitempty"`
}

// NameData represents a defined name.
type NameData struct {
	Name string `json:"name"`
	// Scope is the owning sheet, or empty for workbook scope.
	Scope    string `json:"scope,omitempty"`
	RefersTo string `json:"refers_to"`
}

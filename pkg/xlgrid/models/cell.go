package models

// CellRow represents the non-empty cells of a single row.
type CellRow struct {
	// R is the row number (1-based).
	R int `json:"r"`
	// C maps column label (e.g. "B") to cell value.
	C map[string]Value `json:"c"`
}

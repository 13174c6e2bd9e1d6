package xlgrid

import (
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// TableCandidates returns cell ranges (e.g., "A1:D10") that likely represent
// tables: the bounding box of non-empty cells, if dense enough.
func (ws *Worksheet) TableCandidates(params TableDetectionParams) []string {
	rng, ok := ws.UsedRange()
	if !ok {
		return nil
	}

	nonEmptyCells := ws.countNonEmpty(rng)
	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	totalCells := rng.Rows() * rng.Cols()
	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	return []string{rng.String()}
}

// UsedRange returns the bounding box of non-empty cells, or false if the
// sheet holds no values.
func (ws *Worksheet) UsedRange() (address.Range, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for r := 0; r < ws.rows; r++ {
		for c := 0; c < ws.cols; c++ {
			if ws.table.Get(r, c).IsEmpty() {
				continue
			}
			if minRow < 0 || r < minRow {
				minRow = r
			}
			if maxRow < 0 || r > maxRow {
				maxRow = r
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if maxCol < 0 || c > maxCol {
				maxCol = c
			}
		}
	}

	if minRow < 0 {
		return address.Range{}, false
	}
	return address.Range{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// countNonEmpty counts non-empty cells within a range.
func (ws *Worksheet) countNonEmpty(rng address.Range) int {
	count := 0
	for r := rng.R1 - 1; r < rng.R2; r++ {
		for c := rng.C1 - 1; c < rng.C2; c++ {
			if !ws.table.Get(r, c).IsEmpty() {
				count++
			}
		}
	}
	return count
}

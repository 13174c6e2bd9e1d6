package xlgrid

import (
	"github.com/montanaflynn/stats"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/convert"
)

// ColumnSummary describes the numeric content of a column.
type ColumnSummary struct {
	Column  string  `json:"column"`
	Count   int     `json:"count"`   // numeric cells
	Skipped int     `json:"skipped"` // non-empty cells that are not numeric
	Empty   int     `json:"empty"`   // blank cells
	Sum     float64 `json:"sum"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"std_dev"`
}

// Summarize scans a column for numeric values, skipping the first skipRows
// rows (e.g. a header). Cells that do not convert are counted, not failed.
func (ws *Worksheet) Summarize(col, skipRows int) (ColumnSummary, error) {
	cells, err := ws.Column(col)
	if err != nil {
		return ColumnSummary{}, err
	}

	summary := ColumnSummary{}
	if len(cells) > 0 {
		summary.Column = cells[0].ColumnLabel()
	}
	if skipRows > len(cells) {
		skipRows = len(cells)
	}

	var data []float64
	for _, c := range cells[max(skipRows, 0):] {
		if convert.IsBlank(c.Value()) {
			summary.Empty++
			continue
		}
		if n, ok := ToOptional[float64](c, true); ok {
			data = append(data, n)
		} else {
			summary.Skipped++
		}
	}

	summary.Count = len(data)
	if len(data) == 0 {
		return summary, nil
	}

	if summary.Sum, err = stats.Sum(data); err != nil {
		return summary, err
	}
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}
	if summary.StdDev, err = stats.StandardDeviation(data); err != nil {
		return summary, err
	}
	return summary, nil
}

package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// ReadWorkbook decodes every selected sheet of f into a table, in workbook
// order. Sheets are decoded concurrently up to opts.Workers.
func ReadWorkbook(f *excelize.File, opts Options) ([]*models.Table, error) {
	var names []string
	for _, name := range f.GetSheetList() {
		if opts.include(name) {
			names = append(names, name)
		}
	}

	tables := make([]*models.Table, len(names))
	var g errgroup.Group
	g.SetLimit(max(opts.Workers, 1))

	for i, name := range names {
		g.Go(func() error {
			t, err := ReadSheet(f, name, opts.InferTypes)
			if err != nil {
				if opts.OnSheetError == nil {
					return err
				}
				// Report and continue with an empty sheet
				opts.OnSheetError(name, err)
				t = models.NewTable(name, 0, 0)
			}
			tables[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// ReadSheet decodes one sheet into a table. The table spans from A1 to the
// last row and column that hold data.
func ReadSheet(f *excelize.File, sheetName string, inferTypes bool) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var raw [][]string
	if inferTypes {
		raw, err = f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
	}

	result := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		values := make([]models.Value, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			if !inferTypes {
				values[colIdx] = models.Text(cellValue)
				continue
			}

			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				cellType = excelize.CellTypeUnset
			}
			v := typedValue(cellType, cellValue, rawAt(raw, rowIdx, colIdx))
			if v.Kind() == models.KindNumber && isDateFormatted(f, sheetName, cellName) {
				n, _ := v.Num()
				if t, err := excelize.ExcelDateToTime(n, false); err == nil {
					v = models.Time(t)
				}
			}
			values[colIdx] = v
		}
		result[rowIdx] = values
	}

	return models.TableFromRows(sheetName, result), nil
}

// typedValue picks a Value for a cell from its declared type, its formatted
// text and its unformatted raw text.
func typedValue(cellType excelize.CellType, formatted, raw string) models.Value {
	if raw == "" {
		raw = formatted
	}

	switch cellType {
	case excelize.CellTypeBool:
		switch strings.ToUpper(raw) {
		case "1", "TRUE":
			return models.Bool(true)
		case "0", "FALSE":
			return models.Bool(false)
		}
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return models.Time(t)
		}
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return models.Time(t)
			}
		}
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return models.Text(formatted)
	}

	// Numbers carry no type attribute; fall back to parsing the raw text
	return parseValue(raw, formatted)
}

// parseValue attempts to parse a string value as a number.
// Returns a number for integers and decimals, or text of the displayed value.
// Only plain decimal and exponent forms count as numbers; "NaN", "Inf" and
// hex floats stay text.
func parseValue(raw, formatted string) models.Value {
	if !isPlainNumber(raw) {
		return models.Text(formatted)
	}
	// Try integer first
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// Try float
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.Number(f)
	}
	// Return as text
	return models.Text(formatted)
}

// isPlainNumber reports whether s has the form [+-]digits[.digits][(e|E)[+-]digits]
// with at least one mantissa digit.
func isPlainNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func rawAt(raw [][]string, rowIdx, colIdx int) string {
	if rowIdx >= len(raw) || colIdx >= len(raw[rowIdx]) {
		return ""
	}
	return raw[rowIdx][colIdx]
}

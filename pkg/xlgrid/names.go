package xlgrid

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
)

// DefinedName describes a named range.
type DefinedName struct {
	Name string
	// Scope is the owning sheet's name, or empty for workbook scope.
	Scope string
	// RefersTo is the sheet-qualified reference, e.g. "'My data'!$A$1:$C$9".
	RefersTo string
}

// namedRange binds a name to a block of a sheet. Sheets are held by pointer
// so renames carry through.
type namedRange struct {
	name  string
	scope *Worksheet // nil for workbook scope
	sheet *Worksheet
	rng   address.Range
}

func (n namedRange) definedName() DefinedName {
	d := DefinedName{Name: n.name, RefersTo: qualifiedRef(n.sheet.name, n.rng)}
	if n.scope != nil {
		d.Scope = n.scope.name
	}
	return d
}

// DefineName adds a workbook-scoped name for a single-area reference. The
// reference must name an existing sheet, e.g. "Data!$B$2:$B$9".
func (wb *Workbook) DefineName(name, ref string) error {
	return wb.defineName(name, nil, ref)
}

func (wb *Workbook) defineName(name string, scope *Worksheet, ref string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, n := range wb.names {
		if n.scope == scope && strings.EqualFold(n.name, name) {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	rng, err := address.ParseRange(strings.TrimPrefix(ref, "="))
	if err != nil {
		return err
	}
	sheet := scope
	if rng.Sheet != "" {
		if sheet, err = wb.Sheet(rng.Sheet); err != nil {
			return err
		}
	}
	if sheet == nil {
		return fmt.Errorf("%w: %q does not name a sheet", ErrInvalidName, ref)
	}

	rng.Sheet = ""
	wb.names = append(wb.names, namedRange{name: name, scope: scope, sheet: sheet, rng: rng})
	return nil
}

// Names returns the defined names in definition order.
func (wb *Workbook) Names() []DefinedName {
	out := make([]DefinedName, len(wb.names))
	for i, n := range wb.names {
		out[i] = n.definedName()
	}
	return out
}

// NamedRange returns the cells a defined name refers to, grouped by row. The
// range is clipped to the sheet's extent, so a name reaching past the data
// yields only the cells that exist. Workbook-scoped names take precedence over
// sheet-scoped ones.
func (wb *Workbook) NamedRange(name string) ([]Cells, error) {
	i := slices.IndexFunc(wb.names, func(n namedRange) bool {
		return n.scope == nil && strings.EqualFold(n.name, name)
	})
	if i < 0 {
		i = slices.IndexFunc(wb.names, func(n namedRange) bool {
			return strings.EqualFold(n.name, name)
		})
	}
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	n := wb.names[i]
	rng := n.rng
	rng.R2 = min(rng.R2, n.sheet.rows)
	rng.C2 = min(rng.C2, n.sheet.cols)
	if rng.R1 > rng.R2 || rng.C1 > rng.C2 {
		return nil, nil
	}
	return n.sheet.cellsIn(rng), nil
}

// RemoveName deletes a workbook-scoped name.
func (wb *Workbook) RemoveName(name string) error {
	i := slices.IndexFunc(wb.names, func(n namedRange) bool {
		return n.scope == nil && strings.EqualFold(n.name, name)
	})
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	wb.names = slices.Delete(wb.names, i, i+1)
	return nil
}

// dropNames removes every name that targets or is scoped to ws.
func (wb *Workbook) dropNames(ws *Worksheet) {
	wb.names = slices.DeleteFunc(wb.names, func(n namedRange) bool {
		return n.sheet == ws || n.scope == ws
	})
}

// PrintAreas returns the sheet's print areas.
func (ws *Worksheet) PrintAreas() []address.Range {
	return slices.Clone(ws.printAreas)
}

// SetPrintAreas replaces the sheet's print areas. A sheet qualifier, if
// present, must name this sheet. Areas may extend past the sheet's data.
func (ws *Worksheet) SetPrintAreas(refs ...string) error {
	areas := make([]address.Range, 0, len(refs))
	for _, ref := range refs {
		rng, err := address.ParseRange(ref)
		if err != nil {
			return err
		}
		if rng.Sheet != "" && !strings.EqualFold(rng.Sheet, ws.name) {
			return &SheetError{Name: rng.Sheet, Err: ErrSheetNotFound}
		}
		rng.Sheet = ""
		areas = append(areas, rng)
	}
	ws.printAreas = areas
	return nil
}

// qualifiedRef formats an absolute, sheet-qualified reference.
func qualifiedRef(sheet string, rng address.Range) string {
	if needsQuotes(sheet) {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	start := absolute(rng.R1, rng.C1)
	if rng.R1 == rng.R2 && rng.C1 == rng.C2 {
		return sheet + "!" + start
	}
	return sheet + "!" + start + ":" + absolute(rng.R2, rng.C2)
}

// needsQuotes reports whether a sheet name must be quoted in a reference:
// anything but letters, digits and underscores, a leading digit, or a name
// that reads as a cell address such as "AB12".
func needsQuotes(sheet string) bool {
	if sheet == "" || (sheet[0] >= '0' && sheet[0] <= '9') {
		return true
	}
	for _, r := range sheet {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	_, _, err := address.Parse(sheet)
	return err == nil
}

func absolute(row, col int) string {
	label, _ := address.ColumnLabel(col)
	return fmt.Sprintf("$%s$%d", label, row)
}

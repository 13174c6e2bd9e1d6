package xlgrid

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Workbook is an ordered collection of worksheets whose names are unique
// under case-insensitive comparison.
type Workbook struct {
	// Name is the workbook name, usually the file name without path.
	Name string
	// Path is the file the workbook was opened from, if any.
	Path string

	sheets []*Worksheet
	names  []namedRange
}

// NewWorkbook creates an empty workbook.
func NewWorkbook(name string) *Workbook {
	return &Workbook{Name: name}
}

// FromTables builds a workbook with one sheet per table, in order, each named
// after its table.
func FromTables(name string, tables ...Table) (*Workbook, error) {
	wb := NewWorkbook(name)
	for _, t := range tables {
		if _, err := wb.AddTable(t, t.Name()); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

// Sheets returns the worksheets in workbook order.
func (wb *Workbook) Sheets() []*Worksheet {
	return slices.Clone(wb.sheets)
}

// Len returns the number of worksheets.
func (wb *Workbook) Len() int {
	return len(wb.sheets)
}

// SheetNames returns the worksheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.sheets))
	for i, ws := range wb.sheets {
		names[i] = ws.name
	}
	return names
}

// Sheet looks a worksheet up by name, ignoring case.
func (wb *Workbook) Sheet(name string) (*Worksheet, error) {
	i := wb.indexOf(name)
	if i < 0 {
		return nil, &SheetError{Name: name, Err: ErrSheetNotFound}
	}
	return wb.sheets[i], nil
}

// SheetByID looks a worksheet up by id, e.g. from a Cell handle.
func (wb *Workbook) SheetByID(id uuid.UUID) (*Worksheet, bool) {
	for _, ws := range wb.sheets {
		if ws.id == id {
			return ws, true
		}
	}
	return nil, false
}

// AddSheet appends a worksheet. It fails with ErrDuplicateSheetName if the
// name is already used, ignoring case.
func (wb *Workbook) AddSheet(ws *Worksheet) error {
	if err := wb.checkName(ws.name, -1); err != nil {
		return err
	}
	wb.sheets = append(wb.sheets, ws)
	return nil
}

// AddTable wraps a table in a new worksheet named name and appends it.
func (wb *Workbook) AddTable(t Table, name string) (*Worksheet, error) {
	if err := wb.checkName(name, -1); err != nil {
		return nil, err
	}
	ws := NewNamedWorksheet(t, name)
	wb.sheets = append(wb.sheets, ws)
	return ws, nil
}

// RenameSheet renames a worksheet. Changing only the case of a name is
// allowed; taking another sheet's name is not.
func (wb *Workbook) RenameSheet(oldName, newName string) error {
	i := wb.indexOf(oldName)
	if i < 0 {
		return &SheetError{Name: oldName, Err: ErrSheetNotFound}
	}
	if err := wb.checkName(newName, i); err != nil {
		return err
	}
	wb.sheets[i].name = newName
	return nil
}

// RemoveSheet removes a worksheet by name, ignoring case, together with the
// defined names that refer to it.
func (wb *Workbook) RemoveSheet(name string) error {
	i := wb.indexOf(name)
	if i < 0 {
		return &SheetError{Name: name, Err: ErrSheetNotFound}
	}
	wb.dropNames(wb.sheets[i])
	wb.sheets = slices.Delete(wb.sheets, i, i+1)
	return nil
}

func (wb *Workbook) indexOf(name string) int {
	return slices.IndexFunc(wb.sheets, func(ws *Worksheet) bool {
		return strings.EqualFold(ws.name, name)
	})
}

// checkName validates a name for the sheet at index self (-1 for a new sheet).
func (wb *Workbook) checkName(name string, self int) error {
	if strings.TrimSpace(name) == "" {
		return &SheetError{Name: name, Err: ErrInvalidSheetName}
	}
	if i := wb.indexOf(name); i >= 0 && i != self {
		return &SheetError{Name: name, Err: ErrDuplicateSheetName}
	}
	return nil
}

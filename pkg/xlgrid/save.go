package xlgrid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// defaultSheet is the sheet excelize.NewFile starts with.
const defaultSheet = "Sheet1"

// SaveAs writes the workbook's current values, defined names and print areas
// to an xlsx file. The source file's styles and formulas are not preserved.
func SaveAs(wb *Workbook, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, ws := range wb.sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, ws.name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", ws.name, err)
			}
		} else if _, err := f.NewSheet(ws.name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", ws.name, err)
		}

		for _, c := range ws.Cells() {
			v := c.Value()
			if v.IsEmpty() {
				continue
			}
			if err := f.SetCellValue(ws.name, c.Address(), cellValue(v)); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", ws.name, c.Address(), err)
			}
		}
	}

	for _, ws := range wb.sheets {
		if len(ws.printAreas) == 0 {
			continue
		}
		refs := make([]string, len(ws.printAreas))
		for i, rng := range ws.printAreas {
			refs[i] = qualifiedRef(ws.name, rng)
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     "_xlnm.Print_Area",
			RefersTo: strings.Join(refs, ","),
			Scope:    ws.name,
		}); err != nil {
			return fmt.Errorf("failed to write print area of %q: %w", ws.name, err)
		}
	}

	for _, dn := range wb.Names() {
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     dn.Name,
			RefersTo: dn.RefersTo,
			Scope:    dn.Scope,
		}); err != nil {
			return fmt.Errorf("failed to write defined name %q: %w", dn.Name, err)
		}
	}

	return f.SaveAs(path)
}

func cellValue(v models.Value) interface{} {
	if v.Kind() == models.KindOther {
		return v.String()
	}
	return v.Interface()
}

package xlgrid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/parser"
)

// Open reads a workbook file into memory. Supported extensions are .xlsx,
// .xlsm, .xltx and .xltm (decoded with excelize) and .csv or .txt (a single
// sheet named after the file). The file is read once; no Worksheet or Cell
// operation touches it afterwards.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	bookName := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))
	popts := opts.parserOptions()

	var (
		tables     []*models.Table
		names      []parser.DefinedName
		printAreas map[string][]address.Range
	)
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, bookName, err)
		}
		defer f.Close()

		tables, err = parser.ReadWorkbook(f, popts)
		if err != nil {
			return nil, err
		}
		names = parser.ReadDefinedNames(f)
		printAreas = parser.ReadPrintAreas(f)

	case ".csv", ".txt":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		t, err := parser.ReadCSV(file, strings.TrimSuffix(bookName, filepath.Ext(bookName)), popts)
		if err != nil {
			return nil, NewLoadError(bookName, "csv", err)
		}
		tables = append(tables, t)

	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}

	sources := make([]Table, len(tables))
	for i, t := range tables {
		sources[i] = t
	}
	wb, err := FromTables(bookName, sources...)
	if err != nil {
		return nil, err
	}
	wb.Path = path

	for sheet, areas := range printAreas {
		if ws, err := wb.Sheet(sheet); err == nil {
			ws.printAreas = areas
			for i := range ws.printAreas {
				ws.printAreas[i].Sheet = ""
			}
		}
	}
	wb.loadNames(names, opts.Logger)
	return wb, nil
}

// loadNames binds decoded names to sheets. Names that refer to filtered-out
// sheets, constants or formulas are skipped with a warning.
func (wb *Workbook) loadNames(names []parser.DefinedName, logger Logger) {
	for _, dn := range names {
		var scope *Worksheet
		if dn.Scope != "" {
			ws, err := wb.Sheet(dn.Scope)
			if err != nil {
				continue
			}
			scope = ws
		}
		if err := wb.defineName(dn.Name, scope, dn.RefersTo); err != nil && logger != nil {
			logger.Warn("skipping defined name %q: %v", dn.Name, NewLoadError(dn.Scope, "names", err))
		}
	}
}

package xlgrid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/convert"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a supported workbook format.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrOutOfRange indicates a row or column number outside the sheet bounds.
var ErrOutOfRange = errors.New("cell out of range")

// ErrSheetNotFound indicates no sheet matches a name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrDuplicateSheetName indicates a sheet name already in use.
var ErrDuplicateSheetName = errors.New("duplicate sheet name")

// ErrInvalidSheetName indicates an empty sheet name.
var ErrInvalidSheetName = errors.New("invalid sheet name")

// ErrNameNotFound indicates no defined name matches.
var ErrNameNotFound = errors.New("defined name not found")

// ErrDuplicateName indicates a defined name already in use within its scope.
var ErrDuplicateName = errors.New("duplicate defined name")

// ErrInvalidName indicates an empty defined name or one without a target sheet.
var ErrInvalidName = errors.New("invalid defined name")

// ErrReadOnly indicates a write to a sheet whose source cannot be written.
var ErrReadOnly = errors.New("sheet source is read-only")

// Re-exported so callers can branch on every error class from one package.
var (
	ErrInvalidAddress   = address.ErrInvalidAddress
	ErrConversionFailed = convert.ErrConversionFailed
)

// RangeError reports a request outside a sheet's bounds. Row and Col are the
// requested 1-based numbers. RowOnly and ColOnly mark whole-row and
// whole-column requests, where the other coordinate is unused.
type RangeError struct {
	Sheet   string
	Row     int
	Col     int
	MaxRow  int
	MaxCol  int
	RowOnly bool
	ColOnly bool
}

func (e *RangeError) Error() string {
	switch {
	case e.RowOnly:
		return fmt.Sprintf("sheet %q: row %d outside 1..%d", e.Sheet, e.Row, e.MaxRow)
	case e.ColOnly:
		return fmt.Sprintf("sheet %q: column %d outside 1..%d", e.Sheet, e.Col, e.MaxCol)
	}
	return fmt.Sprintf("sheet %q: cell (%d, %d) outside %dx%d grid", e.Sheet, e.Row, e.Col, e.MaxRow, e.MaxCol)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// SheetError reports a sheet lookup or naming failure.
type SheetError struct {
	Name string
	Err  error // ErrSheetNotFound, ErrDuplicateSheetName or ErrInvalidSheetName
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// LoadError represents a failure while decoding one sheet of a workbook.
type LoadError struct {
	SheetName string
	Component string // "cells", "csv"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

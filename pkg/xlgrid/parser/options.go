// Package parser decodes spreadsheet files into in-memory tables.
package parser

// Options configures decoding.
type Options struct {
	// InferTypes decodes numbers, booleans and dates; otherwise every
	// non-empty cell is kept as text.
	InferTypes bool
	// Include selects sheets by name. If nil, every sheet is decoded.
	Include func(sheet string) bool
	// Workers bounds concurrent sheet decoding; values below 1 mean 1.
	Workers int
	// Comma is the CSV field delimiter; zero means ','.
	Comma rune
	// OnSheetError is called when a sheet fails to decode. The sheet is
	// still returned, empty. If nil, the first sheet error aborts decoding.
	OnSheetError func(sheet string, err error)
}

func (o Options) include(sheet string) bool {
	return o.Include == nil || o.Include(sheet)
}

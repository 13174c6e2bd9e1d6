// Package xlgrid provides a navigable, typed object model over spreadsheet
// data: a Workbook of named Worksheets, each a grid of addressable Cells.
package xlgrid

import (
	"strings"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/parser"
)

// Mode represents how raw cell content is decoded.
type Mode string

const (
	// ModeText keeps every non-empty cell as text, exactly as displayed.
	ModeText Mode = "text"
	// ModeTyped decodes numbers, booleans and dates into typed values.
	ModeTyped Mode = "typed"
)

// Logger receives warnings emitted while loading a workbook.
type Logger interface {
	Warn(format string, args ...interface{})
}

// Options configures how Open decodes a file.
type Options struct {
	// Mode specifies the decoding mode (text, typed).
	Mode Mode
	// Sheets restricts loading to the named sheets (case-insensitive).
	// If empty, every sheet is loaded.
	Sheets []string
	// Workers bounds how many sheets are decoded concurrently.
	// If zero or negative, sheets are decoded one at a time.
	Workers int
	// Comma is the field delimiter for CSV input. If zero, ',' is used.
	Comma rune
	// Logger receives per-sheet decode warnings. If nil, warnings are dropped.
	Logger Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Mode:    ModeTyped,
		Workers: 1,
		Comma:   ',',
	}
}

// ShouldInferTypes returns whether typed values are decoded.
func (o Options) ShouldInferTypes() bool {
	return o.Mode != ModeText
}

// ShouldLoadSheet returns whether the named sheet passes the Sheets filter.
func (o Options) ShouldLoadSheet(name string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func (o Options) parserOptions() parser.Options {
	comma := o.Comma
	if comma == 0 {
		comma = ','
	}
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	return parser.Options{
		InferTypes: o.ShouldInferTypes(),
		Include:    o.ShouldLoadSheet,
		Workers:    workers,
		Comma:      comma,
		OnSheetError: func(sheet string, err error) {
			if o.Logger != nil {
				o.Logger.Warn("%v", NewLoadError(sheet, "cells", err))
			}
		},
	}
}

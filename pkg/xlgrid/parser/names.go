package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
)

// printAreaName is the reserved defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// DefinedName is a workbook- or sheet-scoped name for a cell reference.
type DefinedName struct {
	Name string
	// Scope is a sheet name, or empty for workbook scope.
	Scope string
	// RefersTo is the reference without a leading '=', e.g. "Data!$A$1:$C$9".
	RefersTo string
}

// ReadDefinedNames returns the user-visible defined names of a workbook.
// Reserved _xlnm names are skipped.
func ReadDefinedNames(f *excelize.File) []DefinedName {
	var names []DefinedName
	for _, dn := range f.GetDefinedName() {
		if strings.HasPrefix(strings.ToLower(dn.Name), "_xlnm.") {
			continue
		}
		scope := dn.Scope
		if strings.EqualFold(scope, "Workbook") {
			scope = ""
		}
		names = append(names, DefinedName{
			Name:     dn.Name,
			Scope:    scope,
			RefersTo: strings.TrimPrefix(dn.RefersTo, "="),
		})
	}
	return names
}

// ReadPrintAreas returns each sheet's print areas keyed by sheet name.
func ReadPrintAreas(f *excelize.File) map[string][]address.Range {
	result := make(map[string][]address.Range)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for _, rng := range SplitReference(strings.TrimPrefix(dn.RefersTo, "=")) {
			sheet := rng.Sheet
			if sheet == "" {
				sheet = dn.Scope
			}
			if sheet != "" {
				result[sheet] = append(result[sheet], rng)
			}
		}
	}
	return result
}

// SplitReference parses a comma-separated reference list such as
// "'My sheet'!$A$1:$D$10,'My sheet'!$F$1:$G$4". Parts that do not parse are
// skipped.
func SplitReference(ref string) []address.Range {
	var ranges []address.Range
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if rng, err := address.ParseRange(part); err == nil {
			ranges = append(ranges, rng)
		}
	}
	return ranges
}

package address

import (
	"strings"
)

// Range is a rectangular block of cells in 1-based, inclusive coordinates.
type Range struct {
	// Sheet is the sheet name when the reference was qualified, e.g. 'Data'!A1:B2.
	Sheet string
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// ParseRange parses a range reference such as "A1:C3", "$A$1:$C$3",
// "Sheet1!B2" or "'My sheet'!A1:D10". A single cell is a 1x1 range.
// Corners are normalized so that R1 <= R2 and C1 <= C2.
func ParseRange(ref string) (Range, error) {
	var r Range
	s := strings.TrimSpace(ref)

	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		r.Sheet = s[:idx]
		if len(r.Sheet) >= 2 && strings.HasPrefix(r.Sheet, "'") && strings.HasSuffix(r.Sheet, "'") {
			r.Sheet = strings.ReplaceAll(r.Sheet[1:len(r.Sheet)-1], "''", "'")
		}
		s = s[idx+1:]
		if r.Sheet == "" {
			return Range{}, invalid(ref, "empty sheet name")
		}
	}

	// Remove $ anchors
	s = strings.ReplaceAll(s, "$", "")

	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return Range{}, invalid(ref, "too many ':' separators")
	}

	var err error
	r.R1, r.C1, err = Parse(parts[0])
	if err != nil {
		return Range{}, invalid(ref, "bad start cell")
	}
	r.R2, r.C2 = r.R1, r.C1
	if len(parts) == 2 {
		r.R2, r.C2, err = Parse(parts[1])
		if err != nil {
			return Range{}, invalid(ref, "bad end cell")
		}
	}

	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	return r, nil
}

// Rows returns the number of rows spanned by the range.
func (r Range) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns spanned by the range.
func (r Range) Cols() int { return r.C2 - r.C1 + 1 }

// Contains reports whether the 1-based position lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// String formats the range as "A1:C3", or "A1" for a single cell. The sheet
// qualifier is not included.
func (r Range) String() string {
	start := MustFormat(r.R1, r.C1)
	if r.R1 == r.R2 && r.C1 == r.C2 {
		return start
	}
	return start + ":" + MustFormat(r.R2, r.C2)
}

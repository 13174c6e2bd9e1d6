package address

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected Range
		str      string
	}{
		{"A1:D10", Range{R1: 1, C1: 1, R2: 10, C2: 4}, "A1:D10"},
		{"$A$1:$D$10", Range{R1: 1, C1: 1, R2: 10, C2: 4}, "A1:D10"},
		{"D10:A1", Range{R1: 1, C1: 1, R2: 10, C2: 4}, "A1:D10"},
		{"B2", Range{R1: 2, C1: 2, R2: 2, C2: 2}, "B2"},
		{"Sheet1!B2:C3", Range{Sheet: "Sheet1", R1: 2, C1: 2, R2: 3, C2: 3}, "B2:C3"},
		{"'My Sheet'!$A$1:$B$2", Range{Sheet: "My Sheet", R1: 1, C1: 1, R2: 2, C2: 2}, "A1:B2"},
		{"'O''Brien'!C3", Range{Sheet: "O'Brien", R1: 3, C1: 3, R2: 3, C2: 3}, "C3"},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.ref)
		if err != nil {
			t.Errorf("ParseRange(%q) returned error: %v", tt.ref, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.ref, result, tt.expected)
		}
		if result.String() != tt.str {
			t.Errorf("ParseRange(%q).String() = %q, expected %q", tt.ref, result.String(), tt.str)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, ref := range []string{"", ":", "A1:", "A1:B2:C3", "!A1", "A1:1B", "A:B"} {
		if _, err := ParseRange(ref); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("ParseRange(%q) error = %v, expected ErrInvalidAddress", ref, err)
		}
	}
}

func TestRangeShape(t *testing.T) {
	r := Range{R1: 2, C1: 3, R2: 5, C2: 4}
	if r.Rows() != 4 || r.Cols() != 2 {
		t.Errorf("Range %+v shape = %dx%d, expected 4x2", r, r.Rows(), r.Cols())
	}
	if !r.Contains(2, 3) || !r.Contains(5, 4) || r.Contains(1, 3) || r.Contains(2, 5) {
		t.Errorf("Range %+v Contains gave wrong answers", r)
	}
}

// Package address converts between zero-based grid indices, one-based row and
// column numbers and A1-style cell addresses.
//
// Column labels are bijective base-26 numerals: A=1 ... Z=26, AA=27. There is
// no zero digit.
package address

import (
	"strconv"
)

// ColumnNumber decodes a column label such as "B" or "aa" into its 1-based
// column number.
func ColumnNumber(label string) (int, error) {
	if label == "" {
		return 0, invalid(label, "empty column label")
	}

	n := 0
	for i := 0; i < len(label); i++ {
		d, ok := letterValue(label[i])
		if !ok {
			return 0, invalid(label, "column label must contain letters only")
		}
		if n > (maxInt-d)/26 {
			return 0, invalid(label, "column label overflows")
		}
		n = n*26 + d
	}
	return n, nil
}

// ColumnLabel encodes a 1-based column number as an upper-case column label.
func ColumnLabel(n int) (string, error) {
	if n < 1 {
		return "", invalid(strconv.Itoa(n), "column number must be >= 1")
	}

	// Least significant letter first, filled from the end of the buffer.
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		mod := (n - 1) % 26
		i--
		buf[i] = byte('A' + mod)
		n = (n - mod) / 26
	}
	return string(buf[i:]), nil
}

// Parse splits an A1 address into its 1-based row and column numbers.
// The letter run is case-insensitive.
func Parse(addr string) (row, col int, err error) {
	split := 0
	for split < len(addr) {
		if _, ok := letterValue(addr[split]); !ok {
			break
		}
		split++
	}
	if split == 0 {
		return 0, 0, invalid(addr, "address must start with a column label")
	}
	if split == len(addr) {
		return 0, 0, invalid(addr, "address has no row number")
	}

	digits := addr[split:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, invalid(addr, "row number must contain digits only")
		}
	}

	row, err = strconv.Atoi(digits)
	if err != nil {
		return 0, 0, invalid(addr, "row number overflows")
	}
	if row < 1 {
		return 0, 0, invalid(addr, "row number must be >= 1")
	}

	col, err = ColumnNumber(addr[:split])
	if err != nil {
		return 0, 0, invalid(addr, "column label overflows")
	}
	return row, col, nil
}

// Format builds an A1 address from 1-based row and column numbers.
func Format(row, col int) (string, error) {
	if row < 1 {
		return "", invalid(strconv.Itoa(row), "row number must be >= 1")
	}
	label, err := ColumnLabel(col)
	if err != nil {
		return "", err
	}
	return label + strconv.Itoa(row), nil
}

// FromIndex builds an A1 address from zero-based row and column indices.
func FromIndex(rowIndex, colIndex int) (string, error) {
	return Format(rowIndex+1, colIndex+1)
}

// ToIndex parses an A1 address into zero-based row and column indices.
func ToIndex(addr string) (rowIndex, colIndex int, err error) {
	row, col, err := Parse(addr)
	if err != nil {
		return 0, 0, err
	}
	return row - 1, col - 1, nil
}

// MustFormat is like Format but panics on invalid input. It is intended for
// indices that were already bounds checked.
func MustFormat(row, col int) string {
	s, err := Format(row, col)
	if err != nil {
		panic(err)
	}
	return s
}

const maxInt = int(^uint(0) >> 1)

func letterValue(b byte) (int, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 1, true
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 1, true
	}
	return 0, false
}

package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "C3", true)
	f.SetCellValue(sheetName, "A4", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	if _, err := f.NewSheet("Second"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Second", "B2", "x")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func TestReadSheetTyped(t *testing.T) {
	f, err := excelize.OpenFile(writeTestWorkbook(t))
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	tbl, err := ReadSheet(f, "Sheet1", true)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if tbl.Rows() != 4 || tbl.Cols() != 3 {
		t.Fatalf("Expected 4x3 table, got %dx%d", tbl.Rows(), tbl.Cols())
	}
	if tbl.Name() != "Sheet1" {
		t.Errorf("Expected name 'Sheet1', got %q", tbl.Name())
	}

	tests := []struct {
		row, col int
		kind     models.Kind
		text     string
	}{
		{0, 0, models.KindText, "Header1"},
		{0, 1, models.KindText, "Header2"},
		{0, 2, models.KindEmpty, ""},
		{1, 0, models.KindNumber, "100"},
		{1, 1, models.KindNumber, "200.5"},
		{2, 0, models.KindText, "Text"},
		{2, 2, models.KindBool, "True"},
		{3, 0, models.KindTime, "2024-03-01T00:00:00Z"},
	}

	for _, tt := range tests {
		v := tbl.Get(tt.row, tt.col)
		if v.Kind() != tt.kind {
			t.Errorf("Get(%d, %d).Kind() = %v, expected %v", tt.row, tt.col, v.Kind(), tt.kind)
		}
		if v.String() != tt.text {
			t.Errorf("Get(%d, %d) = %q, expected %q", tt.row, tt.col, v.String(), tt.text)
		}
	}
}

func TestReadSheetText(t *testing.T) {
	f, err := excelize.OpenFile(writeTestWorkbook(t))
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	tbl, err := ReadSheet(f, "Sheet1", false)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if v := tbl.Get(1, 0); v.Kind() != models.KindText || v.String() != "100" {
		t.Errorf("Expected text '100', got %v %q", v.Kind(), v.String())
	}
}

func TestReadWorkbook(t *testing.T) {
	f, err := excelize.OpenFile(writeTestWorkbook(t))
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	tables, err := ReadWorkbook(f, Options{InferTypes: true, Workers: 4})
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tables))
	}
	if tables[0].Name() != "Sheet1" || tables[1].Name() != "Second" {
		t.Errorf("Tables out of workbook order: %q, %q", tables[0].Name(), tables[1].Name())
	}
	if tables[1].Rows() != 2 || tables[1].Cols() != 2 {
		t.Errorf("Expected Second to be 2x2, got %dx%d", tables[1].Rows(), tables[1].Cols())
	}

	only, err := ReadWorkbook(f, Options{Include: func(s string) bool { return s == "Second" }})
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(only) != 1 || only[0].Name() != "Second" {
		t.Errorf("Include filter not applied, got %d tables", len(only))
	}
}

func TestReadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadSheet(f, "Nope", true); err == nil {
		t.Errorf("Expected error for missing sheet")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		kind     models.Kind
		expected string
	}{
		{"123", models.KindNumber, "123"},
		{"123.45", models.KindNumber, "123.45"},
		{"-100", models.KindNumber, "-100"},
		{"hello", models.KindText, "hello"},
		{"", models.KindText, ""},
		{"+1.5e3", models.KindNumber, "1500"},
		{".5", models.KindNumber, "0.5"},
		{"NaN", models.KindText, "NaN"},
		{"Nan", models.KindText, "Nan"},
		{"inf", models.KindText, "inf"},
		{"-Infinity", models.KindText, "-Infinity"},
		{"0x1p4", models.KindText, "0x1p4"},
		{"1e", models.KindText, "1e"},
		{"1e999", models.KindText, "1e999"},
		{".", models.KindText, "."},
	}

	for _, tt := range tests {
		result := parseValue(tt.input, tt.input)
		if result.Kind() != tt.kind || result.String() != tt.expected {
			t.Errorf("parseValue(%q) = %v %q, expected %v %q",
				tt.input, result.Kind(), result.String(), tt.kind, tt.expected)
		}
	}
}

func TestTypedValue(t *testing.T) {
	tests := []struct {
		cellType  excelize.CellType
		formatted string
		raw       string
		expected  models.Value
	}{
		{excelize.CellTypeBool, "TRUE", "1", models.Bool(true)},
		{excelize.CellTypeBool, "FALSE", "0", models.Bool(false)},
		{excelize.CellTypeSharedString, "007", "007", models.Text("007")},
		{excelize.CellTypeInlineString, "42", "42", models.Text("42")},
		{excelize.CellTypeUnset, "1,234.50", "1234.5", models.Number(1234.5)},
		{excelize.CellTypeNumber, "12%", "0.12", models.Number(0.12)},
		{excelize.CellTypeError, "#DIV/0!", "#DIV/0!", models.Text("#DIV/0!")},
		{excelize.CellTypeDate, "", "2024-03-01T00:00:00Z", models.Time(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		result := typedValue(tt.cellType, tt.formatted, tt.raw)
		if !result.Equal(tt.expected) {
			t.Errorf("typedValue(%v, %q, %q) = %v %q, expected %v %q",
				tt.cellType, tt.formatted, tt.raw, result.Kind(), result, tt.expected.Kind(), tt.expected)
		}
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"h:mm AM/PM", true},
		{"0.00", false},
		{"#,##0 \"days\"", false},
		{"[Red]0.00", false},
		{"[$-409]d-mmm-yy", true},
	}

	for _, tt := range tests {
		if result := isDateFormatCode(tt.code); result != tt.expected {
			t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

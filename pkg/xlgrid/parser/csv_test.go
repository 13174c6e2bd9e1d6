package parser

import (
	"strings"
	"testing"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

func TestReadCSV(t *testing.T) {
	input := "name,qty,active\nwidget,3,TRUE\ngadget,,false,extra\n"

	tbl, err := ReadCSV(strings.NewReader(input), "data", Options{InferTypes: true})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if tbl.Name() != "data" || tbl.Rows() != 3 || tbl.Cols() != 4 {
		t.Fatalf("Expected 3x4 table 'data', got %q %dx%d", tbl.Name(), tbl.Rows(), tbl.Cols())
	}

	tests := []struct {
		row, col int
		expected models.Value
	}{
		{0, 0, models.Text("name")},
		{1, 1, models.Number(3)},
		{1, 2, models.Bool(true)},
		{1, 3, models.Empty()},
		{2, 1, models.Empty()},
		{2, 2, models.Bool(false)},
		{2, 3, models.Text("extra")},
	}
	for _, tt := range tests {
		if v := tbl.Get(tt.row, tt.col); !v.Equal(tt.expected) {
			t.Errorf("Get(%d, %d) = %v %q, expected %v %q", tt.row, tt.col, v.Kind(), v, tt.expected.Kind(), tt.expected)
		}
	}
}

func TestReadCSVKeepsNonDecimalWordsAsText(t *testing.T) {
	input := "name,rate\nNan,inf\nInfinity,0x1p4\n"

	tbl, err := ReadCSV(strings.NewReader(input), "rates", Options{InferTypes: true})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	for _, cell := range [][2]int{{1, 0}, {1, 1}, {2, 0}, {2, 1}} {
		v := tbl.Get(cell[0], cell[1])
		if v.Kind() != models.KindText {
			t.Errorf("Get(%d, %d) = %v %q, expected text", cell[0], cell[1], v.Kind(), v)
		}
	}
	if v := tbl.Get(2, 1); v.String() != "0x1p4" {
		t.Errorf("Expected '0x1p4' kept verbatim, got %q", v.String())
	}
}

func TestReadCSVTextMode(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a;1\n"), "semi", Options{Comma: ';'})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if v := tbl.Get(0, 1); v.Kind() != models.KindText || v.String() != "1" {
		t.Errorf("Expected text '1', got %v %q", v.Kind(), v.String())
	}
}

func TestReadCSVEmpty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""), "empty", Options{})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if tbl.Rows() != 0 || tbl.Cols() != 0 {
		t.Errorf("Expected empty table, got %dx%d", tbl.Rows(), tbl.Cols())
	}
}

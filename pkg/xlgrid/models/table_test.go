package models

import (
	"testing"
)

func TestTableFromRows(t *testing.T) {
	tbl := TableFromRows("Sheet1", [][]Value{
		{Text("a"), Text("b"), Text("c")},
		{Number(1)},
		nil,
	})

	if tbl.Name() != "Sheet1" {
		t.Errorf("Name() = %q, expected %q", tbl.Name(), "Sheet1")
	}
	if tbl.Rows() != 3 || tbl.Cols() != 3 {
		t.Fatalf("shape = %dx%d, expected 3x3", tbl.Rows(), tbl.Cols())
	}
	if v := tbl.Get(0, 2); v.String() != "c" {
		t.Errorf("Get(0, 2) = %q, expected %q", v.String(), "c")
	}
	if v := tbl.Get(1, 0); v.String() != "1" {
		t.Errorf("Get(1, 0) = %q, expected %q", v.String(), "1")
	}
	if v := tbl.Get(1, 2); !v.IsEmpty() {
		t.Errorf("padded cell should be empty, got %v", v.Kind())
	}
	if v := tbl.Get(5, 5); !v.IsEmpty() {
		t.Errorf("out of range Get should be empty, got %v", v.Kind())
	}
}

func TestTableSet(t *testing.T) {
	tbl := NewTable("t", 2, 2)
	if err := tbl.Set(1, 1, Bool(true)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, ok := tbl.Get(1, 1).Boolean(); !ok || !v {
		t.Errorf("Get(1, 1) after Set = %v, expected true", tbl.Get(1, 1))
	}
	if err := tbl.Set(2, 0, Text("x")); err == nil {
		t.Errorf("Set outside the table should fail")
	}
	if err := tbl.Set(0, -1, Text("x")); err == nil {
		t.Errorf("Set with negative index should fail")
	}
}

func TestNewTableNegativeShape(t *testing.T) {
	tbl := NewTable("t", -1, 3)
	if tbl.Rows() != 0 || tbl.Cols() != 3 {
		t.Errorf("shape = %dx%d, expected 0x3", tbl.Rows(), tbl.Cols())
	}
}

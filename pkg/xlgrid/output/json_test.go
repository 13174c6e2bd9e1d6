package output

import (
	"strings"
	"testing"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookData{
		BookName: "book.xlsx",
		Sheets: []models.SheetData{{
			Name:  "Sheet1",
			Rows:  1,
			Cols:  2,
			Cells: []models.CellRow{{R: 1, C: map[string]models.Value{"A": models.Text("x"), "B": models.Number(1)}}},
		}},
	}

	data, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	expected := `{"book_name":"book.xlsx","sheets":[{"name":"Sheet1","rows":1,"cols":2,"cells":[{"r":1,"c":{"A":"x","B":1}}]}]}`
	if string(data) != expected {
		t.Errorf("ToJSON = %s, expected %s", data, expected)
	}

	pretty, err := SheetToJSON(&wb.Sheets[0], true)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"name\": \"Sheet1\"") {
		t.Errorf("SheetToJSON pretty output not indented: %s", pretty)
	}
}

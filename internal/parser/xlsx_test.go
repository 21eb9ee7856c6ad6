package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// ----------------------------------------------------------------------------
// ParseWorkbook Tests
// ----------------------------------------------------------------------------

func workbookBytes(t *testing.T, cells map[string]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for ref, val := range cells {
		if err := f.SetCellValue("Sheet1", ref, val); err != nil {
			t.Fatalf("SetCellValue(%s) error = %v", ref, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := workbookBytes(t, map[string]any{
		"A1": "Species",
		"B1": "Width",
		"A2": "Tyrannosaurus rex",
		"B2": 12.5,
	})

	table, err := ParseWorkbook(data, "specimens.xlsx")
	if err != nil {
		t.Fatalf("ParseWorkbook() error = %v", err)
	}
	if !equalStrings(table.Headers, []string{"Species", "Width"}) {
		t.Errorf("Headers = %v", table.Headers)
	}
	if table.RowCount != 1 {
		t.Fatalf("RowCount = %d, want 1", table.RowCount)
	}
	if table.Rows[0][0] != "Tyrannosaurus rex" {
		t.Errorf("cell = %q", table.Rows[0][0])
	}
	if table.SourceName != "specimens.xlsx" {
		t.Errorf("SourceName = %q", table.SourceName)
	}
}

func TestParseWorkbookEmptyInput(t *testing.T) {
	if _, err := ParseWorkbook(nil, "empty.xlsx"); err == nil {
		t.Fatal("ParseWorkbook() expected error for empty input")
	}
}

func TestParseWorkbookNotAWorkbook(t *testing.T) {
	if _, err := ParseWorkbook([]byte("Species,Width\n"), "fake.xlsx"); err == nil {
		t.Fatal("ParseWorkbook() expected error for non-zip input")
	}
}

func TestIsWorkbook(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"specimens.xlsx", true},
		{"SPECIMENS.XLSX", true},
		{"macros.xlsm", true},
		{"specimens.csv", false},
		{"specimens", false},
	}

	for _, tt := range tests {
		if got := IsWorkbook(tt.name); got != tt.want {
			t.Errorf("IsWorkbook(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

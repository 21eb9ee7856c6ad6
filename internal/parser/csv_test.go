package parser

import (
	"errors"
	"testing"
	"unicode/utf16"
)

// ----------------------------------------------------------------------------
// Parse Tests
// ----------------------------------------------------------------------------

func TestParseBasicCSV(t *testing.T) {
	data := []byte("Species,Element,Width\nTyrannosaurus rex,Tooth,12.5\n")

	table, err := Parse(data, "specimens.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantHeaders := []string{"Species", "Element", "Width"}
	if !equalStrings(table.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", table.Headers, wantHeaders)
	}
	if table.RowCount != 1 {
		t.Fatalf("RowCount = %d, want 1", table.RowCount)
	}
	wantRow := []string{"Tyrannosaurus rex", "Tooth", "12.5"}
	if !equalStrings(table.Rows[0], wantRow) {
		t.Errorf("Rows[0] = %v, want %v", table.Rows[0], wantRow)
	}
	if table.SourceName != "specimens.csv" {
		t.Errorf("SourceName = %q, want %q", table.SourceName, "specimens.csv")
	}
	if table.DelimiterLabel != "Comma (,)" {
		t.Errorf("DelimiterLabel = %q, want %q", table.DelimiterLabel, "Comma (,)")
	}
}

func TestParseSemicolonFile(t *testing.T) {
	data := []byte("Species;Width\nAmmonite;4,2\n")

	table, err := Parse(data, "export.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if table.DelimiterLabel != "Semicolon (;)" {
		t.Errorf("DelimiterLabel = %q, want %q", table.DelimiterLabel, "Semicolon (;)")
	}
	if got := table.Rows[0][1]; got != "4,2" {
		t.Errorf("cell = %q, want %q", got, "4,2")
	}
}

func TestParseRaggedAndBlankRows(t *testing.T) {
	data := []byte("a,b,c\n1,2\n\n   ,  ,\n4,5,6,7\n")

	table, err := Parse(data, "ragged.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// The short and long rows survive; fully blank rows do not.
	if table.RowCount != 2 {
		t.Fatalf("RowCount = %d, want 2", table.RowCount)
	}
	if !equalStrings(table.Rows[0], []string{"1", "2"}) {
		t.Errorf("Rows[0] = %v", table.Rows[0])
	}
	if !equalStrings(table.Rows[1], []string{"4", "5", "6", "7"}) {
		t.Errorf("Rows[1] = %v", table.Rows[1])
	}
}

func TestParseTrimsCells(t *testing.T) {
	data := []byte("Species , Width \n  T. rex ,  12  \n")

	table, err := Parse(data, "padded.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !equalStrings(table.Headers, []string{"Species", "Width"}) {
		t.Errorf("Headers = %v", table.Headers)
	}
	if !equalStrings(table.Rows[0], []string{"T. rex", "12"}) {
		t.Errorf("Rows[0] = %v", table.Rows[0])
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(nil, "empty.csv")
	if err == nil {
		t.Fatal("Parse() expected error for empty input")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Source != "empty.csv" {
		t.Errorf("Source = %q, want %q", perr.Source, "empty.csv")
	}
}

// ----------------------------------------------------------------------------
// Encoding Trial Tests
// ----------------------------------------------------------------------------

func TestParseUTF8WithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Species,Width\nT. rex,5\n")...)

	table, err := Parse(data, "bom.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// The BOM must not leak into the first header.
	if table.Headers[0] != "Species" {
		t.Errorf("Headers[0] = %q, want %q", table.Headers[0], "Species")
	}
}

func TestParseUTF16(t *testing.T) {
	text := "Species,Width\nMosasaurus,88\n"

	var data []byte
	data = append(data, 0xFE, 0xFF) // big-endian BOM
	for _, u := range utf16.Encode([]rune(text)) {
		data = append(data, byte(u>>8), byte(u))
	}

	table, err := Parse(data, "utf16.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if table.Headers[0] != "Species" {
		t.Errorf("Headers[0] = %q, want %q", table.Headers[0], "Species")
	}
	if table.Rows[0][0] != "Mosasaurus" {
		t.Errorf("cell = %q, want %q", table.Rows[0][0], "Mosasaurus")
	}
}

func TestParseWindows1252(t *testing.T) {
	// "Café,Width" with an 0xE9 e-acute is invalid UTF-8 and carries no BOM,
	// so decoding has to fall through to Windows-1252.
	data := []byte("Caf\xe9,Width\nT. rex,5\n")

	table, err := Parse(data, "legacy.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if table.Headers[0] != "Café" {
		t.Errorf("Headers[0] = %q, want %q", table.Headers[0], "Café")
	}
}

func TestParseHeaderOnly(t *testing.T) {
	table, err := Parse([]byte("Species,Width\n"), "headers.csv")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if table.RowCount != 0 {
		t.Errorf("RowCount = %d, want 0", table.RowCount)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

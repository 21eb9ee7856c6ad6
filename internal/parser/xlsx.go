package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads the first worksheet of an XLSX workbook into the same
// table shape the CSV parser produces. The first non-blank row is the
// header row.
func ParseWorkbook(data []byte, sourceName string) (*ParsedTable, error) {
	if len(data) == 0 {
		return nil, &ParseError{Source: sourceName, Err: errors.New("empty input")}
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Source: sourceName, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Source: sourceName, Err: errors.New("workbook has no sheets")}
	}
	sheet := sheets[0]

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Source: sourceName, Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}

	var headers []string
	var rows [][]string
	for _, record := range records {
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if isBlankRecord(record) {
			continue
		}
		if headers == nil {
			headers = record
			continue
		}
		rows = append(rows, record)
	}

	if headers == nil {
		return nil, &ParseError{Source: sourceName, Err: errors.New("no header row found")}
	}

	return &ParsedTable{
		Headers:        headers,
		Rows:           rows,
		SourceName:     sourceName,
		DelimiterLabel: fmt.Sprintf("Worksheet (%s)", sheet),
		RowCount:       len(rows),
	}, nil
}

// IsWorkbook reports whether the file name has a spreadsheet extension the
// workbook parser handles.
func IsWorkbook(fileName string) bool {
	name := strings.ToLower(fileName)
	return strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xlsm")
}

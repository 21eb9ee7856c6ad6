// Package parser turns raw spreadsheet bytes into a table of string cells.
//
// The CSV path tries encodings in a fixed priority order (UTF-8, UTF-16,
// Windows-1252, ISO-8859-1), detects the delimiter with a cheap scoring
// heuristic over the first lines, then parses the full text with an
// RFC 4180 reader. The XLSX path reads the first worksheet into the same
// table shape. Parsing reads the input bytes once and has no other side
// effects.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParsedTable is the immutable result of parsing one source file.
// Headers are as read (duplicates possible, tolerated downstream by
// first-index lookup); rows may have fewer or more cells than headers when
// the source is malformed, no reconciliation happens here.
type ParsedTable struct {
	Headers        []string
	Rows           [][]string
	SourceName     string
	DelimiterLabel string
	RowCount       int
}

// ParseError is the single fatal failure of the import pipeline: no
// supported encoding/delimiter combination produced a parseable table.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes and parses raw CSV bytes into a table. Encodings are tried
// once each in priority order; the first for which both decode and parse
// succeed wins. The last failure is surfaced when all attempts fail.
func Parse(data []byte, sourceName string) (*ParsedTable, error) {
	if len(data) == 0 {
		return nil, &ParseError{Source: sourceName, Err: errors.New("empty input")}
	}

	var lastErr error
	for _, enc := range encodingTrialOrder {
		text, err := enc.decode(data)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", enc.name, err)
			continue
		}
		table, err := parseText(text, sourceName)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", enc.name, err)
			continue
		}
		return table, nil
	}

	return nil, &ParseError{Source: sourceName, Err: lastErr}
}

// parseText detects the delimiter and runs the structured RFC 4180 parse.
func parseText(text string, sourceName string) (*ParsedTable, error) {
	delim := DetectDelimiter(sampleLines(text))

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var headers []string
	var rows [][]string

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

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
		return nil, errors.New("no header row found")
	}

	return &ParsedTable{
		Headers:        headers,
		Rows:           rows,
		SourceName:     sourceName,
		DelimiterLabel: DelimiterLabel(delim),
		RowCount:       len(rows),
	}, nil
}

// isBlankRecord reports whether every cell is empty after trimming.
func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}

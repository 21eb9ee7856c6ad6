// Package core builds validated import drafts from mapped spreadsheet rows
// and drives the commit of selected drafts into a sink.
//
// This package is the heart of the importer, containing all domain logic
// independent of any UI or transport layer. Validation is a total function:
// every row yields a draft, and every problem is attached to the draft as
// an error or warning instead of aborting the run. Only the parser can fail
// the pipeline as a whole.
package core

import (
	"fmt"

	"github.com/paleodesk/fossilimport/internal/specimen"
)

// Severity is the two-level error taxonomy. Blocking errors deselect the
// row for import; warning-severity errors are advisory.
type Severity int

const (
	SeverityBlocking Severity = iota
	SeverityWarning
)

// String returns the display name of the severity.
func (s Severity) String() string {
	if s == SeverityBlocking {
		return "BLOCKING"
	}
	return "WARNING"
}

// ValidationError records one per-field validation failure on a row.
type ValidationError struct {
	Field    specimen.Field
	RawValue string
	Message  string
	Severity Severity
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field.DisplayName(), e.Message)
}

// ValidationWarning records one advisory finding on a row. Warnings never
// block import. SuggestedCorrection is set when the system has a normalized
// replacement value, e.g. a corrected unit code.
type ValidationWarning struct {
	Field               specimen.Field
	RawValue            string
	Message             string
	SuggestedCorrection string
}

// Draft is one candidate specimen record derived from one source row.
// RowIndex is the 0-based position in the source rows, stable within an
// import session. FieldValues holds only populated fields, raw or partially
// normalized; coercion to concrete types is the import driver's job.
//
// SelectedForImport defaults to true iff the row has no blocking error and
// may be toggled by the user before commit; a draft is otherwise immutable.
type Draft struct {
	RowIndex          int
	SelectedForImport bool
	FieldValues       map[specimen.Field]string
	Errors            []ValidationError
	Warnings          []ValidationWarning
}

// HasBlocking reports whether any blocking-severity error is attached.
func (d *Draft) HasBlocking() bool {
	for _, e := range d.Errors {
		if e.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}

// Value returns the extracted value for a field, if populated.
func (d *Draft) Value(f specimen.Field) (string, bool) {
	v, ok := d.FieldValues[f]
	return v, ok
}

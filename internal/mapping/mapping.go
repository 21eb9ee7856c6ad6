// Package mapping assigns parsed column headers to specimen fields.
//
// AutoMap proposes one source column per field from the field's alias
// dictionary using exact, substring, and fuzzy matching; a human reviews
// anything below the auto-confirm threshold. Configurations are immutable
// values: updating one field's mapping produces a new configuration, so a
// caller holding a prior value never observes the change.
package mapping

import (
	"github.com/paleodesk/fossilimport/internal/parser"
	"github.com/paleodesk/fossilimport/internal/specimen"
)

// autoConfirmThreshold is the confidence at or above which a proposed
// mapping skips human review. Only exact and near-exact matches reach it.
const autoConfirmThreshold = 0.9

// FieldMapping binds one specimen field to zero or more source columns, in
// the order they were suggested or selected.
type FieldMapping struct {
	Field         specimen.Field
	SourceColumns []string
	Confirmed     bool
	Confidence    float64
}

// Mapped reports whether at least one source column feeds the field.
func (m FieldMapping) Mapped() bool { return len(m.SourceColumns) > 0 }

// Configuration holds exactly one mapping per specimen field, in field
// declaration order, plus a read-only reference to the parsed table.
type Configuration struct {
	Mappings []FieldMapping
	Table    *parser.ParsedTable
}

// AutoMap proposes a configuration for the table. For every field it scores
// every header against every alias and keeps the single best pair; ties
// keep the first found in header-then-alias order. Deterministic, no side
// effects.
func AutoMap(table *parser.ParsedTable) *Configuration {
	fields := specimen.Fields()
	mappings := make([]FieldMapping, 0, len(fields))

	for _, field := range fields {
		bestHeader := ""
		bestConfidence := 0.0

		for _, header := range table.Headers {
			for _, alias := range field.Aliases() {
				if c := MatchConfidence(header, alias); c > bestConfidence {
					bestConfidence = c
					bestHeader = header
				}
			}
		}

		var cols []string
		if bestConfidence > 0 {
			cols = []string{bestHeader}
		}
		mappings = append(mappings, FieldMapping{
			Field:         field,
			SourceColumns: cols,
			Confirmed:     bestConfidence >= autoConfirmThreshold,
			Confidence:    bestConfidence,
		})
	}

	return &Configuration{Mappings: mappings, Table: table}
}

// Update returns a new configuration with one field's mapping replaced by
// the given columns, marked confirmed. The receiver is not modified.
func (c *Configuration) Update(field specimen.Field, columns []string) *Configuration {
	mappings := make([]FieldMapping, len(c.Mappings))
	copy(mappings, c.Mappings)

	confidence := 0.0
	if len(columns) > 0 {
		confidence = 1.0
	}
	for i := range mappings {
		if mappings[i].Field == field {
			mappings[i] = FieldMapping{
				Field:         field,
				SourceColumns: append([]string(nil), columns...),
				Confirmed:     true,
				Confidence:    confidence,
			}
			break
		}
	}

	return &Configuration{Mappings: mappings, Table: c.Table}
}

// MappingFor returns the mapping for the field.
func (c *Configuration) MappingFor(field specimen.Field) (FieldMapping, bool) {
	for _, m := range c.Mappings {
		if m.Field == field {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// MappedFields returns the fields with at least one source column, in
// declaration order.
func (c *Configuration) MappedFields() []specimen.Field {
	var out []specimen.Field
	for _, m := range c.Mappings {
		if m.Mapped() {
			out = append(out, m.Field)
		}
	}
	return out
}

// RequiredSatisfied reports whether every required field has at least one
// source column mapped.
func (c *Configuration) RequiredSatisfied() bool {
	for _, m := range c.Mappings {
		if m.Field.Required() && !m.Mapped() {
			return false
		}
	}
	return true
}

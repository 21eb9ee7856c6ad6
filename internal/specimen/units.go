package specimen

import "strings"

// Canonical unit tokens as they are serialized on specimen records.
const (
	SizeUnitMM   = "mm"
	SizeUnitCM   = "cm"
	SizeUnitInch = "inch"

	WeightUnitGram = "gr"
	WeightUnitKilo = "kg"
)

// sizeUnits maps spreadsheet spellings to canonical size unit tokens.
var sizeUnits = map[string]string{
	"millimeter":  SizeUnitMM,
	"millimeters": SizeUnitMM,
	"mm":          SizeUnitMM,
	"centimeter":  SizeUnitCM,
	"centimeters": SizeUnitCM,
	"cm":          SizeUnitCM,
	"inch":        SizeUnitInch,
	"inches":      SizeUnitInch,
	"in":          SizeUnitInch,
	`"`:           SizeUnitInch,
}

// weightUnits maps spreadsheet spellings to canonical weight unit tokens.
var weightUnits = map[string]string{
	"gram":      WeightUnitGram,
	"grams":     WeightUnitGram,
	"g":         WeightUnitGram,
	"gr":        WeightUnitGram,
	"kilogram":  WeightUnitKilo,
	"kilograms": WeightUnitKilo,
	"kg":        WeightUnitKilo,
}

// NormalizeSizeUnit maps raw text to a canonical size unit token.
// Unmatched input passes through unchanged and is treated as already
// normalized by callers.
func NormalizeSizeUnit(raw string) string {
	if canon, ok := sizeUnits[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canon
	}
	return raw
}

// NormalizeWeightUnit maps raw text to a canonical weight unit token.
// Unmatched input passes through unchanged.
func NormalizeWeightUnit(raw string) string {
	if canon, ok := weightUnits[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canon
	}
	return raw
}

package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/paleodesk/fossilimport/internal/mapping"
	"github.com/paleodesk/fossilimport/internal/specimen"
)

// Validation thresholds. Dimensions are sanity-checked in millimeters,
// weights in grams, monetary amounts in whole currency units.
const (
	maxPlausibleDimensionMM = 10_000
	maxPlausibleWeightGrams = 1_000_000
	maxPlausibleAmount      = 10_000_000
)

var (
	// Recognized date shapes, checked after a strict RFC 3339 parse fails.
	// dd/mm/yyyy and mm/dd/yyyy share a shape but are kept as separate
	// entries; which one a cell means cannot be decided here.
	dateShapes = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),     // ISO date
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), // dd/mm/yyyy
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), // mm/dd/yyyy
		regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`), // yyyy/mm/dd
	}

	isoDatePrefix  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	weightSuffixRe = regexp.MustCompile(`(?i)[0-9.]\s*(grams|kilograms|gr|kg|g)\s*$`)
)

// Validator turns mapped rows into import drafts. The fallback currency is
// injected so unresolvable currency codes behave the same everywhere
// instead of depending on ambient locale.
type Validator struct {
	FallbackCurrency specimen.Currency
}

// NewValidator returns a validator using the given fallback currency.
func NewValidator(fallback specimen.Currency) *Validator {
	return &Validator{FallbackCurrency: fallback}
}

// BuildDrafts produces one draft per table row, in source order. It is a
// total function: it never fails, and every problem is attached to the
// owning draft. The input configuration is read, never modified.
func (v *Validator) BuildDrafts(cfg *mapping.Configuration) []Draft {
	drafts := make([]Draft, 0, len(cfg.Table.Rows))
	for i, row := range cfg.Table.Rows {
		drafts = append(drafts, v.buildDraft(i, row, cfg))
	}
	return drafts
}

func (v *Validator) buildDraft(rowIndex int, row []string, cfg *mapping.Configuration) Draft {
	rc := &rowCheck{fallback: v.FallbackCurrency}
	rc.values = extractValues(row, cfg)

	rc.requireSpecies()
	rc.checkCoordinate(specimen.FieldLatitude, -90, 90)
	rc.checkCoordinate(specimen.FieldLongitude, -180, 180)
	rc.checkDimension(specimen.FieldWidth)
	rc.checkDimension(specimen.FieldHeight)
	rc.checkDimension(specimen.FieldLength)
	rc.checkWeight()
	rc.checkUnit(specimen.FieldSizeUnit, specimen.NormalizeSizeUnit)
	rc.checkUnit(specimen.FieldWeightUnit, specimen.NormalizeWeightUnit)
	rc.checkDate(specimen.FieldCollectionDate)
	rc.checkDate(specimen.FieldAcquisitionDate)
	rc.checkElement()
	rc.checkMethod()
	rc.checkAmount(specimen.FieldPricePaid)
	rc.checkAmount(specimen.FieldEstimatedValue)
	rc.checkCurrency(specimen.FieldPriceCurrency)
	rc.checkCurrency(specimen.FieldEstimatedCurrency)
	rc.checkPeriod()
	rc.checkFormatConversions()

	d := Draft{
		RowIndex:    rowIndex,
		FieldValues: rc.values,
		Errors:      rc.errs,
		Warnings:    rc.warns,
	}
	d.SelectedForImport = !d.HasBlocking()
	return d
}

// extractValues collects the per-field string values for one row. Columns
// are located by first-occurrence header lookup, so duplicate headers
// resolve to their first column. Blank cells are skipped; a field appears
// only when at least one non-blank value was collected. Multiple mapped
// columns join with ", ", except that the acquisition method first attempts
// the boolean flag decode.
func extractValues(row []string, cfg *mapping.Configuration) map[specimen.Field]string {
	values := make(map[specimen.Field]string)

	for _, m := range cfg.Mappings {
		if !m.Mapped() {
			continue
		}

		var parts []string
		byColumn := make(map[string]string, len(m.SourceColumns))
		for _, col := range m.SourceColumns {
			idx := headerIndex(cfg.Table.Headers, col)
			if idx < 0 || idx >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[idx])
			if cell == "" {
				continue
			}
			parts = append(parts, cell)
			byColumn[strings.ToLower(col)] = cell
		}
		if len(parts) == 0 {
			continue
		}

		if m.Field == specimen.FieldMethod {
			if token, ok := decodeMethodFlags(byColumn); ok {
				values[m.Field] = token
				continue
			}
		}
		values[m.Field] = strings.Join(parts, ", ")
	}

	return values
}

// headerIndex returns the first occurrence of name among the headers.
func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

// methodFlagOrder decodes per-column boolean flags into an acquisition
// method token. The first true flag in this order wins.
var methodFlagOrder = []struct {
	column string
	token  string
}{
	{"found", "found"},
	{"gift", "gifted"},
	{"bought", "purchased"},
	{"traded", "traded"},
}

// decodeMethodFlags inspects raw values keyed by lowercased column name for
// columns literally named found, bought, traded, gift. A column is true
// when its trimmed value is exactly "1" or equals "true" ignoring case.
func decodeMethodFlags(byColumn map[string]string) (string, bool) {
	for _, flag := range methodFlagOrder {
		raw, ok := byColumn[flag.column]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "1" || strings.EqualFold(raw, "true") {
			return flag.token, true
		}
	}
	return "", false
}

// rowCheck accumulates validation findings for one row.
type rowCheck struct {
	fallback specimen.Currency
	values   map[specimen.Field]string
	errs     []ValidationError
	warns    []ValidationWarning
}

func (rc *rowCheck) blocking(f specimen.Field, raw, msg string) {
	rc.errs = append(rc.errs, ValidationError{Field: f, RawValue: raw, Message: msg, Severity: SeverityBlocking})
}

func (rc *rowCheck) softError(f specimen.Field, raw, msg string) {
	rc.errs = append(rc.errs, ValidationError{Field: f, RawValue: raw, Message: msg, Severity: SeverityWarning})
}

func (rc *rowCheck) warn(f specimen.Field, raw, msg, suggestion string) {
	rc.warns = append(rc.warns, ValidationWarning{Field: f, RawValue: raw, Message: msg, SuggestedCorrection: suggestion})
}

// requireSpecies is the one check performed unconditionally: a blank or
// absent species blocks the row even though blanks never enter the value
// map.
func (rc *rowCheck) requireSpecies() {
	raw, ok := rc.values[specimen.FieldSpecies]
	if !ok || strings.TrimSpace(raw) == "" {
		rc.blocking(specimen.FieldSpecies, raw, "Species is required and cannot be empty")
	}
}

func (rc *rowCheck) checkCoordinate(f specimen.Field, min, max float64) {
	raw, ok := rc.values[f]
	if !ok {
		return
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		rc.softError(f, raw, fmt.Sprintf("Invalid %s format", strings.ToLower(f.DisplayName())))
		return
	}
	if val < min || val > max {
		rc.blocking(f, raw, fmt.Sprintf("%s must be between %g and %g", f.DisplayName(), min, max))
	}
}

func (rc *rowCheck) checkDimension(f specimen.Field) {
	raw, ok := rc.values[f]
	if !ok {
		return
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		rc.softError(f, raw, fmt.Sprintf("Invalid %s format", strings.ToLower(f.DisplayName())))
		return
	}
	if val < 0 {
		rc.blocking(f, raw, "Dimension cannot be negative")
		return
	}
	if val > maxPlausibleDimensionMM {
		rc.warn(f, raw, fmt.Sprintf("Unusually large %s: %.1f m; check the measurement unit",
			strings.ToLower(f.DisplayName()), val/1000), "")
	}
}

func (rc *rowCheck) checkWeight() {
	raw, ok := rc.values[specimen.FieldWeight]
	if !ok {
		return
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		rc.softError(specimen.FieldWeight, raw, "Invalid weight format")
		return
	}
	if val < 0 {
		rc.blocking(specimen.FieldWeight, raw, "Weight cannot be negative")
		return
	}
	if val > maxPlausibleWeightGrams {
		rc.warn(specimen.FieldWeight, raw,
			fmt.Sprintf("Unusually large weight: %.1f kg; check the measurement unit", val/1000), "")
	}
}

func (rc *rowCheck) checkUnit(f specimen.Field, normalize func(string) string) {
	raw, ok := rc.values[f]
	if !ok {
		return
	}
	if canon := normalize(raw); canon != raw {
		rc.warn(f, raw, fmt.Sprintf("%s will be stored as %q", f.DisplayName(), canon), canon)
	}
}

func (rc *rowCheck) checkDate(f specimen.Field) {
	raw, ok := rc.values[f]
	if !ok {
		return
	}
	if _, err := time.Parse(time.RFC3339, raw); err == nil {
		return
	}
	for _, shape := range dateShapes {
		if shape.MatchString(raw) {
			return
		}
	}
	rc.warn(f, raw, "Date format may not be recognized", "")
}

func (rc *rowCheck) checkElement() {
	raw, ok := rc.values[specimen.FieldElement]
	if !ok {
		return
	}
	if _, matched := specimen.ResolveElement(raw); !matched && !strings.EqualFold(raw, "other") {
		rc.warn(specimen.FieldElement, raw,
			fmt.Sprintf("Unknown fossil element %q, will be imported as Other", raw), "Other")
	}
}

func (rc *rowCheck) checkMethod() {
	raw, ok := rc.values[specimen.FieldMethod]
	if !ok {
		return
	}
	canon := specimen.NormalizeMethod(raw)
	if canon == strings.ToLower(raw) {
		return
	}
	if m, matched := specimen.ResolveMethod(canon); matched {
		rc.warn(specimen.FieldMethod, raw,
			fmt.Sprintf("Acquisition method will be recorded as %s", m), m.String())
	}
}

func (rc *rowCheck) checkAmount(f specimen.Field) {
	raw, ok := rc.values[f]
	if !ok {
		return
	}
	cleaned := cleanAmount(raw)
	val, err := strconv.ParseFloat(cleaned, 64)
	if cleaned == "" || err != nil {
		rc.softError(f, raw, fmt.Sprintf("Invalid %s format", strings.ToLower(f.DisplayName())))
		if cleaned != raw {
			rc.warn(f, raw, "Currency symbol removed", cleaned)
		}
		return
	}
	// Negative amounts only warn: refunds and trade-ins legitimately show
	// up as negatives in collection exports.
	if val < 0 {
		rc.softError(f, raw, fmt.Sprintf("Negative %s", strings.ToLower(f.DisplayName())))
	}
	if val > maxPlausibleAmount {
		rc.warn(f, raw, fmt.Sprintf("Unusually large %s", strings.ToLower(f.DisplayName())), "")
	}
	if cleaned != raw {
		rc.warn(f, raw, "Currency symbol removed", cleaned)
	}
}

// cleanAmount strips every character that is not a digit or a literal
// period. A leading minus survives so negative amounts stay negative.
func cleanAmount(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (rc *rowCheck) checkCurrency(f specimen.Field) {
	raw, ok := rc.values[f]
	if !ok {
		return
	}
	norm := specimen.NormalizeCurrency(raw)
	if norm == raw {
		return
	}
	cur, _ := specimen.ResolveCurrency(raw, rc.fallback)
	rc.warn(f, raw, fmt.Sprintf("Currency will be recorded as %s", cur.Code()), cur.Code())
}

// checkPeriod resolves the geological period for parity with the catalog
// screens but deliberately reports nothing; unknown periods import as free
// text.
func (rc *rowCheck) checkPeriod() {
	if raw, ok := rc.values[specimen.FieldPeriod]; ok {
		_, _ = specimen.ResolvePeriod(raw)
	}
}

// checkFormatConversions flags shapes the import driver will have to
// convert, independent of the per-field rules above.
func (rc *rowCheck) checkFormatConversions() {
	if raw, ok := rc.values[specimen.FieldWidth]; ok {
		if strings.ContainsRune(raw, 'x') || strings.Contains(raw, "×") {
			rc.warn(specimen.FieldWidth, raw,
				"Combined WxHxL format detected; the value will need splitting", "")
		}
	}

	for _, f := range []specimen.Field{
		specimen.FieldWidth, specimen.FieldHeight, specimen.FieldLength, specimen.FieldWeight,
	} {
		if raw, ok := rc.values[f]; ok && strings.Count(raw, ",") == 1 {
			rc.warn(f, raw, "European decimal separator detected", "")
		}
	}

	if raw, ok := rc.values[specimen.FieldWeight]; ok && weightSuffixRe.MatchString(raw) {
		rc.warn(specimen.FieldWeight, raw, "Weight carries a unit suffix; the unit will be extracted", "")
	}

	for _, f := range []specimen.Field{specimen.FieldCollectionDate, specimen.FieldAcquisitionDate} {
		if raw, ok := rc.values[f]; ok && !isoDatePrefix.MatchString(raw) {
			rc.warn(f, raw, "Date is not ISO formatted; yyyy-mm-dd is recommended", "")
		}
	}
}

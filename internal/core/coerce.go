package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paleodesk/fossilimport/internal/specimen"
)

// Date layouts the coercion accepts, tried in order after RFC 3339.
// Slash dates are read day-first, matching the exports this importer sees.
var coerceDateLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"2006/1/2",
}

// CoerceDraft converts a draft's raw field values into a strictly-typed
// specimen record. It applies the conversions the validator warned about
// (combined WxHxL splitting, European decimal commas, trailing weight
// units) and is lenient where the validator already flagged a value:
// unparseable numerics and dates coerce to absent rather than failing.
// The only hard failure is a blank species, which blocking validation
// should have filtered out before submission.
func CoerceDraft(d *Draft, fallback specimen.Currency) (*specimen.Specimen, error) {
	get := func(f specimen.Field) string {
		return strings.TrimSpace(d.FieldValues[f])
	}

	species := get(specimen.FieldSpecies)
	if species == "" {
		return nil, fmt.Errorf("row %d: species is empty", d.RowIndex)
	}

	sp := &specimen.Specimen{
		Species:     species,
		Genus:       get(specimen.FieldGenus),
		Family:      get(specimen.FieldFamily),
		Order:       get(specimen.FieldOrder),
		Class:       get(specimen.FieldClass),
		Description: get(specimen.FieldDescription),
		Nickname:    get(specimen.FieldNickname),
		Era:         get(specimen.FieldEra),
		Epoch:       get(specimen.FieldEpoch),
		Age:         get(specimen.FieldAge),
		Formation:   get(specimen.FieldFormation),
		Country:     get(specimen.FieldCountry),
		State:       get(specimen.FieldState),
		Locality:    get(specimen.FieldLocality),

		StorageLocation: get(specimen.FieldStorageLocation),
		Notes:           get(specimen.FieldNotes),
	}

	sp.Element, _ = specimen.ResolveElement(get(specimen.FieldElement))
	sp.Condition = specimen.ParseCondition(get(specimen.FieldCondition))

	if raw := get(specimen.FieldPeriod); raw != "" {
		if p, ok := specimen.ResolvePeriod(raw); ok {
			sp.Period = &p
		}
	}
	if raw := get(specimen.FieldMethod); raw != "" {
		if m, ok := specimen.ResolveMethod(raw); ok {
			sp.Method = &m
		}
	}

	sp.Latitude = parseFloatPtr(get(specimen.FieldLatitude))
	sp.Longitude = parseFloatPtr(get(specimen.FieldLongitude))

	sp.SizeUnit = specimen.NormalizeSizeUnit(get(specimen.FieldSizeUnit))
	sp.WeightUnit = specimen.NormalizeWeightUnit(get(specimen.FieldWeightUnit))

	coerceDimensions(sp, get(specimen.FieldWidth), get(specimen.FieldHeight), get(specimen.FieldLength))
	coerceWeight(sp, get(specimen.FieldWeight))

	sp.AcquisitionDate = parseDatePtr(get(specimen.FieldAcquisitionDate))
	sp.CollectionDate = parseDatePtr(get(specimen.FieldCollectionDate))

	sp.PricePaid = parseAmountPtr(get(specimen.FieldPricePaid))
	sp.EstimatedValue = parseAmountPtr(get(specimen.FieldEstimatedValue))
	if raw := get(specimen.FieldPriceCurrency); raw != "" {
		cur, _ := specimen.ResolveCurrency(raw, fallback)
		sp.PriceCurrency = &cur
	}
	if raw := get(specimen.FieldEstimatedCurrency); raw != "" {
		cur, _ := specimen.ResolveCurrency(raw, fallback)
		sp.EstimatedCurrency = &cur
	}

	return sp, nil
}

// coerceDimensions fills width/height/length, splitting a combined WxHxL
// width value across the three when the other two are absent.
func coerceDimensions(sp *specimen.Specimen, width, height, length string) {
	if (strings.ContainsRune(width, 'x') || strings.Contains(width, "×")) && height == "" && length == "" {
		parts := strings.FieldsFunc(width, func(r rune) bool {
			return r == 'x' || r == 'X' || r == '×'
		})
		if len(parts) > 0 {
			sp.Width = parseFloatPtr(strings.TrimSpace(parts[0]))
		}
		if len(parts) > 1 {
			sp.Height = parseFloatPtr(strings.TrimSpace(parts[1]))
		}
		if len(parts) > 2 {
			sp.Length = parseFloatPtr(strings.TrimSpace(parts[2]))
		}
		return
	}

	sp.Width = parseFloatPtr(width)
	sp.Height = parseFloatPtr(height)
	sp.Length = parseFloatPtr(length)
}

// coerceWeight parses the weight, extracting a trailing unit token into the
// weight unit when the spreadsheet put both in one cell.
func coerceWeight(sp *specimen.Specimen, raw string) {
	if raw == "" {
		return
	}
	if loc := weightSuffixRe.FindStringSubmatchIndex(raw); loc != nil {
		// The match starts at the digit preceding the unit token; keep it.
		number := raw[:loc[0]+1]
		unit := raw[loc[2]:loc[3]]
		sp.Weight = parseFloatPtr(number)
		if sp.WeightUnit == "" {
			sp.WeightUnit = specimen.NormalizeWeightUnit(unit)
		}
		return
	}
	sp.Weight = parseFloatPtr(raw)
}

// parseFloatPtr parses a float, tolerating a single European decimal comma.
// Unparseable input coerces to absent.
func parseFloatPtr(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseAmountPtr parses a monetary amount after stripping currency symbols.
func parseAmountPtr(raw string) *float64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleanAmount(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseDatePtr parses a date, trying the strict RFC 3339 instant first and
// the recognized layouts after. Unparseable input coerces to absent.
func parseDatePtr(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	for _, layout := range coerceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

package core

import (
	"testing"
	"time"

	"github.com/paleodesk/fossilimport/internal/specimen"
)

func draftWith(values map[specimen.Field]string) *Draft {
	return &Draft{
		SelectedForImport: true,
		FieldValues:       values,
	}
}

// ----------------------------------------------------------------------------
// CoerceDraft Tests
// ----------------------------------------------------------------------------

func TestCoerceDraftBasicFields(t *testing.T) {
	d := draftWith(map[specimen.Field]string{
		specimen.FieldSpecies:  "Tyrannosaurus rex",
		specimen.FieldNickname: "Sue",
		specimen.FieldElement:  "tooth",
		specimen.FieldWidth:    "12.5",
		specimen.FieldLatitude: "46.5",
	})

	sp, err := CoerceDraft(d, specimen.CurrencyUSD)
	if err != nil {
		t.Fatalf("CoerceDraft() error = %v", err)
	}
	if sp.Species != "Tyrannosaurus rex" {
		t.Errorf("Species = %q", sp.Species)
	}
	if sp.Element != specimen.ElementTooth {
		t.Errorf("Element = %v, want Tooth", sp.Element)
	}
	if sp.Width == nil || *sp.Width != 12.5 {
		t.Errorf("Width = %v, want 12.5", sp.Width)
	}
	if sp.Latitude == nil || *sp.Latitude != 46.5 {
		t.Errorf("Latitude = %v, want 46.5", sp.Latitude)
	}
	if sp.Label() != "Sue" {
		t.Errorf("Label() = %q, want nickname", sp.Label())
	}
}

func TestCoerceDraftEmptySpeciesFails(t *testing.T) {
	d := draftWith(map[specimen.Field]string{
		specimen.FieldSpecies: "   ",
	})
	if _, err := CoerceDraft(d, specimen.CurrencyUSD); err == nil {
		t.Fatal("CoerceDraft() expected error for blank species")
	}
}

func TestCoerceDraftSplitsCombinedDimensions(t *testing.T) {
	tests := []struct {
		name  string
		width string
		wantW float64
		wantH float64
		wantL float64
	}{
		{name: "lowercase x", width: "12.5x10x8", wantW: 12.5, wantH: 10, wantL: 8},
		{name: "multiplication sign", width: "12×10×8", wantW: 12, wantH: 10, wantL: 8},
		{name: "spaces around separator", width: "12 x 10 x 8", wantW: 12, wantH: 10, wantL: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWith(map[specimen.Field]string{
				specimen.FieldSpecies: "Ammonite",
				specimen.FieldWidth:   tt.width,
			})
			sp, err := CoerceDraft(d, specimen.CurrencyUSD)
			if err != nil {
				t.Fatalf("CoerceDraft() error = %v", err)
			}
			if sp.Width == nil || *sp.Width != tt.wantW {
				t.Errorf("Width = %v, want %v", sp.Width, tt.wantW)
			}
			if sp.Height == nil || *sp.Height != tt.wantH {
				t.Errorf("Height = %v, want %v", sp.Height, tt.wantH)
			}
			if sp.Length == nil || *sp.Length != tt.wantL {
				t.Errorf("Length = %v, want %v", sp.Length, tt.wantL)
			}
		})
	}
}

func TestCoerceDraftKeepsExplicitDimensions(t *testing.T) {
	// When height is present the width is not treated as combined; it fails
	// float parsing and coerces to absent instead.
	d := draftWith(map[specimen.Field]string{
		specimen.FieldSpecies: "Ammonite",
		specimen.FieldWidth:   "12x10x8",
		specimen.FieldHeight:  "33",
	})
	sp, err := CoerceDraft(d, specimen.CurrencyUSD)
	if err != nil {
		t.Fatalf("CoerceDraft() error = %v", err)
	}
	if sp.Width != nil {
		t.Errorf("Width = %v, want nil", sp.Width)
	}
	if sp.Height == nil || *sp.Height != 33 {
		t.Errorf("Height = %v, want 33", sp.Height)
	}
}

func TestCoerceDraftWeightSuffix(t *testing.T) {
	tests := []struct {
		name     string
		weight   string
		unit     string // pre-set weight unit value, if any
		wantVal  float64
		wantUnit string
	}{
		{name: "gram suffix", weight: "500 g", wantVal: 500, wantUnit: "gr"},
		{name: "kilogram word suffix", weight: "1.2 kilograms", wantVal: 1.2, wantUnit: "kg"},
		{name: "no space before unit", weight: "500g", wantVal: 500, wantUnit: "gr"},
		{name: "explicit unit column wins", weight: "500 g", unit: "kg", wantVal: 500, wantUnit: "kg"},
		{name: "plain number leaves unit alone", weight: "340.5", wantVal: 340.5, wantUnit: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := map[specimen.Field]string{
				specimen.FieldSpecies: "Trilobite",
				specimen.FieldWeight:  tt.weight,
			}
			if tt.unit != "" {
				values[specimen.FieldWeightUnit] = tt.unit
			}
			sp, err := CoerceDraft(draftWith(values), specimen.CurrencyUSD)
			if err != nil {
				t.Fatalf("CoerceDraft() error = %v", err)
			}
			if sp.Weight == nil || *sp.Weight != tt.wantVal {
				t.Errorf("Weight = %v, want %v", sp.Weight, tt.wantVal)
			}
			if sp.WeightUnit != tt.wantUnit {
				t.Errorf("WeightUnit = %q, want %q", sp.WeightUnit, tt.wantUnit)
			}
		})
	}
}

func TestCoerceDraftEuropeanDecimal(t *testing.T) {
	d := draftWith(map[specimen.Field]string{
		specimen.FieldSpecies: "Ammonite",
		specimen.FieldWidth:   "4,5",
	})
	sp, err := CoerceDraft(d, specimen.CurrencyUSD)
	if err != nil {
		t.Fatalf("CoerceDraft() error = %v", err)
	}
	if sp.Width == nil || *sp.Width != 4.5 {
		t.Errorf("Width = %v, want 4.5", sp.Width)
	}
}

func TestCoerceDraftDates(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string // yyyy-mm-dd of the expected date; empty means absent
	}{
		{name: "iso date", raw: "2023-05-01", want: "2023-05-01"},
		{name: "rfc3339 instant", raw: "2023-05-01T10:30:00Z", want: "2023-05-01"},
		{name: "day-first slash date", raw: "2/1/2023", want: "2023-01-02"},
		{name: "year-first slash date", raw: "2023/5/1", want: "2023-05-01"},
		{name: "prose date coerces to absent", raw: "May 1st 2023", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWith(map[specimen.Field]string{
				specimen.FieldSpecies:        "Trilobite",
				specimen.FieldCollectionDate: tt.raw,
			})
			sp, err := CoerceDraft(d, specimen.CurrencyUSD)
			if err != nil {
				t.Fatalf("CoerceDraft() error = %v", err)
			}
			if tt.want == "" {
				if sp.CollectionDate != nil {
					t.Errorf("CollectionDate = %v, want nil", sp.CollectionDate)
				}
				return
			}
			if sp.CollectionDate == nil {
				t.Fatal("CollectionDate = nil")
			}
			if got := sp.CollectionDate.Format(time.DateOnly); got != tt.want {
				t.Errorf("CollectionDate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCoerceDraftMoney(t *testing.T) {
	d := draftWith(map[specimen.Field]string{
		specimen.FieldSpecies:           "Mosasaurus",
		specimen.FieldPricePaid:         "$1,200.50",
		specimen.FieldPriceCurrency:     "€",
		specimen.FieldEstimatedValue:    "junk",
		specimen.FieldEstimatedCurrency: "doubloons",
	})
	sp, err := CoerceDraft(d, specimen.CurrencyEUR)
	if err != nil {
		t.Fatalf("CoerceDraft() error = %v", err)
	}
	if sp.PricePaid == nil || *sp.PricePaid != 1200.50 {
		t.Errorf("PricePaid = %v, want 1200.50", sp.PricePaid)
	}
	if sp.PriceCurrency == nil || *sp.PriceCurrency != specimen.CurrencyEUR {
		t.Errorf("PriceCurrency = %v, want EUR", sp.PriceCurrency)
	}
	if sp.EstimatedValue != nil {
		t.Errorf("EstimatedValue = %v, want nil", sp.EstimatedValue)
	}
	// Unresolvable code falls back to the injected currency.
	if sp.EstimatedCurrency == nil || *sp.EstimatedCurrency != specimen.CurrencyEUR {
		t.Errorf("EstimatedCurrency = %v, want fallback EUR", sp.EstimatedCurrency)
	}
}

func TestCoerceDraftMethodAndPeriod(t *testing.T) {
	d := draftWith(map[specimen.Field]string{
		specimen.FieldSpecies: "Trilobite",
		specimen.FieldMethod:  "bought",
		specimen.FieldPeriod:  "Cambrian",
	})
	sp, err := CoerceDraft(d, specimen.CurrencyUSD)
	if err != nil {
		t.Fatalf("CoerceDraft() error = %v", err)
	}
	if sp.Method == nil || *sp.Method != specimen.MethodPurchased {
		t.Errorf("Method = %v, want Purchased", sp.Method)
	}
	if sp.Period == nil || *sp.Period != specimen.PeriodCambrian {
		t.Errorf("Period = %v, want Cambrian", sp.Period)
	}
}

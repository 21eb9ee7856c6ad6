package specimen

import "time"

// Specimen is the strictly-typed record an import driver produces from a
// validated draft before persistence. Pointer fields distinguish "absent"
// from zero; the validator only checks string shape, coercion to these
// types happens in the driver.
type Specimen struct {
	Species string
	Genus   string
	Family  string
	Order   string
	Class   string

	Element     Element
	Condition   Condition
	Description string
	Nickname    string

	Era       string
	Period    *Period
	Epoch     string
	Age       string
	Formation string

	Country   string
	State     string
	Locality  string
	Latitude  *float64
	Longitude *float64

	Width      *float64
	Height     *float64
	Length     *float64
	SizeUnit   string
	Weight     *float64
	WeightUnit string

	Method          *Method
	AcquisitionDate *time.Time
	CollectionDate  *time.Time

	PricePaid         *float64
	PriceCurrency     *Currency
	EstimatedValue    *float64
	EstimatedCurrency *Currency

	StorageLocation string
	Notes           string
}

// Label returns a short human-readable identifier for progress reporting:
// the nickname when present, otherwise the species.
func (s *Specimen) Label() string {
	if s.Nickname != "" {
		return s.Nickname
	}
	return s.Species
}

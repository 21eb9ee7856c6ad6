// Package specimen defines the domain reference data for fossil specimen
// records: the closed set of importable fields with their header aliases,
// and the reference enumerations (element, currency, acquisition method,
// geological period, units, condition) with data-driven resolution tables.
//
// This package has no I/O and no dependency on the import pipeline; it can
// be used by validators, import drivers, or tests without modification.
package specimen

// Category groups fields for display purposes only. The import pipeline
// never branches on it.
type Category int

const (
	CategoryTaxonomy Category = iota
	CategoryIdentity
	CategoryGeologicalTime
	CategoryLocation
	CategoryDimensions
	CategoryAcquisition
	CategoryFinancial
	CategoryStorage
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryTaxonomy:
		return "Taxonomy"
	case CategoryIdentity:
		return "Identity"
	case CategoryGeologicalTime:
		return "Geological Time"
	case CategoryLocation:
		return "Location"
	case CategoryDimensions:
		return "Dimensions"
	case CategoryAcquisition:
		return "Acquisition"
	case CategoryFinancial:
		return "Financial"
	case CategoryStorage:
		return "Storage"
	default:
		return "Unknown"
	}
}

// Field identifies one importable specimen attribute. The declaration order
// is stable and is the order mappings are produced in.
type Field int

const (
	FieldSpecies Field = iota
	FieldGenus
	FieldFamily
	FieldOrder
	FieldClass
	FieldElement
	FieldCondition
	FieldDescription
	FieldNickname
	FieldEra
	FieldPeriod
	FieldEpoch
	FieldAge
	FieldFormation
	FieldCountry
	FieldState
	FieldLocality
	FieldLatitude
	FieldLongitude
	FieldWidth
	FieldHeight
	FieldLength
	FieldSizeUnit
	FieldWeight
	FieldWeightUnit
	FieldMethod
	FieldAcquisitionDate
	FieldCollectionDate
	FieldPricePaid
	FieldPriceCurrency
	FieldEstimatedValue
	FieldEstimatedCurrency
	FieldStorageLocation
	FieldNotes

	fieldCount // must be last
)

type fieldInfo struct {
	id       string
	display  string
	category Category
	required bool
	aliases  []string
}

// fieldTable drives everything about a field. Aliases are hand-curated from
// spreadsheet exports seen in the wild; they are authored trimmed and
// lowercase. Only Species is required.
var fieldTable = [fieldCount]fieldInfo{
	FieldSpecies: {
		id: "species", display: "Species", category: CategoryTaxonomy, required: true,
		aliases: []string{
			"species", "taxon", "scientific name", "sp.", "species name",
			"taxon name", "scientific", "binomial", "latin name", "name",
			"fossil name", "identification", "det.",
		},
	},
	FieldGenus: {
		id: "genus", display: "Genus", category: CategoryTaxonomy,
		aliases: []string{"genus", "gen.", "genus name"},
	},
	FieldFamily: {
		id: "family", display: "Family", category: CategoryTaxonomy,
		aliases: []string{"family", "fam."},
	},
	FieldOrder: {
		id: "order", display: "Order", category: CategoryTaxonomy,
		aliases: []string{"order", "ord.", "taxonomic order"},
	},
	FieldClass: {
		id: "class", display: "Class", category: CategoryTaxonomy,
		aliases: []string{"class", "taxonomic class"},
	},
	FieldElement: {
		id: "element", display: "Fossil Element", category: CategoryIdentity,
		aliases: []string{
			"element", "fossil element", "part", "body part", "fossil type",
			"type", "material",
		},
	},
	FieldCondition: {
		id: "condition", display: "Condition", category: CategoryIdentity,
		aliases: []string{"condition", "state", "quality", "preservation"},
	},
	FieldDescription: {
		id: "description", display: "Description", category: CategoryIdentity,
		aliases: []string{"description", "desc", "details"},
	},
	FieldNickname: {
		id: "nickname", display: "Nickname", category: CategoryIdentity,
		aliases: []string{"nickname", "nick", "label", "specimen name"},
	},
	FieldEra: {
		id: "era", display: "Geological Era", category: CategoryGeologicalTime,
		aliases: []string{"era", "geological era"},
	},
	FieldPeriod: {
		id: "period", display: "Geological Period", category: CategoryGeologicalTime,
		aliases: []string{"period", "geological period", "geo period", "system"},
	},
	FieldEpoch: {
		id: "epoch", display: "Epoch", category: CategoryGeologicalTime,
		aliases: []string{"epoch", "series"},
	},
	FieldAge: {
		id: "age", display: "Geological Age", category: CategoryGeologicalTime,
		aliases: []string{"age", "stage", "geological age"},
	},
	FieldFormation: {
		id: "formation", display: "Formation", category: CategoryGeologicalTime,
		aliases: []string{"formation", "fm", "rock formation", "stratigraphy"},
	},
	FieldCountry: {
		id: "country", display: "Country", category: CategoryLocation,
		aliases: []string{"country", "nation", "country of origin"},
	},
	FieldState: {
		id: "state", display: "State / Province", category: CategoryLocation,
		aliases: []string{"state", "province", "region", "state/province", "county"},
	},
	FieldLocality: {
		id: "locality", display: "Locality", category: CategoryLocation,
		aliases: []string{
			"locality", "location", "site", "locale", "place", "found at",
			"location found",
		},
	},
	FieldLatitude: {
		id: "latitude", display: "Latitude", category: CategoryLocation,
		aliases: []string{"latitude", "lat"},
	},
	FieldLongitude: {
		id: "longitude", display: "Longitude", category: CategoryLocation,
		aliases: []string{"longitude", "long", "lon", "lng"},
	},
	FieldWidth: {
		id: "width", display: "Width", category: CategoryDimensions,
		aliases: []string{"width", "w", "width (mm)", "width mm"},
	},
	FieldHeight: {
		id: "height", display: "Height", category: CategoryDimensions,
		aliases: []string{"height", "h", "height (mm)", "height mm"},
	},
	FieldLength: {
		id: "length", display: "Length", category: CategoryDimensions,
		aliases: []string{"length", "l", "len", "length (mm)", "length mm"},
	},
	FieldSizeUnit: {
		id: "size_unit", display: "Size Unit", category: CategoryDimensions,
		aliases: []string{"size unit", "unit", "units", "dimension unit", "measurement unit"},
	},
	FieldWeight: {
		id: "weight", display: "Weight", category: CategoryDimensions,
		aliases: []string{"weight", "mass", "wt", "weight (g)", "weight g"},
	},
	FieldWeightUnit: {
		id: "weight_unit", display: "Weight Unit", category: CategoryDimensions,
		aliases: []string{"weight unit", "mass unit", "wt unit"},
	},
	FieldMethod: {
		id: "acquisition_method", display: "Acquisition Method", category: CategoryAcquisition,
		aliases: []string{
			"acquisition method", "method", "acquisition", "acquired",
			"how acquired", "obtained", "source type",
		},
	},
	FieldAcquisitionDate: {
		id: "acquisition_date", display: "Acquisition Date", category: CategoryAcquisition,
		aliases: []string{
			"acquisition date", "date acquired", "acquired date",
			"purchase date", "date bought",
		},
	},
	FieldCollectionDate: {
		id: "collection_date", display: "Collection Date", category: CategoryAcquisition,
		aliases: []string{
			"collection date", "date collected", "collected", "date found",
			"find date",
		},
	},
	FieldPricePaid: {
		id: "price_paid", display: "Price Paid", category: CategoryFinancial,
		aliases: []string{"price paid", "price", "paid", "cost", "purchase price"},
	},
	FieldPriceCurrency: {
		id: "price_currency", display: "Price Currency", category: CategoryFinancial,
		aliases: []string{"currency", "price currency", "paid currency", "currency paid"},
	},
	FieldEstimatedValue: {
		id: "estimated_value", display: "Estimated Value", category: CategoryFinancial,
		aliases: []string{
			"estimated value", "value", "est value", "valuation", "worth",
			"appraisal",
		},
	},
	FieldEstimatedCurrency: {
		id: "estimated_currency", display: "Value Currency", category: CategoryFinancial,
		aliases: []string{"value currency", "estimated currency", "est currency"},
	},
	FieldStorageLocation: {
		id: "storage_location", display: "Storage Location", category: CategoryStorage,
		aliases: []string{
			"storage location", "storage", "drawer", "cabinet", "shelf",
			"box", "display location",
		},
	},
	FieldNotes: {
		id: "notes", display: "Notes", category: CategoryStorage,
		aliases: []string{"notes", "note", "remarks", "comments", "comment", "memo"},
	},
}

// Fields returns every field in declaration order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// ID returns the stable identifier for the field (snake_case, never changes).
func (f Field) ID() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldTable[f].id
}

// DisplayName returns the human-readable name for the field.
func (f Field) DisplayName() string {
	if f < 0 || f >= fieldCount {
		return "Unknown"
	}
	return fieldTable[f].display
}

// Category returns the display grouping for the field.
func (f Field) Category() Category {
	if f < 0 || f >= fieldCount {
		return CategoryStorage
	}
	return fieldTable[f].category
}

// Required reports whether the field must be populated for a row to import.
func (f Field) Required() bool {
	if f < 0 || f >= fieldCount {
		return false
	}
	return fieldTable[f].required
}

// Aliases returns the curated header-name synonyms for the field.
// The returned slice must not be modified.
func (f Field) Aliases() []string {
	if f < 0 || f >= fieldCount {
		return nil
	}
	return fieldTable[f].aliases
}

// FieldByID returns the field with the given stable identifier.
func FieldByID(id string) (Field, bool) {
	for i := Field(0); i < fieldCount; i++ {
		if fieldTable[i].id == id {
			return i, true
		}
	}
	return 0, false
}

package specimen

import "strings"

// Period is the closed set of geological periods.
type Period int

const (
	PeriodPrecambrian Period = iota
	PeriodCambrian
	PeriodOrdovician
	PeriodSilurian
	PeriodDevonian
	PeriodCarboniferous
	PeriodPermian
	PeriodTriassic
	PeriodJurassic
	PeriodCretaceous
	PeriodPaleogene
	PeriodNeogene
	PeriodQuaternary

	periodCount // must be last
)

var periodNames = [periodCount]string{
	PeriodPrecambrian:   "Precambrian",
	PeriodCambrian:      "Cambrian",
	PeriodOrdovician:    "Ordovician",
	PeriodSilurian:      "Silurian",
	PeriodDevonian:      "Devonian",
	PeriodCarboniferous: "Carboniferous",
	PeriodPermian:       "Permian",
	PeriodTriassic:      "Triassic",
	PeriodJurassic:      "Jurassic",
	PeriodCretaceous:    "Cretaceous",
	PeriodPaleogene:     "Paleogene",
	PeriodNeogene:       "Neogene",
	PeriodQuaternary:    "Quaternary",
}

// String returns the display name for the period.
func (p Period) String() string {
	if p < 0 || p >= periodCount {
		return "Unknown"
	}
	return periodNames[p]
}

// ResolvePeriod matches raw text against the period set, case-insensitive.
func ResolvePeriod(raw string) (Period, bool) {
	s := strings.TrimSpace(raw)
	for i := Period(0); i < periodCount; i++ {
		if strings.EqualFold(s, periodNames[i]) {
			return i, true
		}
	}
	return PeriodPrecambrian, false
}

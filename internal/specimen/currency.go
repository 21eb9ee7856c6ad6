package specimen

import "strings"

// Currency is the closed set of currencies a valuation can be recorded in.
type Currency int

const (
	CurrencyUSD Currency = iota
	CurrencyEUR
	CurrencyGBP
	CurrencyJPY
	CurrencyRUB
	CurrencyINR
	CurrencyKRW
	CurrencyTRY
	CurrencyILS
	CurrencyTHB
	CurrencyCHF
	CurrencyCAD
	CurrencyAUD
	CurrencyNZD
	CurrencyCNY
	CurrencySEK
	CurrencyNOK
	CurrencyDKK
	CurrencyPLN
	CurrencyCZK
	CurrencyHUF
	CurrencyBRL
	CurrencyMXN
	CurrencyZAR

	currencyCount // must be last
)

var currencyCodes = [currencyCount]string{
	CurrencyUSD: "USD", CurrencyEUR: "EUR", CurrencyGBP: "GBP",
	CurrencyJPY: "JPY", CurrencyRUB: "RUB", CurrencyINR: "INR",
	CurrencyKRW: "KRW", CurrencyTRY: "TRY", CurrencyILS: "ILS",
	CurrencyTHB: "THB", CurrencyCHF: "CHF", CurrencyCAD: "CAD",
	CurrencyAUD: "AUD", CurrencyNZD: "NZD", CurrencyCNY: "CNY",
	CurrencySEK: "SEK", CurrencyNOK: "NOK", CurrencyDKK: "DKK",
	CurrencyPLN: "PLN", CurrencyCZK: "CZK", CurrencyHUF: "HUF",
	CurrencyBRL: "BRL", CurrencyMXN: "MXN", CurrencyZAR: "ZAR",
}

// currencySymbols maps common symbols to ISO codes before code resolution.
var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
	"₽": "RUB",
	"₹": "INR",
	"₩": "KRW",
	"₺": "TRY",
	"₪": "ILS",
	"฿": "THB",
}

// Code returns the ISO 4217 code for the currency.
func (c Currency) Code() string {
	if c < 0 || c >= currencyCount {
		return currencyCodes[CurrencyUSD]
	}
	return currencyCodes[c]
}

// String returns the ISO code; currencies display as their code.
func (c Currency) String() string { return c.Code() }

// NormalizeCurrency maps a raw currency token to an ISO code candidate:
// known symbols are replaced by their code, anything else is trimmed and
// uppercased as-is.
func NormalizeCurrency(raw string) string {
	s := strings.TrimSpace(raw)
	if code, ok := currencySymbols[s]; ok {
		return code
	}
	return strings.ToUpper(s)
}

// ResolveCurrency normalizes raw text and matches it against the closed
// currency set. fallback is returned for anything unrecognized; callers
// inject it instead of reading ambient locale so results stay deterministic.
func ResolveCurrency(raw string, fallback Currency) (Currency, bool) {
	code := NormalizeCurrency(raw)
	for i := Currency(0); i < currencyCount; i++ {
		if currencyCodes[i] == code {
			return i, true
		}
	}
	return fallback, false
}

// CurrencyByCode matches an exact ISO code (case-insensitive).
func CurrencyByCode(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i := Currency(0); i < currencyCount; i++ {
		if currencyCodes[i] == code {
			return i, true
		}
	}
	return CurrencyUSD, false
}

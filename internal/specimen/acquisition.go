package specimen

import "strings"

// Method is how a specimen entered the collection.
type Method int

const (
	MethodFound Method = iota
	MethodGifted
	MethodPurchased
	MethodTraded

	methodCount // must be last
)

var methodTokens = [methodCount]string{
	MethodFound:     "found",
	MethodGifted:    "gifted",
	MethodPurchased: "purchased",
	MethodTraded:    "traded",
}

var methodDisplay = [methodCount]string{
	MethodFound:     "Found",
	MethodGifted:    "Gifted",
	MethodPurchased: "Purchased",
	MethodTraded:    "Traded",
}

// methodSynonyms maps spreadsheet spellings to canonical tokens.
var methodSynonyms = map[string]string{
	"find":      "found",
	"found":     "found",
	"collected": "found",
	"gift":      "gifted",
	"gifted":    "gifted",
	"given":     "gifted",
	"buy":       "purchased",
	"bought":    "purchased",
	"purchased": "purchased",
	"purchase":  "purchased",
	"trade":     "traded",
	"traded":    "traded",
	"exchange":  "traded",
	"exchanged": "traded",
}

// Token returns the canonical lowercase token for the method.
func (m Method) Token() string {
	if m < 0 || m >= methodCount {
		return methodTokens[MethodFound]
	}
	return methodTokens[m]
}

// String returns the display name for the method.
func (m Method) String() string {
	if m < 0 || m >= methodCount {
		return methodDisplay[MethodFound]
	}
	return methodDisplay[m]
}

// NormalizeMethod maps raw text through the synonym table. Unmatched input
// passes through lowercased.
func NormalizeMethod(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canon, ok := methodSynonyms[key]; ok {
		return canon
	}
	return key
}

// ResolveMethod normalizes raw text and matches it against the closed
// method set.
func ResolveMethod(raw string) (Method, bool) {
	canon := NormalizeMethod(raw)
	for i := Method(0); i < methodCount; i++ {
		if methodTokens[i] == canon {
			return i, true
		}
	}
	return MethodFound, false
}

package specimen

import "strings"

// Element is the closed set of fossil element types a specimen can be.
// Unrecognized inputs resolve to ElementOther rather than failing.
type Element int

const (
	ElementTooth Element = iota
	ElementBone
	ElementSkull
	ElementJaw
	ElementVertebra
	ElementRib
	ElementClaw
	ElementHorn
	ElementEgg
	ElementShell
	ElementCoral
	ElementWood
	ElementLeaf
	ElementAmber
	ElementTrackway
	ElementCoprolite
	ElementMatrix
	ElementOther

	elementCount // must be last
)

type elementInfo struct {
	serial  string // stable serialized token
	display string
}

// elementTable is the resolution table. Adding a variant means adding a row;
// the matching logic never changes.
var elementTable = [elementCount]elementInfo{
	ElementTooth:     {"tooth", "Tooth"},
	ElementBone:      {"bone", "Bone"},
	ElementSkull:     {"skull", "Skull"},
	ElementJaw:       {"jaw", "Jaw"},
	ElementVertebra:  {"vertebra", "Vertebra"},
	ElementRib:       {"rib", "Rib"},
	ElementClaw:      {"claw", "Claw"},
	ElementHorn:      {"horn", "Horn"},
	ElementEgg:       {"egg", "Egg"},
	ElementShell:     {"shell", "Shell"},
	ElementCoral:     {"coral", "Coral"},
	ElementWood:      {"wood", "Petrified Wood"},
	ElementLeaf:      {"leaf", "Leaf"},
	ElementAmber:     {"amber", "Amber"},
	ElementTrackway:  {"trackway", "Trackway"},
	ElementCoprolite: {"coprolite", "Coprolite"},
	ElementMatrix:    {"matrix", "Matrix"},
	ElementOther:     {"other", "Other"},
}

// Serial returns the stable serialized token for the element.
func (e Element) Serial() string {
	if e < 0 || e >= elementCount {
		return elementTable[ElementOther].serial
	}
	return elementTable[e].serial
}

// String returns the display name for the element.
func (e Element) String() string {
	if e < 0 || e >= elementCount {
		return elementTable[ElementOther].display
	}
	return elementTable[e].display
}

// ResolveElement maps raw text to an element by case-insensitive comparison
// against the serialized token and the display name. Unmatched input returns
// (ElementOther, false).
func ResolveElement(raw string) (Element, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ElementOther, false
	}
	for i := Element(0); i < elementCount; i++ {
		if strings.EqualFold(s, elementTable[i].serial) || strings.EqualFold(s, elementTable[i].display) {
			return i, true
		}
	}
	return ElementOther, false
}

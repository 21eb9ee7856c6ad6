package specimen

import "strings"

type conditionKind int

const (
	conditionExcellent conditionKind = iota
	conditionGood
	conditionFair
	conditionPoor
	conditionRestored
	conditionComposite
	conditionOther
)

// Condition is an open enumeration: a fixed set of named grades plus a
// free-text "other" variant carrying its own label. The zero value is the
// Excellent grade.
//
// Condition is comparable: named grades are singleton-equal and two other
// variants are equal only when their payloads match.
type Condition struct {
	kind  conditionKind
	other string
}

var (
	ConditionExcellent = Condition{kind: conditionExcellent}
	ConditionGood      = Condition{kind: conditionGood}
	ConditionFair      = Condition{kind: conditionFair}
	ConditionPoor      = Condition{kind: conditionPoor}
	ConditionRestored  = Condition{kind: conditionRestored}
	ConditionComposite = Condition{kind: conditionComposite}
)

// ConditionOther returns the free-text variant carrying the given label.
func ConditionOther(text string) Condition {
	return Condition{kind: conditionOther, other: text}
}

// IsOther reports whether the condition is the free-text variant.
func (c Condition) IsOther() bool { return c.kind == conditionOther }

// String returns the display text for the condition.
func (c Condition) String() string {
	switch c.kind {
	case conditionExcellent:
		return "Excellent"
	case conditionGood:
		return "Good"
	case conditionFair:
		return "Fair"
	case conditionPoor:
		return "Poor"
	case conditionRestored:
		return "Restored"
	case conditionComposite:
		return "Composite"
	default:
		return c.other
	}
}

// ParseCondition maps raw text to a named grade when it matches one
// case-insensitively, otherwise to the free-text variant carrying the raw
// text. It never fails; condition is accepted as free-form input.
func ParseCondition(raw string) Condition {
	s := strings.TrimSpace(raw)
	for _, c := range []Condition{
		ConditionExcellent, ConditionGood, ConditionFair,
		ConditionPoor, ConditionRestored, ConditionComposite,
	} {
		if strings.EqualFold(s, c.String()) {
			return c
		}
	}
	return ConditionOther(s)
}

package simpleopts

import "strconv"

type ValueKind int

const (
	KindAbsent ValueKind = iota
	// KindPresent marks a no-parameter option found in the input
	KindPresent
	// KindPresentWith marks a single-parameter option found in the input along with its value
	KindPresentWith
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindPresent:
		return "present"
	case KindPresentWith:
		return "present with value"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OptionValue is a parse result for a single declared option.
// The zero value is absent
type OptionValue struct {
	kind  ValueKind
	value string
}

// Present returns the value of a no-parameter option found in the input
func Present() OptionValue {
	return OptionValue{kind: KindPresent}
}

// PresentWith returns the value of a single-parameter option found in the input
func PresentWith(value string) OptionValue {
	return OptionValue{kind: KindPresentWith, value: value}
}

func (v OptionValue) Kind() ValueKind {
	return v.kind
}

func (v OptionValue) IsPresent() bool {
	return v.kind != KindAbsent
}

// Value returns the parameter of a single-parameter option.
// hasValue is false for absent and no-parameter options
func (v OptionValue) Value() (value string, hasValue bool) {
	return v.value, v.kind == KindPresentWith
}

func (v OptionValue) String() string {
	switch v.kind {
	case KindPresent:
		return "<present>"
	case KindPresentWith:
		return strconv.Quote(v.value)
	default:
		return "<absent>"
	}
}

package enums

import "fmt"

// OptionType is one of the customization axes for a custom cake.
type OptionType string

const (
	OptionTypeFlavor  OptionType = "FLAVOR"
	OptionTypeFilling OptionType = "FILLING"
	OptionTypeSize    OptionType = "SIZE"
)

var validOptionTypes = []OptionType{
	OptionTypeFlavor,
	OptionTypeFilling,
	OptionTypeSize,
}

// String implements fmt.Stringer.
func (o OptionType) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OptionType.
func (o OptionType) IsValid() bool {
	for _, candidate := range validOptionTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// Key returns the lowercase axis name used in selections and payloads.
func (o OptionType) Key() string {
	switch o {
	case OptionTypeFlavor:
		return "flavor"
	case OptionTypeFilling:
		return "filling"
	case OptionTypeSize:
		return "size"
	}
	return ""
}

// OptionTypes lists every customization axis in display order.
func OptionTypes() []OptionType {
	return append([]OptionType(nil), validOptionTypes...)
}

// ParseOptionType converts raw input into an OptionType.
func ParseOptionType(value string) (OptionType, error) {
	for _, candidate := range validOptionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid option type %q", value)
}

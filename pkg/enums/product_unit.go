package enums

import "fmt"

// ProductUnit is the unit a bakery product is sold by.
type ProductUnit string

const (
	ProductUnitEach  ProductUnit = "ea"
	ProductUnitKilo  ProductUnit = "kg"
	ProductUnitPound ProductUnit = "lb"
)

var validProductUnits = []ProductUnit{
	ProductUnitEach,
	ProductUnitKilo,
	ProductUnitPound,
}

// String implements fmt.Stringer.
func (p ProductUnit) String() string {
	return string(p)
}

// IsValid reports whether the unit is recognized.
func (p ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductUnit converts a raw string into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}

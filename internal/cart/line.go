package cart

import (
	"encoding/json"
	"strconv"
)

const (
	// MinQuantity is the floor for any cart line.
	MinQuantity = 1
	// MaxQuantity caps how many units a single line can hold.
	MaxQuantity = 10
)

// Line is one addressable row in the shopping cart. All product fields are
// snapshots copied at add time; later catalog edits do not touch them.
type Line struct {
	LineID          string            `json:"line_id"`
	ProductID       int64             `json:"product_id"`
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	Image           *string           `json:"image"`
	UnitPrice       float64           `json:"unit_price"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	IsCustomCake    bool              `json:"is_custom_cake"`
}

// Snapshot carries the product fields copied onto a new line. UnitPrice is
// the fully resolved per-unit price, computed once by the caller.
type Snapshot struct {
	ProductID    int64
	Slug         string
	Name         string
	Image        *string
	UnitPrice    float64
	IsCustomCake bool
}

// DeriveLineID builds the identity for a (product, selected options) pair.
// An absent or empty selection reduces to the bare product id, so a plain add
// and an "empty customization" add collide into the same line. Options are
// serialized as JSON with sorted keys, keeping the identity independent of
// the order the selection was populated in.
func DeriveLineID(productID int64, selected map[string]string) string {
	id := strconv.FormatInt(productID, 10)
	if len(selected) == 0 {
		return id
	}
	encoded, err := json.Marshal(selected)
	if err != nil {
		// map[string]string cannot fail to marshal
		return id
	}
	return id + "-" + string(encoded)
}

func clampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

func copyOptions(selected map[string]string) map[string]string {
	if len(selected) == 0 {
		return nil
	}
	copied := make(map[string]string, len(selected))
	for k, v := range selected {
		copied[k] = v
	}
	return copied
}

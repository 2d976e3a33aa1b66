package cart

import (
	"math"

	"github.com/nataliebakery/storefront/internal/catalog"
)

// ResolvePrice computes the per-unit price for a selection: the base price
// plus the modifier of every available option whose name matches the
// selection for its axis. A selection that matches nothing contributes zero
// rather than failing; the missing-default case during picker setup behaves
// the same as no customization.
func ResolvePrice(basePrice float64, available []catalog.Option, selection map[string]string) float64 {
	price := basePrice
	for _, opt := range available {
		key := opt.OptionType.Key()
		if key == "" {
			continue
		}
		if chosen, ok := selection[key]; ok && chosen == opt.Name {
			price += opt.PriceModifier.InexactFloat64()
		}
	}
	return price
}

// ResolveProductPrice resolves the price for a catalog product. Products that
// are not custom cakes sell at their base price regardless of any selection.
func ResolveProductPrice(product *catalog.Product, selection map[string]string) float64 {
	base := product.Price.InexactFloat64()
	if !product.IsCustomCake {
		return base
	}
	return ResolvePrice(base, product.AvailableOptions, selection)
}

// DisplayPrice rounds to two decimal places for presentation. Stored prices
// keep full precision.
func DisplayPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

package cart

import (
	cartsvc "github.com/nataliebakery/storefront/internal/cart"
)

type cartView struct {
	Items      []cartsvc.Line `json:"items"`
	ItemCount  int            `json:"item_count"`
	TotalPrice float64        `json:"total_price"`
}

func newCartView(lines cartsvc.Lines) cartView {
	items := []cartsvc.Line(lines)
	if items == nil {
		items = []cartsvc.Line{}
	}
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return cartView{
		Items:      items,
		ItemCount:  count,
		TotalPrice: cartsvc.DisplayPrice(lines.TotalPrice()),
	}
}

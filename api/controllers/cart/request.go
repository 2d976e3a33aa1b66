package cart

// addItemRequest adds a product to the cart by slug. Quantity defaults to one
// and is clamped server-side, so only presence is validated here.
type addItemRequest struct {
	Slug            string            `json:"slug" validate:"required"`
	Quantity        *int              `json:"quantity,omitempty"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
}

func (r addItemRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

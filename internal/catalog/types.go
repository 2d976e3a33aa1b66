package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nataliebakery/storefront/pkg/enums"
)

// Product mirrors the upstream bakery catalog listing. Prices arrive as
// decimal strings and are parsed at this boundary.
type Product struct {
	ID               int64             `json:"id"`
	CategoryID       int64             `json:"category"`
	CategoryName     string            `json:"category_name"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	Price            decimal.Decimal   `json:"price"`
	Image            *string           `json:"image"`
	Unit             enums.ProductUnit `json:"unit"`
	IsCustomCake     bool              `json:"is_custom_cake"`
	IsFeatured       bool              `json:"is_featured"`
	AvailableOptions []Option          `json:"available_options"`
	CreatedAt        *time.Time        `json:"created_at"`
}

// Option is a single customization choice with its price modifier.
type Option struct {
	ID            int64            `json:"id"`
	OptionType    enums.OptionType `json:"option_type"`
	Name          string           `json:"name"`
	PriceModifier decimal.Decimal  `json:"price_modifier"`
}

// Category is an upstream product grouping.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// OrderItem is one line of the upstream order payload.
type OrderItem struct {
	Product  int64   `json:"product"`
	Quantity int     `json:"quantity"`
	Flavor   *string `json:"flavor"`
	Filling  *string `json:"filling"`
	Size     *string `json:"size"`
	Price    float64 `json:"price"`
}

// OrderSubmission is the payload posted to the upstream orders endpoint.
type OrderSubmission struct {
	CustomerName   string      `json:"customer_name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	TotalPrice     float64     `json:"total_price"`
	PickupDatetime string      `json:"pickup_datetime"`
	Items          []OrderItem `json:"items"`
}

// OrderConfirmation is the upstream acknowledgment of a placed order.
type OrderConfirmation struct {
	ID             int64   `json:"id"`
	CustomerName   string  `json:"customer_name"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"total_price,string"`
	PickupDatetime string  `json:"pickup_datetime"`
}

// DefaultSelection maps each option axis present in the list to its first
// option, mirroring how the product page seeds its pickers.
func DefaultSelection(options []Option) map[string]string {
	selection := map[string]string{}
	for _, optionType := range enums.OptionTypes() {
		if matched := OptionsOfType(options, optionType); len(matched) > 0 {
			selection[optionType.Key()] = matched[0].Name
		}
	}
	return selection
}

// OptionsOfType filters the list down to one customization axis.
func OptionsOfType(options []Option, optionType enums.OptionType) []Option {
	var matched []Option
	for _, opt := range options {
		if opt.OptionType == optionType {
			matched = append(matched, opt)
		}
	}
	return matched
}

// internal/domain/catalog/entity.go
package catalog

import "errors"

// ErrProductNotFound is returned when a product identifier or barcode does
// not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Category represents the product category
type Category string

const (
	CategoryBeverage Category = "beverage"
	CategoryFood     Category = "food"
)

// Nutrition represents nutrition facts per serving
type Nutrition struct {
	Calories int      `json:"calories"`
	Protein  float64  `json:"protein"`
	Fat      float64  `json:"fat"`
	Fiber    float64  `json:"fiber"`
	Sugar    float64  `json:"sugar"`
	Vitamins []string `json:"vitamins"`
}

// Product represents a catalog product. Products are loaded once at startup
// and never mutated; lookups hand out copies.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Price       int64     `json:"price"` // smallest currency unit
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Nutrition   Nutrition `json:"nutrition"`
	Ingredients []string  `json:"ingredients"`
	Barcode     string    `json:"barcode,omitempty"`
}

// Clone returns a deep copy of the product so callers can never alias
// catalog state through the slice fields.
func (p Product) Clone() Product {
	cp := p
	cp.Nutrition.Vitamins = append([]string(nil), p.Nutrition.Vitamins...)
	cp.Ingredients = append([]string(nil), p.Ingredients...)
	return cp
}

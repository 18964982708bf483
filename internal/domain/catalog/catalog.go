// internal/domain/catalog/catalog.go
package catalog

import "fmt"

// Catalog is the static, shared, read-only product reference table.
type Catalog struct {
	ids       []string
	byID      map[string]Product
	byBarcode map[string]Product
}

// New builds a catalog from a product list, validating the reference data.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		byID:      make(map[string]Product, len(products)),
		byBarcode: make(map[string]Product, len(products)),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has empty id", p.Name)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Category != CategoryBeverage && p.Category != CategoryFood {
			return nil, fmt.Errorf("product %q has unknown category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price", p.ID)
		}
		if p.Nutrition.Calories < 0 || p.Nutrition.Protein < 0 || p.Nutrition.Fat < 0 ||
			p.Nutrition.Fiber < 0 || p.Nutrition.Sugar < 0 {
			return nil, fmt.Errorf("product %q has negative nutrition values", p.ID)
		}

		c.ids = append(c.ids, p.ID)
		c.byID[p.ID] = p
		if p.Barcode != "" {
			if _, exists := c.byBarcode[p.Barcode]; exists {
				return nil, fmt.Errorf("duplicate barcode %q", p.Barcode)
			}
			c.byBarcode[p.Barcode] = p
		}
	}

	return c, nil
}

// ByID looks up a product by identifier
func (c *Catalog) ByID(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", id, ErrProductNotFound)
	}
	return p.Clone(), nil
}

// ByBarcode looks up a product by barcode string
func (c *Catalog) ByBarcode(barcode string) (Product, error) {
	p, ok := c.byBarcode[barcode]
	if !ok {
		return Product{}, fmt.Errorf("barcode %q: %w", barcode, ErrProductNotFound)
	}
	return p.Clone(), nil
}

// List returns all products in load order
func (c *Catalog) List() []Product {
	out := make([]Product, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.byID[id].Clone())
	}
	return out
}

// ListByCategory returns all products of one category in load order
func (c *Catalog) ListByCategory(category Category) []Product {
	var out []Product
	for _, id := range c.ids {
		if p := c.byID[id]; p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.ids)
}

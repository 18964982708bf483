// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/domain/pricing"
)

// Item represents one cart line as persisted: a product reference and a
// quantity. Quantity is always >= 1; a line that would drop below 1 is
// removed instead. At most one item per product id per user.
type Item struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// ViewItem is a cart line resolved against the catalog for display
type ViewItem struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal int64           `json:"line_total"`
	AddedAt   time.Time       `json:"added_at"`
}

// View is a resolved cart with priced totals
type View struct {
	Items  []ViewItem     `json:"items"`
	Totals pricing.Totals `json:"totals"`
}

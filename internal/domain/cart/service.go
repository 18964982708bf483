// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/domain/pricing"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

// ErrInvalidQuantity is returned when an add request carries a quantity
// below 1.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Service handles cart business logic
type Service struct {
	store   storage.Store
	catalog *catalog.Catalog
	locks   *userlock.Keyed
	log     *logrus.Logger
}

// NewService creates a new cart service
func NewService(store storage.Store, cat *catalog.Catalog, locks *userlock.Keyed, log *logrus.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		locks:   locks,
		log:     log,
	}
}

// AddToCartRequest represents an add to cart request. Quantity is a pointer
// so an omitted field defaults to one unit while an explicit zero is still
// rejected.
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// UpdateQuantityRequest represents a set-quantity request
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the user's cart items. Absence is represented as an empty
// slice, and storage read failures degrade to empty as well so browsing
// stays usable when the substrate is down.
func (s *Service) GetCart(ctx context.Context, userID string) []Item {
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("cart read degraded to empty")
		return []Item{}
	}
	return items
}

// GetView returns the cart resolved against the catalog with priced totals
func (s *Service) GetView(ctx context.Context, userID string) *View {
	items := s.GetCart(ctx, userID)

	view := &View{Items: make([]ViewItem, 0, len(items))}
	lines := make([]pricing.Line, 0, len(items))

	for _, item := range items {
		prod, err := s.catalog.ByID(item.ProductID)
		if err != nil {
			// Stale reference to a product no longer in the catalog; skip it
			// rather than failing the whole view.
			s.log.WithField("product_id", item.ProductID).Warn("cart references unknown product")
			continue
		}

		view.Items = append(view.Items, ViewItem{
			Product:   prod,
			Quantity:  item.Quantity,
			LineTotal: prod.Price * int64(item.Quantity),
			AddedAt:   item.AddedAt,
		})
		lines = append(lines, pricing.Line{UnitPrice: prod.Price, Quantity: item.Quantity})
	}

	view.Totals = pricing.Calculate(lines)
	return view
}

// AddToCart adds a product to the cart, merging into an existing line when
// the product is already present.
func (s *Service) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("add to cart: %w", ErrInvalidQuantity)
	}

	if _, err := s.catalog.ByID(productID); err != nil {
		return err
	}

	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		items = append(items, Item{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	}

	return s.saveItems(ctx, userID, items)
}

// UpdateQuantity sets (not increments) an item's quantity. A quantity of
// zero or less removes the item. Updating an absent item is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, productID)
	}

	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return s.saveItems(ctx, userID, items)
		}
	}

	// Item not in cart; an update never creates a line.
	return nil
}

// RemoveFromCart filters the item out; removing an absent item is a no-op
func (s *Service) RemoveFromCart(ctx context.Context, userID, productID string) error {
	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	filtered := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}

	if len(filtered) == len(items) {
		return nil
	}
	return s.saveItems(ctx, userID, filtered)
}

// ClearCart empties the cart unconditionally
func (s *Service) ClearCart(ctx context.Context, userID string) error {
	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	if err := s.store.Delete(ctx, userID, storage.KindCart); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// ItemCount returns the summed quantity across all cart lines
func (s *Service) ItemCount(ctx context.Context, userID string) int {
	total := 0
	for _, item := range s.GetCart(ctx, userID) {
		total += item.Quantity
	}
	return total
}

func lockKey(userID string) string {
	return userID + ":" + string(storage.KindCart)
}

func (s *Service) loadItems(ctx context.Context, userID string) ([]Item, error) {
	var items []Item
	err := s.store.Get(ctx, userID, storage.KindCart, &items)
	if errors.Is(err, storage.ErrNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) saveItems(ctx context.Context, userID string, items []Item) error {
	if err := s.store.Set(ctx, userID, storage.KindCart, items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

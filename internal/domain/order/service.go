// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/domain/cart"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/domain/consumption"
	"github.com/freshify/freshify-backend/internal/domain/pricing"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

// maxOrderHistory caps the retained per-user order history; oldest orders
// beyond the bound are discarded.
const maxOrderHistory = 100

// Service is the order factory: it derives an immutable order from the
// user's cart, prices it, persists it, clears the cart and posts calorie
// consumption.
type Service struct {
	store       storage.Store
	catalog     *catalog.Catalog
	cartService *cart.Service
	consumption *consumption.Service
	locks       *userlock.Keyed
	log         *logrus.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a new order service
func NewService(
	store storage.Store,
	cat *catalog.Catalog,
	cartService *cart.Service,
	consumptionService *consumption.Service,
	locks *userlock.Keyed,
	log *logrus.Logger,
) *Service {
	return &Service{
		store:       store,
		catalog:     cat,
		cartService: cartService,
		consumption: consumptionService,
		locks:       locks,
		log:         log,
		now:         time.Now,
		newID:       generateOrderID,
	}
}

// CreateOrderRequest represents order creation data
type CreateOrderRequest struct {
	PaymentMethod  PaymentMethod   `json:"payment_method" binding:"required"`
	PaymentDetails *PaymentDetails `json:"payment_details,omitempty"`
}

// CreateOrder creates a new order from the user's cart.
//
// The order write is the durability point: it propagates failure, and
// nothing before it mutates state. Cart clearing and consumption posting run
// after the write; their failures are logged and do not roll the order back.
func (s *Service) CreateOrder(ctx context.Context, userID string, req *CreateOrderRequest) (*Order, error) {
	if err := validatePayment(req.PaymentMethod, req.PaymentDetails); err != nil {
		return nil, err
	}

	cartItems := s.cartService.GetCart(ctx, userID)
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	items, err := s.snapshotItems(cartItems)
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{UnitPrice: item.Product.Price, Quantity: item.Quantity}
	}
	totals := pricing.Calculate(lines)

	ord := &Order{
		ID:             s.newID(),
		Items:          items,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		Total:          totals.Total,
		Status:         StatusCompleted,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.appendToHistory(ctx, userID, ord); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The order is durable from here on; the remaining steps are recoverable
	// inconsistencies, not grounds for rollback.
	if err := s.cartService.ClearCart(ctx, userID); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"order_id": ord.ID,
		}).Warn("failed to clear cart after order creation")
	}

	if err := s.consumption.Post(ctx, userID, ord.Calories()); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"order_id": ord.ID,
		}).Warn("failed to post consumption after order creation")
	}

	return ord, nil
}

// GetOrders returns the user's order history, most recent first. Read
// failures degrade to an empty history.
func (s *Service) GetOrders(ctx context.Context, userID string) []Order {
	orders, err := s.loadHistory(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("order history read degraded to empty")
		return []Order{}
	}
	return orders
}

// GetOrder returns a single order from the user's history
func (s *Service) GetOrder(ctx context.Context, userID, orderID string) (*Order, error) {
	for _, ord := range s.GetOrders(ctx, userID) {
		if ord.ID == orderID {
			return &ord, nil
		}
	}
	return nil, fmt.Errorf("order %q: %w", orderID, ErrOrderNotFound)
}

// snapshotItems deep-copies cart lines into order items, severing every
// reference to the live catalog and cart.
func (s *Service) snapshotItems(cartItems []cart.Item) ([]Item, error) {
	items := make([]Item, 0, len(cartItems))
	for _, ci := range cartItems {
		prod, err := s.catalog.ByID(ci.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{
			Product:  prod,
			Quantity: ci.Quantity,
		})
	}
	return items, nil
}

// appendToHistory prepends the order to the user's history under the
// per-user order lock, capping retained history.
func (s *Service) appendToHistory(ctx context.Context, userID string, ord *Order) error {
	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	orders, err := s.loadHistory(ctx, userID)
	if err != nil {
		return err
	}

	orders = append([]Order{*ord}, orders...)
	if len(orders) > maxOrderHistory {
		orders = orders[:maxOrderHistory]
	}

	return s.store.Set(ctx, userID, storage.KindOrders, orders)
}

func (s *Service) loadHistory(ctx context.Context, userID string) ([]Order, error) {
	var orders []Order
	err := s.store.Get(ctx, userID, storage.KindOrders, &orders)
	if errors.Is(err, storage.ErrNotFound) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// generateOrderID builds a time-ordered identifier with a random suffix:
// ORD<unix-millis><6 uppercase hex chars>.
func generateOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), suffix)
}

func lockKey(userID string) string {
	return userID + ":" + string(storage.KindOrders)
}

// internal/domain/order/service_test.go
package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshify/freshify-backend/internal/domain/cart"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/domain/consumption"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

// failingStore wraps a working store and fails writes for selected kinds.
type failingStore struct {
	storage.Store
	failSet map[storage.Kind]bool
}

func (f *failingStore) Set(ctx context.Context, ownerID string, kind storage.Kind, value interface{}) error {
	if f.failSet[kind] {
		return errors.New("substrate write failed")
	}
	return f.Store.Set(ctx, ownerID, kind, value)
}

type fixture struct {
	store       storage.Store
	cart        *cart.Service
	consumption *consumption.Service
	orders      *Service
}

func newFixture(store storage.Store) *fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cat := catalog.Default()
	locks := userlock.New()
	cartService := cart.NewService(store, cat, locks, log)
	consumptionService := consumption.NewService(store, locks, log, consumption.WeekStartSunday)
	orderService := NewService(store, cat, cartService, consumptionService, locks, log)

	return &fixture{
		store:       store,
		cart:        cartService,
		consumption: consumptionService,
		orders:      orderService,
	}
}

func TestCreateOrderFromCart(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))
	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "food-1", 1))

	ord, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentQRIS})
	require.NoError(t, err)

	assert.Equal(t, int64(45000), ord.Subtotal)
	assert.Equal(t, int64(4500), ord.Tax)
	assert.Equal(t, int64(49500), ord.Total)
	assert.Equal(t, StatusCompleted, ord.Status)
	assert.Equal(t, PaymentQRIS, ord.PaymentMethod)
	assert.Len(t, ord.Items, 2)
	assert.NotEmpty(t, ord.ID)

	// The cart is consumed and the order's calories land in today's slot.
	assert.Empty(t, f.cart.GetCart(ctx, "user-1"))

	today := int(time.Now().Weekday())
	assert.Equal(t, 270, f.consumption.Weekly(ctx, "user-1")[today])
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())

	_, err := f.orders.CreateOrder(context.Background(), "user-1", &CreateOrderRequest{PaymentMethod: PaymentCash})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreateOrderPaymentValidation(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())
	ctx := context.Background()
	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))

	tests := []struct {
		name    string
		req     *CreateOrderRequest
		wantErr bool
	}{
		{"cash needs nothing", &CreateOrderRequest{PaymentMethod: PaymentCash}, false},
		{"qris needs nothing", &CreateOrderRequest{PaymentMethod: PaymentQRIS}, false},
		{"ewallet without provider", &CreateOrderRequest{PaymentMethod: PaymentEwallet}, true},
		{"ewallet with provider", &CreateOrderRequest{PaymentMethod: PaymentEwallet, PaymentDetails: &PaymentDetails{Provider: "gopay"}}, false},
		{"transfer without bank", &CreateOrderRequest{PaymentMethod: PaymentTransfer}, true},
		{"transfer with bank", &CreateOrderRequest{PaymentMethod: PaymentTransfer, PaymentDetails: &PaymentDetails{Bank: "BCA"}}, false},
		{"unknown method", &CreateOrderRequest{PaymentMethod: "crypto"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Keep the cart populated across subtests.
			require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))

			_, err := f.orders.CreateOrder(ctx, "user-1", tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateOrderFailedWriteLeavesCartIntact(t *testing.T) {
	store := &failingStore{
		Store:   storage.NewMemoryStore(),
		failSet: map[storage.Kind]bool{storage.KindOrders: true},
	}
	f := newFixture(store)
	ctx := context.Background()

	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 2))

	_, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentCash})
	require.Error(t, err)

	// No order, no cart clear, no consumption posting.
	assert.Empty(t, f.orders.GetOrders(ctx, "user-1"))
	assert.Len(t, f.cart.GetCart(ctx, "user-1"), 1)
	for _, v := range f.consumption.Weekly(ctx, "user-1") {
		assert.Zero(t, v)
	}
}

func TestCreateOrderSurvivesCartClearFailure(t *testing.T) {
	// Deletes are not exercised by failingStore, so break the cart save path
	// instead: a failing consumption write must not undo the order either.
	store := &failingStore{
		Store:   storage.NewMemoryStore(),
		failSet: map[storage.Kind]bool{storage.KindConsumption: true},
	}
	f := newFixture(store)
	ctx := context.Background()

	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))

	ord, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentCash})
	require.NoError(t, err)
	assert.NotNil(t, ord)

	assert.Len(t, f.orders.GetOrders(ctx, "user-1"), 1)
	assert.Empty(t, f.cart.GetCart(ctx, "user-1"))
}

func TestOrderHistoryMostRecentFirst(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())
	ctx := context.Background()

	seq := 0
	f.orders.newID = func() string {
		seq++
		return fmt.Sprintf("ORD%04d", seq)
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))
		_, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentCash})
		require.NoError(t, err)
	}

	orders := f.orders.GetOrders(ctx, "user-1")
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD0003", orders[0].ID)
	assert.Equal(t, "ORD0001", orders[2].ID)
}

func TestOrderHistoryCapped(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())
	ctx := context.Background()

	seq := 0
	f.orders.newID = func() string {
		seq++
		return fmt.Sprintf("ORD%04d", seq)
	}

	for i := 0; i < maxOrderHistory+5; i++ {
		require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))
		_, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentCash})
		require.NoError(t, err)
	}

	orders := f.orders.GetOrders(ctx, "user-1")
	require.Len(t, orders, maxOrderHistory)
	assert.Equal(t, fmt.Sprintf("ORD%04d", maxOrderHistory+5), orders[0].ID)
	// The five oldest have been discarded.
	assert.Equal(t, "ORD0006", orders[maxOrderHistory-1].ID)
}

func TestGetOrderByID(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "food-2", 1))
	created, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentCash})
	require.NoError(t, err)

	found, err := f.orders.GetOrder(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Total, found.Total)

	_, err = f.orders.GetOrder(ctx, "user-1", "ORD-missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateOrderPaymentErrorClasses(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())
	ctx := context.Background()
	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))

	_, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentEwallet})
	assert.ErrorIs(t, err, ErrInvalidPaymentDetails)

	_, err = f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentTransfer})
	assert.ErrorIs(t, err, ErrInvalidPaymentDetails)

	_, err = f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: "crypto"})
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)

	// None of the rejections consumed the cart.
	assert.Len(t, f.cart.GetCart(ctx, "user-1"), 1)
}

func TestOrderSnapshotIsIsolated(t *testing.T) {
	f := newFixture(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, f.cart.AddToCart(ctx, "user-1", "juice-1", 1))
	ord, err := f.orders.CreateOrder(ctx, "user-1", &CreateOrderRequest{PaymentMethod: PaymentCash})
	require.NoError(t, err)

	// Mutating the returned snapshot must not leak into stored history.
	ord.Items[0].Product.Name = "mutated"
	ord.Items[0].Product.Nutrition.Vitamins[0] = "mutated"

	stored, err := f.orders.GetOrder(ctx, "user-1", ord.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tropical Glow", stored.Items[0].Product.Name)
	assert.Equal(t, "Vitamin C", stored.Items[0].Product.Nutrition.Vitamins[0])
}

func TestOrderCalories(t *testing.T) {
	cat := catalog.Default()
	juice, err := cat.ByID("juice-1")
	require.NoError(t, err)
	food, err := cat.ByID("food-1")
	require.NoError(t, err)

	ord := &Order{Items: []Item{
		{Product: juice, Quantity: 2}, // 240
		{Product: food, Quantity: 1},  // 150
	}}
	assert.Equal(t, 390, ord.Calories())
}

func TestGenerateOrderIDFormat(t *testing.T) {
	id := generateOrderID()
	assert.True(t, len(id) > 9)
	assert.Equal(t, "ORD", id[:3])

	other := generateOrderID()
	assert.NotEqual(t, id, other)
}

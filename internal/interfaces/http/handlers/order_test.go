// internal/interfaces/http/handlers/order_test.go
package handlers

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshify/freshify-backend/internal/domain/cart"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/domain/consumption"
	"github.com/freshify/freshify-backend/internal/domain/order"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

func newOrderHandlerFixture() (*OrderHandler, *cart.Service) {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := storage.NewMemoryStore()
	cat := catalog.Default()
	locks := userlock.New()
	cartService := cart.NewService(store, cat, locks, log)
	consumptionService := consumption.NewService(store, locks, log, consumption.WeekStartSunday)
	orderService := order.NewService(store, cat, cartService, consumptionService, locks, log)

	return NewOrderHandler(orderService), cartService
}

func TestCreateOrderMissingProviderReturns400(t *testing.T) {
	handler, cartService := newOrderHandlerFixture()
	require.NoError(t, cartService.AddToCart(context.Background(), "user-1", "juice-1", 1))

	w, c := postJSON(t, "user-1", "/api/v1/orders", `{"payment_method":"ewallet"}`)
	handler.CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "provider")
}

func TestCreateOrderMissingBankReturns400(t *testing.T) {
	handler, cartService := newOrderHandlerFixture()
	require.NoError(t, cartService.AddToCart(context.Background(), "user-1", "juice-1", 1))

	w, c := postJSON(t, "user-1", "/api/v1/orders", `{"payment_method":"transfer"}`)
	handler.CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bank")
}

func TestCreateOrderUnknownMethodReturns400(t *testing.T) {
	handler, cartService := newOrderHandlerFixture()
	require.NoError(t, cartService.AddToCart(context.Background(), "user-1", "juice-1", 1))

	w, c := postJSON(t, "user-1", "/api/v1/orders", `{"payment_method":"crypto"}`)
	handler.CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEmptyCartReturns400(t *testing.T) {
	handler, _ := newOrderHandlerFixture()

	w, c := postJSON(t, "user-1", "/api/v1/orders", `{"payment_method":"cash"}`)
	handler.CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestCreateOrderSuccess(t *testing.T) {
	handler, cartService := newOrderHandlerFixture()
	require.NoError(t, cartService.AddToCart(context.Background(), "user-1", "juice-1", 2))

	w, c := postJSON(t, "user-1", "/api/v1/orders", `{"payment_method":"qris"}`)
	handler.CreateOrder(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total":55000`)
}

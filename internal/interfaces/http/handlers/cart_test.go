// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshify/freshify-backend/internal/domain/cart"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

func newCartHandlerFixture() (*CartHandler, *cart.Service) {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cartService := cart.NewService(storage.NewMemoryStore(), catalog.Default(), userlock.New(), log)
	return NewCartHandler(cartService), cartService
}

func postJSON(t *testing.T, userID, path, body string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)
	return w, c
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	handler, cartService := newCartHandlerFixture()

	w, c := postJSON(t, "user-1", "/api/v1/cart/items", `{"product_id":"juice-1"}`)
	handler.AddItem(c)

	assert.Equal(t, http.StatusOK, w.Code)

	items := cartService.GetCart(context.Background(), "user-1")
	require.Len(t, items, 1)
	assert.Equal(t, "juice-1", items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItemExplicitQuantity(t *testing.T) {
	handler, cartService := newCartHandlerFixture()

	w, c := postJSON(t, "user-1", "/api/v1/cart/items", `{"product_id":"juice-1","quantity":3}`)
	handler.AddItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	items := cartService.GetCart(context.Background(), "user-1")
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItemRejectsExplicitZeroQuantity(t *testing.T) {
	handler, cartService := newCartHandlerFixture()

	w, c := postJSON(t, "user-1", "/api/v1/cart/items", `{"product_id":"juice-1","quantity":0}`)
	handler.AddItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, cartService.GetCart(context.Background(), "user-1"))
}

func TestAddItemUnknownProductReturns404(t *testing.T) {
	handler, _ := newCartHandlerFixture()

	w, c := postJSON(t, "user-1", "/api/v1/cart/items", `{"product_id":"juice-99"}`)
	handler.AddItem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

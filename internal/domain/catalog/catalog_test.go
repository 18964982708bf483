// internal/domain/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	assert.Equal(t, 6, cat.Len())
	assert.Len(t, cat.ListByCategory(CategoryBeverage), 3)
	assert.Len(t, cat.ListByCategory(CategoryFood), 3)
}

func TestByID(t *testing.T) {
	cat := Default()

	prod, err := cat.ByID("juice-1")
	require.NoError(t, err)
	assert.Equal(t, "Tropical Glow", prod.Name)
	assert.Equal(t, int64(25000), prod.Price)
	assert.Equal(t, 120, prod.Nutrition.Calories)

	_, err = cat.ByID("juice-99")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestByBarcode(t *testing.T) {
	cat := Default()

	prod, err := cat.ByBarcode("8992761002001")
	require.NoError(t, err)
	assert.Equal(t, "food-1", prod.ID)

	_, err = cat.ByBarcode("0000000000000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestByIDReturnsIsolatedCopy(t *testing.T) {
	cat := Default()

	first, err := cat.ByID("juice-1")
	require.NoError(t, err)
	first.Name = "mutated"
	first.Nutrition.Vitamins[0] = "mutated"
	first.Ingredients[0] = "mutated"

	second, err := cat.ByID("juice-1")
	require.NoError(t, err)
	assert.Equal(t, "Tropical Glow", second.Name)
	assert.Equal(t, "Vitamin C", second.Nutrition.Vitamins[0])
	assert.Equal(t, "Mangga", second.Ingredients[0])
}

func TestListReturnsStableOrder(t *testing.T) {
	cat := Default()

	list := cat.List()
	require.Len(t, list, 6)
	assert.Equal(t, "juice-1", list[0].ID)
	assert.Equal(t, "food-3", list[5].ID)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Product{
		{ID: "p1", Name: "A", Category: CategoryFood, Price: 100},
		{ID: "p1", Name: "B", Category: CategoryFood, Price: 200},
	})
	assert.Error(t, err)
}

func TestNewRejectsNegativePrice(t *testing.T) {
	_, err := New([]Product{
		{ID: "p1", Name: "A", Category: CategoryFood, Price: -1},
	})
	assert.Error(t, err)
}

func TestNewRejectsDuplicateBarcodes(t *testing.T) {
	_, err := New([]Product{
		{ID: "p1", Name: "A", Category: CategoryFood, Price: 100, Barcode: "123"},
		{ID: "p2", Name: "B", Category: CategoryFood, Price: 200, Barcode: "123"},
	})
	assert.Error(t, err)
}

package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data.json"))
}

func intPtr(n int) *int           { return &n }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestSeedOnFirstLoad(t *testing.T) {
	s := newTestStore(t)

	products, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 20)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "20", products[19].ID)

	orders, err := s.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestReseedOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewStore(path)
	products, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 20)
}

func TestCreateAndGetProduct(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateProduct(context.Background(), models.ProductInput{
		Name:        "CANVAS CAP",
		Description: "Unstructured six-panel in heavy canvas.",
		Price:       55,
		Image:       "https://example.com/cap.jpg",
		Category:    "ACCESSORIES",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 10, created.Stock, "omitted stock defaults to 10")

	got, err := s.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateProductExplicitStock(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateProduct(context.Background(), models.ProductInput{
		Name:        "LIMITED RUN TEE",
		Description: "One-off print.",
		Price:       120,
		Image:       "https://example.com/tee.jpg",
		Stock:       intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Stock)
}

func TestGetProductNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	s := newTestStore(t)

	before, err := s.GetProduct(context.Background(), "3")
	require.NoError(t, err)

	updated, err := s.UpdateProduct(context.Background(), "3", models.ProductUpdate{
		Price: floatPtr(299),
		Stock: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 299.0, updated.Price)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.Image, updated.Image)

	// el merge debe persistir
	got, err := s.GetProduct(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateProductNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateProduct(context.Background(), "missing", models.ProductUpdate{
		Name: strPtr("RENAMED"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProductTwice(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.DeleteProduct(context.Background(), "7"))
	assert.ErrorIs(t, s.DeleteProduct(context.Background(), "7"), ErrNotFound)

	products, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 19)
}

func TestCreateOrder(t *testing.T) {
	s := newTestStore(t)

	items := []models.CartItem{
		{ProductID: "1", Quantity: 2},
		{ProductID: "8", Quantity: 1},
	}
	order, err := s.CreateOrder(context.Background(), models.OrderInput{
		CustomerName: "Ada Lovelace",
		Email:        "ada@example.com",
		Address:      "12 Analytical Way",
		Items:        items,
		Total:        565,
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	assert.Equal(t, items, order.Items)

	_, err = time.Parse(time.RFC3339, order.CreatedAt)
	assert.NoError(t, err, "createdAt is RFC3339")

	orders, err := s.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, *order, orders[0])
}

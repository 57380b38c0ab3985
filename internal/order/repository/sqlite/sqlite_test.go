package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/model"
	"customer-support-agent/internal/order/repository"
	"customer-support-agent/pkg/log"
)

func newSeededRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	r, err := Open(ctx, filepath.Join(t.TempDir(), "orders.db"), log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	require.NoError(t, r.Migrate(ctx, true))
	return r
}

func TestSeedOrders(t *testing.T) {
	orders := SeedOrders()
	require.Len(t, orders, 20)
	assert.Equal(t, "ORD12341", orders[0].OrderID)
	assert.Equal(t, "ORD12360", orders[19].OrderID)
	assert.Equal(t, "Shipped", orders[4].Status)
	assert.Equal(t, SeedOrders(), orders, "fixture data is fixed")
}

func TestGetOneOrder(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	o, err := r.GetOneOrder(ctx, repository.GetOneOrderOptions{OrderID: "ORD12345"})
	require.NoError(t, err)
	assert.Equal(t, "ORD12345", o.OrderID)
	assert.Equal(t, "Shipped", o.Status)
	assert.NotEmpty(t, o.TrackingNumber)

	missing, err := r.GetOneOrder(ctx, repository.GetOneOrderOptions{OrderID: "ORD99999"})
	require.NoError(t, err)
	assert.Equal(t, model.OrderRecord{}, missing)
}

func TestMigrateIsIdempotent(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Migrate(ctx, true))

	_, total, err := r.ListOrders(ctx, repository.ListOrdersOptions{})
	require.NoError(t, err)
	assert.Equal(t, 20, total)
}

func TestListOrders(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	t.Run("pagination", func(t *testing.T) {
		page, total, err := r.ListOrders(ctx, repository.ListOrdersOptions{Limit: 5, Offset: 5})
		require.NoError(t, err)
		assert.Equal(t, 20, total)
		assert.Len(t, page, 5)
	})

	t.Run("status filter is case-insensitive", func(t *testing.T) {
		orders, total, err := r.ListOrders(ctx, repository.ListOrdersOptions{Status: "shipped"})
		require.NoError(t, err)
		assert.Equal(t, len(orders), total)
		require.NotEmpty(t, orders)
		for _, o := range orders {
			assert.Equal(t, "Shipped", o.Status)
		}
	})

	t.Run("name and email", func(t *testing.T) {
		target := SeedOrders()[4]
		orders, _, err := r.ListOrders(ctx, repository.ListOrdersOptions{
			CustomerName:  target.CustomerName,
			CustomerEmail: target.CustomerEmail,
		})
		require.NoError(t, err)
		require.NotEmpty(t, orders)
		for _, o := range orders {
			assert.Equal(t, target.CustomerEmail, o.CustomerEmail)
		}
	})

	t.Run("no match", func(t *testing.T) {
		orders, total, err := r.ListOrders(ctx, repository.ListOrdersOptions{CustomerName: "nobody"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, orders)
	})
}

func TestListProducts(t *testing.T) {
	r := newSeededRepo(t)
	ctx := context.Background()

	all, err := r.ListProducts(ctx, repository.ListProductsOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 20)
	assert.Equal(t, "P001", all[0].ProductID)

	inStock, err := r.ListProducts(ctx, repository.ListProductsOptions{InStockOnly: true})
	require.NoError(t, err)
	assert.Len(t, inStock, 19)
}

func TestMigrateWithoutSeed(t *testing.T) {
	ctx := context.Background()
	r, err := Open(ctx, filepath.Join(t.TempDir(), "empty.db"), log.NewNop())
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Migrate(ctx, false))

	products, err := r.ListProducts(ctx, repository.ListProductsOptions{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

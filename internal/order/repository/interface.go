package repository

import (
	"context"

	"customer-support-agent/internal/model"
)

// Repository is the composed interface for the order store.
type Repository interface {
	OrderRepository
	ProductRepository
	// Migrate creates the schema and, when seed is true, loads the fixture data.
	Migrate(ctx context.Context, seed bool) error
	Close() error
}

// OrderRepository defines data access for orders.
type OrderRepository interface {
	GetOneOrder(ctx context.Context, opt GetOneOrderOptions) (model.OrderRecord, error)
	ListOrders(ctx context.Context, opt ListOrdersOptions) ([]model.OrderRecord, int, error)
}

// ProductRepository defines data access for the product catalog.
type ProductRepository interface {
	ListProducts(ctx context.Context, opt ListProductsOptions) ([]model.Product, error)
}

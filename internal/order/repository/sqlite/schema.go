package sqlite

import (
	"context"
	"fmt"

	"customer-support-agent/internal/order/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		customer_id TEXT,
		customer_name TEXT,
		customer_email TEXT,
		order_date TEXT,
		status TEXT,
		total_amount REAL,
		shipping_address TEXT,
		tracking_number TEXT,
		last_scan_location TEXT,
		estimated_delivery TEXT,
		items TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id TEXT PRIMARY KEY,
		name TEXT,
		category TEXT,
		price REAL,
		description TEXT,
		in_stock BOOLEAN,
		rating REAL
	)`,
}

// Migrate creates the tables and optionally seeds fixtures. Safe to run repeatedly.
func (r *implRepository) Migrate(ctx context.Context, seed bool) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
			return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
		}
	}
	if !seed {
		return nil
	}
	return r.seed(ctx)
}

func (r *implRepository) seed(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSeed, err)
	}
	defer tx.Rollback()

	const insertOrder = `INSERT OR REPLACE INTO orders VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, o := range SeedOrders() {
		if _, err := tx.ExecContext(ctx, insertOrder,
			o.OrderID, o.CustomerID, o.CustomerName, o.CustomerEmail, o.OrderDate, o.Status,
			o.TotalAmount, o.ShippingAddress, o.TrackingNumber, o.LastScanLocation, o.EstimatedDelivery, o.Items,
		); err != nil {
			r.l.Errorf(ctx, "%s orders: %v", r.dsn("seed"), err)
			return fmt.Errorf("%w: %v", repository.ErrFailedToSeed, err)
		}
	}

	const insertProduct = `INSERT OR REPLACE INTO products VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, p := range SeedProducts() {
		if _, err := tx.ExecContext(ctx, insertProduct,
			p.ProductID, p.Name, p.Category, p.Price, p.Description, p.InStock, p.Rating,
		); err != nil {
			r.l.Errorf(ctx, "%s products: %v", r.dsn("seed"), err)
			return fmt.Errorf("%w: %v", repository.ErrFailedToSeed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSeed, err)
	}
	return nil
}

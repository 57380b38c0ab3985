package sqlite

import (
	"context"

	"customer-support-agent/internal/model"
	repo "customer-support-agent/internal/order/repository"
)

// ListProducts returns the catalog ordered by product id.
func (r *implRepository) ListProducts(ctx context.Context, opt repo.ListProductsOptions) ([]model.Product, error) {
	query := `SELECT product_id, name, category, price, description, in_stock, rating FROM products`
	if opt.InStockOnly {
		query += ` WHERE in_stock = 1`
	}
	query += ` ORDER BY product_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProducts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Category, &p.Price, &p.Description, &p.InStock, &p.Rating); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProducts"), err)
			return nil, repo.ErrFailedToList
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return products, nil
}

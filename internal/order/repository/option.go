package repository

// GetOneOrderOptions selects a single order.
type GetOneOrderOptions struct {
	OrderID string
}

// ListOrdersOptions holds filter and pagination parameters for listing orders.
// Name and email filters are case-insensitive substring matches.
type ListOrdersOptions struct {
	Status        string
	CustomerName  string
	CustomerEmail string
	Limit         int
	Offset        int
}

// ListProductsOptions filters the catalog.
type ListProductsOptions struct {
	InStockOnly bool
}

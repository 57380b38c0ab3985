package usecase

import (
	"context"

	"customer-support-agent/internal/model"
	"customer-support-agent/internal/order"
	repo "customer-support-agent/internal/order/repository"
)

// List returns a paginated list of orders (search by status, name, email).
func (uc *implUseCase) List(ctx context.Context, input order.ListInput) (order.ListOutput, error) {
	orders, total, err := uc.repo.ListOrders(ctx, repo.ListOrdersOptions{
		Status:        input.Status,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Limit:         input.Limit,
		Offset:        input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListOrders: %v", err)
		return order.ListOutput{}, err
	}

	return order.ListOutput{
		Orders: orders,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// ListProducts returns the full catalog.
func (uc *implUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := uc.repo.ListProducts(ctx, repo.ListProductsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListProducts: %v", err)
		return nil, err
	}
	return products, nil
}

package order

import (
	"context"

	"customer-support-agent/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Fetch returns ErrOrderNotFound when no order has the id.
	Fetch(ctx context.Context, id string) (model.OrderRecord, error)
	// Lookup extracts an identifier from free text and fetches it. A miss is reported
	// through OrderLookup.NotFound, never as an error.
	Lookup(ctx context.Context, text string) (model.OrderLookup, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

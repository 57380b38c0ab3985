package usecase

import (
	"context"
	"errors"

	"customer-support-agent/internal/model"
	"customer-support-agent/internal/order"
	repo "customer-support-agent/internal/order/repository"
)

// Fetch retrieves one order. Returns ErrOrderNotFound when it does not exist.
func (uc *implUseCase) Fetch(ctx context.Context, id string) (model.OrderRecord, error) {
	id, ok := order.NormalizeID(id)
	if !ok {
		return model.OrderRecord{}, order.ErrInvalidOrderID
	}

	rec, err := uc.repo.GetOneOrder(ctx, repo.GetOneOrderOptions{OrderID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Fetch GetOneOrder: %v", err)
		return model.OrderRecord{}, err
	}
	if rec.OrderID == "" {
		return model.OrderRecord{}, order.ErrOrderNotFound
	}
	return rec, nil
}

// Lookup turns a miss into a NotFound outcome. Text without an identifier yields
// an empty lookup.
func (uc *implUseCase) Lookup(ctx context.Context, text string) (model.OrderLookup, error) {
	id, ok := order.ExtractIdentifier(text)
	if !ok {
		return model.OrderLookup{}, nil
	}

	rec, err := uc.Fetch(ctx, id)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		uc.l.Infof(ctx, "uc.Lookup: order %s not found", id)
		return model.OrderLookup{Identifier: id, NotFound: true}, nil
	case err != nil:
		return model.OrderLookup{Identifier: id}, err
	}
	return model.OrderLookup{Identifier: id, Record: &rec}, nil
}

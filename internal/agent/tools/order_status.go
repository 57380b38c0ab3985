package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"customer-support-agent/internal/model"
	"customer-support-agent/internal/order"
)

// OrderFetcher loads one order by id.
type OrderFetcher interface {
	Fetch(ctx context.Context, id string) (model.OrderRecord, error)
}

// OrderStatusTool looks up the status of an order.
type OrderStatusTool struct {
	orders OrderFetcher
}

func NewOrderStatusTool(orders OrderFetcher) *OrderStatusTool {
	return &OrderStatusTool{orders: orders}
}

func (t *OrderStatusTool) Name() string {
	return "order_status"
}

func (t *OrderStatusTool) Description() string {
	return "Look up an order by its identifier (for example ORD12345) and return its status, tracking number and estimated delivery."
}

func (t *OrderStatusTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order identifier such as ORD12345",
			},
		},
		"required": []string{"order_id"},
	}
}

func (t *OrderStatusTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	id, err := requiredString(params, "order_id")
	if err != nil {
		return nil, err
	}
	id = strings.ToUpper(id)

	rec, err := t.orders.Fetch(ctx, id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, fmt.Errorf("order %s not found", id)
		}
		return nil, fmt.Errorf("fetch order %s: %w", id, err)
	}
	return rec, nil
}

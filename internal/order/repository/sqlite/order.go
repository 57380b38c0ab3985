package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"customer-support-agent/internal/model"
	repo "customer-support-agent/internal/order/repository"
)

const orderColumns = `order_id, customer_id, customer_name, customer_email, order_date, status, total_amount,
	shipping_address, tracking_number, last_scan_location, estimated_delivery, items`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (model.OrderRecord, error) {
	var o model.OrderRecord
	err := s.Scan(&o.OrderID, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &o.OrderDate, &o.Status,
		&o.TotalAmount, &o.ShippingAddress, &o.TrackingNumber, &o.LastScanLocation, &o.EstimatedDelivery, &o.Items)
	return o, err
}

// GetOneOrder returns a zero-value record (OrderID == "") when nothing matches.
func (r *implRepository) GetOneOrder(ctx context.Context, opt repo.GetOneOrderOptions) (model.OrderRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE order_id = ? LIMIT 1`, orderColumns)

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, opt.OrderID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.OrderRecord{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOrder"), err)
		return model.OrderRecord{}, fmt.Errorf("%w: %w", repo.ErrFailedToGet, err)
	}
	return o, nil
}

// ListOrders returns one page of orders and the total count for the filters.
func (r *implRepository) ListOrders(ctx context.Context, opt repo.ListOrdersOptions) ([]model.OrderRecord, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListOrders"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := r.buildPagination(opt)
	query := fmt.Sprintf("SELECT %s FROM orders WHERE %s ORDER BY order_date DESC, order_id %s", orderColumns, where, page)
	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrders"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	orders := make([]model.OrderRecord, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return orders, total, nil
}

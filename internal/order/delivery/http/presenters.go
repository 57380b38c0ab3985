package http

import (
	"customer-support-agent/internal/model"
	"customer-support-agent/internal/order"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// --- Request DTOs ---

type listReq struct {
	Status        string `form:"status"`
	CustomerName  string `form:"customer_name"`
	CustomerEmail string `form:"customer_email"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() order.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return order.ListInput{
		Status:        r.Status,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Limit:         limit,
		Offset:        r.Offset,
	}
}

// --- Response DTOs ---

type orderResp struct {
	OrderID           string  `json:"order_id"`
	CustomerName      string  `json:"customer_name"`
	Status            string  `json:"status"`
	OrderDate         string  `json:"order_date"`
	TotalAmount       float64 `json:"total_amount"`
	TrackingNumber    string  `json:"tracking_number"`
	LastScanLocation  string  `json:"last_scan_location"`
	EstimatedDelivery string  `json:"estimated_delivery"`
	Items             string  `json:"items"`
}

func newOrderResp(o model.OrderRecord) orderResp {
	return orderResp{
		OrderID:           o.OrderID,
		CustomerName:      o.CustomerName,
		Status:            o.Status,
		OrderDate:         o.OrderDate,
		TotalAmount:       o.TotalAmount,
		TrackingNumber:    o.TrackingNumber,
		LastScanLocation:  o.LastScanLocation,
		EstimatedDelivery: o.EstimatedDelivery,
		Items:             o.Items,
	}
}

type detailResp struct {
	Order orderResp `json:"order"`
}

type listResp struct {
	Orders []orderResp `json:"orders"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out order.ListOutput) listResp {
	orders := make([]orderResp, len(out.Orders))
	for i, o := range out.Orders {
		orders[i] = newOrderResp(o)
	}
	return listResp{
		Orders: orders,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

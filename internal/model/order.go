package model

// OrderRecord is a read-only order as returned by the order store.
type OrderRecord struct {
	OrderID           string  `json:"order_id"`
	CustomerID        string  `json:"customer_id"`
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	OrderDate         string  `json:"order_date"`
	Status            string  `json:"status"`
	TotalAmount       float64 `json:"total_amount"`
	ShippingAddress   string  `json:"shipping_address"`
	TrackingNumber    string  `json:"tracking_number"`
	LastScanLocation  string  `json:"last_scan_location"`
	EstimatedDelivery string  `json:"estimated_delivery"`
	Items             string  `json:"items"`
}

// Product is a catalog entry.
type Product struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	InStock     bool    `json:"in_stock"`
	Rating      float64 `json:"rating"`
}

// OrderLookup is the order stage output. Found and NotFound are mutually exclusive;
// both false means the message carried no order identifier.
type OrderLookup struct {
	Identifier string       `json:"identifier,omitempty"`
	Record     *OrderRecord `json:"record,omitempty"`
	NotFound   bool         `json:"not_found"`
}

// Found reports whether a record was returned.
func (o OrderLookup) Found() bool {
	return o.Record != nil
}

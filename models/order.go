package models

// OrderLineItem references a catalog product inside an order payload.
type OrderLineItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderRequest is the body POSTed to the WooCommerce orders endpoint. Payment
// is always the offline bank-transfer method with set_paid false; capture
// happens on the WooCommerce side.
type OrderRequest struct {
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodTitle string          `json:"payment_method_title"`
	SetPaid            bool            `json:"set_paid"`
	Billing            CustomerInfo    `json:"billing"`
	Shipping           CustomerInfo    `json:"shipping"`
	LineItems          []OrderLineItem `json:"line_items"`
	CustomerNote       string          `json:"customer_note"`
}

// Order is the slice of the WooCommerce order response the storefront shows.
type Order struct {
	ID     uint   `json:"id"`
	Total  string `json:"total"`
	Status string `json:"status,omitempty"`
}

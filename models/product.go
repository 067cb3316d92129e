package models

import "strconv"

// Stock statuses WooCommerce reports for a product.
const (
	StockInStock     = "instock"
	StockOutOfStock  = "outofstock"
	StockOnBackorder = "onbackorder"
)

// Product is the catalog entry as the WooCommerce REST API returns it. The
// catalog is owned by the remote site; the gateway only reads these.
type Product struct {
	ID           uint              `json:"id"`
	Name         string            `json:"name"`
	Price        string            `json:"price"`
	RegularPrice string            `json:"regular_price,omitempty"`
	StockStatus  string            `json:"stock_status"`
	Categories   []ProductCategory `json:"categories,omitempty"`
	Images       []ProductImage    `json:"images,omitempty"`
	Permalink    string            `json:"permalink,omitempty"`
}

type ProductCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name,omitempty"`
}

type ProductImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// PriceValue parses the decimal price string; an unset or malformed price
// reads as 0, matching how the storefront renders "price not set".
func (p Product) PriceValue() float64 {
	v, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0
	}
	return v
}

// PrimaryImage returns the first image source, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}

// ProductDraft is the creation form posted to the catalog. Type is always
// forced to "simple" before submission.
type ProductDraft struct {
	Name             string            `json:"name" binding:"required"`
	Type             string            `json:"type"`
	RegularPrice     string            `json:"regular_price" binding:"required"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	Categories       []ProductCategory `json:"categories,omitempty"`
	StockStatus      string            `json:"stock_status"`
}

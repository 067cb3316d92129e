package models

import "time"

// CartItem is one line of a session's cart. Price and Image are snapshots
// taken when the product was first added; they are not refreshed if the
// catalog changes afterwards.
type CartItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// CartRecord is the durable row holding one serialized cart per storage key.
// The payload is the JSON-encoded []CartItem, rewritten after every mutation.
type CartRecord struct {
	Key       string `gorm:"primaryKey;column:storage_key"`
	Payload   []byte
	UpdatedAt time.Time
}

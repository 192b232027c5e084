package request

import "strings"

// AddItemRequest adds one configured product to the cart or packages.
type AddItemRequest struct {
	ProductKey    string         `json:"product_key" binding:"required"`
	Configuration map[string]any `json:"configuration"`
	Qty           int            `json:"qty"`
}

func (r AddItemRequest) ResolveProductKey() string {
	return strings.TrimSpace(r.ProductKey)
}

// UpdateQuantityRequest sets the quantity on an existing row.
type UpdateQuantityRequest struct {
	Qty int `json:"qty" binding:"required"`
}

// SessionRequest updates the ambient location context. Blank fields are left
// unchanged.
type SessionRequest struct {
	IBX  string `json:"ibx"`
	Cage string `json:"cage"`
}

// PriceRequest asks for a pricing preview of a catalog product under the
// given configuration.
type PriceRequest struct {
	Configuration map[string]any `json:"configuration"`
}

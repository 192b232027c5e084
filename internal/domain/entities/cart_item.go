package entities

// CartItem is one row in the cart or packages collection.
//
// ID is the Unix-millisecond timestamp minted when the row was added; rows
// are never coalesced, so adding the same product twice creates two rows.
// Price is the monthly price computed at add time.
type CartItem struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Category      ProductCategory `json:"category"`
	Key           string          `json:"key,omitempty"`
	Price         float64         `json:"price"`
	Configuration map[string]any  `json:"configuration,omitempty"`
	Qty           int             `json:"qty"`
}

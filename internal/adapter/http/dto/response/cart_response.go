package response

import "colohub/internal/domain/entities"

type CartItemResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Key           string         `json:"key,omitempty"`
	Price         float64        `json:"price"`
	Configuration map[string]any `json:"configuration,omitempty"`
	Qty           int            `json:"qty"`
}

// CartResponse lists the rows plus the legacy flat monthly total (sum of the
// price field, qty-ignoring).
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func FromCart(items []entities.CartItem, total float64) CartResponse {
	out := CartResponse{Items: make([]CartItemResponse, 0, len(items)), Total: total}
	for _, it := range items {
		out.Items = append(out.Items, CartItemResponse{
			ID:            it.ID,
			Name:          it.Name,
			Category:      string(it.Category),
			Key:           it.Key,
			Price:         it.Price,
			Configuration: it.Configuration,
			Qty:           it.Qty,
		})
	}
	return out
}

type SessionResponse struct {
	SelectedIBX  string `json:"selected_ibx"`
	SelectedCage string `json:"selected_cage"`
}

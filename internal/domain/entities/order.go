package entities

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Order is created from an accepted quote. QuoteID is a weak back-reference
// used for lookups only; deleting a quote never cascades into its orders.
type Order struct {
	ID                   string       `json:"id"`
	OrderNumber          string       `json:"order_number"`
	QuoteID              string       `json:"quote_id,omitempty"`
	Items                []LineItem   `json:"items"`
	Total                float64      `json:"total"`
	MonthlyTotal         float64      `json:"monthly_total"`
	Status               OrderStatus  `json:"status"`
	CreatedAt            time.Time    `json:"created_at"`
	Customer             CustomerInfo `json:"customer_info"`
	ConfigurationSummary string       `json:"configuration_summary,omitempty"`
}

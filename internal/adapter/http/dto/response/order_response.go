package response

import (
	"time"

	"colohub/internal/domain/entities"
)

type OrderResponse struct {
	OrderID              string             `json:"order_id"`
	ID                   string             `json:"id"`
	OrderNumber          string             `json:"order_number"`
	QuoteID              string             `json:"quote_id,omitempty"`
	Status               string             `json:"status"`
	Items                []LineItemResponse `json:"items"`
	Total                float64            `json:"total"`
	MonthlyTotal         float64            `json:"monthly_total"`
	CreatedAt            time.Time          `json:"created_at"`
	Customer             CustomerResponse   `json:"customer_info"`
	ConfigurationSummary string             `json:"configuration_summary,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		OrderID:              o.ID,
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		QuoteID:              o.QuoteID,
		Status:               string(o.Status),
		Items:                make([]LineItemResponse, 0, len(o.Items)),
		Total:                o.Total,
		MonthlyTotal:         o.MonthlyTotal,
		CreatedAt:            o.CreatedAt,
		Customer:             CustomerResponse{Name: o.Customer.Name, Email: o.Customer.Email, Company: o.Customer.Company},
		ConfigurationSummary: o.ConfigurationSummary,
	}
	for _, li := range o.Items {
		res.Items = append(res.Items, FromLineItem(li))
	}
	return res
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

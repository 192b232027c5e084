package request

import (
	"strings"

	"colohub/internal/domain/entities"
	"colohub/internal/usecase"
)

// MoneyRequest mirrors entities.Money on the wire.
type MoneyRequest struct {
	OneTime   float64 `json:"one_time"`
	Recurring float64 `json:"recurring"`
}

// LineItemRequest is one entry of an explicit item list submitted to the
// quote creation endpoint.
type LineItemRequest struct {
	Key                string         `json:"key" binding:"required"`
	Name               string         `json:"name" binding:"required"`
	Category           string         `json:"category"`
	Qty                int            `json:"qty"`
	UnitPrice          MoneyRequest   `json:"unit_price"`
	NeedsConfiguration bool           `json:"needs_configuration"`
	ConfigurationScope string         `json:"configuration_scope"`
	Configuration      map[string]any `json:"configuration"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	qty := r.Qty
	if qty < 1 {
		qty = 1
	}
	unit := entities.Money{OneTime: r.UnitPrice.OneTime, Recurring: r.UnitPrice.Recurring}
	li := entities.LineItem{
		Key:        r.Key,
		Name:       r.Name,
		Category:   entities.ProductCategory(r.Category),
		Qty:        qty,
		UnitPrice:  unit,
		TotalPrice: unit.Times(qty),
		Product: entities.ProductRef{
			ID:                    r.Key,
			Name:                  r.Name,
			Category:              entities.ProductCategory(r.Category),
			ConfigurationRequired: r.NeedsConfiguration,
			ConfigurationScope:    entities.ConfigurationScope(r.ConfigurationScope),
		},
		NeedsConfiguration: r.NeedsConfiguration,
		Configuration:      r.Configuration,
	}
	return li.NormalizeProgress()
}

// CreateQuoteRequest creates a quote either from the current cart contents
// (from_cart) or from an explicit item list. When both are present the item
// list wins, matching the usecase input precedence.
type CreateQuoteRequest struct {
	FromCart bool              `json:"from_cart"`
	Items    []LineItemRequest `json:"items"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	if len(r.Items) > 0 {
		items := make([]entities.LineItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, it.ToEntity())
		}
		return usecase.CreateQuoteInput{Items: items}
	}
	return usecase.CreateQuoteInput{FromCart: r.FromCart}
}

// SignatureRequest carries the signer identity for accept/decline.
type SignatureRequest struct {
	SignedBy      string `json:"signed_by" binding:"required"`
	SignedByEmail string `json:"signed_by_email"`
}

func (r SignatureRequest) ResolveSignedBy() string {
	return strings.TrimSpace(r.SignedBy)
}

// ConfigureItemRequest submits one configuration for a quote line item.
type ConfigureItemRequest struct {
	Configuration map[string]any `json:"configuration" binding:"required"`
}

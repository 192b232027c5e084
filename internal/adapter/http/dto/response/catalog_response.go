package response

import (
	"colohub/internal/domain/entities"
	"colohub/internal/domain/pricing"
)

type ProductResponse struct {
	Key                   string                     `json:"key"`
	Name                  string                     `json:"name"`
	Category              string                     `json:"category"`
	BasePrice             float64                    `json:"base_price"`
	Fields                []entities.ProductField    `json:"fields,omitempty"`
	Templates             []entities.ProductTemplate `json:"templates,omitempty"`
	ConfigurationRequired bool                       `json:"configuration_required"`
	ConfigurationScope    string                     `json:"configuration_scope,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		Key:                   p.Key,
		Name:                  p.Name,
		Category:              string(p.Category),
		BasePrice:             p.BasePrice,
		Fields:                p.Fields,
		Templates:             p.Templates,
		ConfigurationRequired: p.ConfigurationRequired,
		ConfigurationScope:    string(p.ConfigurationScope),
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// PriceResponse previews the monthly price of a configuration. The cabinet
// breakdown is attached for the colocation family so every charge is
// auditable line by line.
type PriceResponse struct {
	ProductKey string                  `json:"product_key"`
	Price      float64                 `json:"price"`
	Cabinet    *pricing.CabinetPricing `json:"cabinet_breakdown,omitempty"`
}

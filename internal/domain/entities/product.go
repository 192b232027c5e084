package entities

// ProductCategory groups catalog entries into the two service families sold
// through the portal.
type ProductCategory string

const (
	CategoryColocation      ProductCategory = "Colocation"
	CategoryInterconnection ProductCategory = "Interconnection"
)

// ConfigurationScope decides how many configuration submissions a line item
// needs before it counts as complete.
//
//   - per-line-item: one configuration covers the whole line.
//   - per-quantity:  one configuration per unit of quantity.
type ConfigurationScope string

const (
	ScopePerLineItem ConfigurationScope = "per-line-item"
	ScopePerQuantity ConfigurationScope = "per-quantity"
)

type ProductField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Required bool     `json:"required"`
}

// ProductTemplate is a preset configuration bundle with fixed display pricing.
type ProductTemplate struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	Configuration map[string]any `json:"configuration"`
}

// Product is a read-only catalog definition. The commerce core never mutates
// a Product; it only reads fields and base pricing from it.
type Product struct {
	Key                   string             `json:"key"`
	Name                  string             `json:"name"`
	Category              ProductCategory    `json:"category"`
	BasePrice             float64            `json:"base_price"`
	Fields                []ProductField     `json:"fields,omitempty"`
	Templates             []ProductTemplate  `json:"templates,omitempty"`
	ConfigurationRequired bool               `json:"configuration_required"`
	ConfigurationScope    ConfigurationScope `json:"configuration_scope,omitempty"`
}

// Ref is the denormalized product snapshot embedded in a line item, so quotes
// and orders stay readable even if the catalog changes later.
func (p Product) Ref() ProductRef {
	return ProductRef{
		ID:                    p.Key,
		Name:                  p.Name,
		Category:              p.Category,
		ConfigurationRequired: p.ConfigurationRequired,
		ConfigurationScope:    p.ConfigurationScope,
	}
}

type ProductRef struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	Category              ProductCategory    `json:"category"`
	ConfigurationRequired bool               `json:"configuration_required"`
	ConfigurationScope    ConfigurationScope `json:"configuration_scope,omitempty"`
}

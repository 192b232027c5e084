// Package catalog holds the static data-center services catalog. It is a
// read-only lookup collaborator: the commerce core resolves products by key
// and never writes back.
package catalog

import (
	"colohub/internal/domain/entities"
	"colohub/internal/usecase/interfaces"
)

type Catalog struct {
	products map[string]entities.Product
	ordered  []string
}

var _ interfaces.ICatalog = (*Catalog)(nil)

// NewStaticCatalog seeds the demo product set: colocation cabinets, the
// interconnect family and bundled packages.
func NewStaticCatalog() *Catalog {
	c := &Catalog{products: map[string]entities.Product{}}
	for _, p := range seedProducts() {
		c.products[p.Key] = p
		c.ordered = append(c.ordered, p.Key)
	}
	return c
}

func (c *Catalog) Get(key string) (entities.Product, bool) {
	p, ok := c.products[key]
	return p, ok
}

// List returns products in seed order.
func (c *Catalog) List() []entities.Product {
	out := make([]entities.Product, 0, len(c.ordered))
	for _, key := range c.ordered {
		out = append(out, c.products[key])
	}
	return out
}

func seedProducts() []entities.Product {
	return []entities.Product{
		{
			Key:                   "colocation-cabinet",
			Name:                  "Colocation Cabinet",
			Category:              entities.CategoryColocation,
			BasePrice:             850,
			ConfigurationRequired: true,
			ConfigurationScope:    entities.ScopePerQuantity,
			Fields: []entities.ProductField{
				{Name: "cabinetSize", Label: "Cabinet Size", Type: "select", Options: []string{"Full Rack", "Half Rack", "Quarter Rack"}, Required: true},
				{Name: "circuitType", Label: "Circuit Type", Type: "select", Options: []string{"AC Single-Phase", "AC Three-Phase", "DC"}, Required: true},
				{Name: "pduCount", Label: "PDUs", Type: "number", Min: 0, Max: 8},
				{Name: "drawCapKW", Label: "Power Draw Cap (kW)", Type: "number", Min: 1, Max: 20},
			},
			Templates: []entities.ProductTemplate{
				{
					Name:        "Standard Full Cabinet",
					Description: "Full rack, single-phase AC, 2 PDUs, 5 kW draw cap",
					Price:       1000,
					Configuration: map[string]any{
						"cabinetSize": "Full Rack",
						"circuitType": "AC Single-Phase",
						"pduCount":    2,
						"drawCapKW":   5,
					},
				},
				{
					Name:        "High-Density DC Cabinet",
					Description: "Full rack, DC power, 4 PDUs, 12 kW draw cap",
					Price:       2100,
					Configuration: map[string]any{
						"cabinetSize": "Full Rack",
						"circuitType": "DC",
						"pduCount":    4,
						"drawCapKW":   12,
					},
				},
			},
		},
		{
			Key:                   "fiber-connection",
			Name:                  "Fiber Connection",
			Category:              entities.CategoryInterconnection,
			BasePrice:             500,
			ConfigurationRequired: true,
			ConfigurationScope:    entities.ScopePerLineItem,
			Fields: []entities.ProductField{
				{Name: "speed", Label: "Port Speed", Type: "select", Options: []string{"1G", "10G", "100G"}, Required: true},
				{Name: "bandwidth", Label: "Committed Bandwidth (Mbps)", Type: "number", Min: 10, Max: 100000},
			},
		},
		{
			Key:                   "metro-connect",
			Name:                  "Metro Connect",
			Category:              entities.CategoryInterconnection,
			BasePrice:             750,
			ConfigurationRequired: true,
			ConfigurationScope:    entities.ScopePerQuantity,
			Fields: []entities.ProductField{
				{Name: "speed", Label: "Port Speed", Type: "select", Options: []string{"1G", "10G", "100G"}, Required: true},
				{Name: "bandwidth", Label: "Committed Bandwidth (Mbps)", Type: "number", Min: 10, Max: 100000},
			},
		},
		{
			Key:                   "campus-cross-connect",
			Name:                  "Campus Cross Connect",
			Category:              entities.CategoryInterconnection,
			BasePrice:             300,
			ConfigurationRequired: false,
			Fields: []entities.ProductField{
				{Name: "speed", Label: "Port Speed", Type: "select", Options: []string{"1G", "10G"}},
			},
		},
		{
			Key:                   "starter-bundle",
			Name:                  "Starter Bundle",
			Category:              entities.CategoryColocation,
			BasePrice:             1250,
			ConfigurationRequired: true,
			ConfigurationScope:    entities.ScopePerLineItem,
			Fields: []entities.ProductField{
				{Name: "cabinetSize", Label: "Cabinet Size", Type: "select", Options: []string{"Half Rack", "Quarter Rack"}, Required: true},
				{Name: "speed", Label: "Included Port Speed", Type: "select", Options: []string{"1G", "10G"}, Required: true},
			},
		},
	}
}

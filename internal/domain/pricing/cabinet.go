package pricing

import "colohub/internal/domain/entities"

// Colocation cabinet rate card. The cabinet calculator produces an itemized
// breakdown so every charge can be audited line by line, not just as an
// aggregate.
const (
	cabinetBaseMonthly = 850

	pduMonthlyEach = 75
	pduInstallEach = 50

	includedDrawKW   = 5
	drawCapPerKWOver = 100

	cabinetInstallFee = 500
)

var dimensionAdjustment = map[string]float64{
	"Full Rack":    0,
	"Half Rack":    -300,
	"Quarter Rack": -450,
}

var circuitSurcharge = map[string]float64{
	"AC Single-Phase": 0,
	"AC Three-Phase":  150,
	"DC":              250,
}

// CabinetConfig is the configuration subset the cabinet calculator reads.
type CabinetConfig struct {
	CabinetSize string
	CircuitType string
	PDUCount    int
	DrawCapKW   float64
}

// CabinetPricing itemizes a colocation cabinet quote. MonthlyTotal is the
// MRC sum of the monthly lines; OneTimeTotal is the NRC install charge.
type CabinetPricing struct {
	CabinetBase         float64 `json:"cabinet_base"`
	DimensionAdjustment float64 `json:"dimension_adjustment"`
	CircuitSurcharge    float64 `json:"circuit_surcharge"`
	PDUCost             float64 `json:"pdu_cost"`
	DrawCapSurcharge    float64 `json:"draw_cap_surcharge"`

	MonthlyTotal float64 `json:"monthly_total"`
	OneTimeTotal float64 `json:"one_time_total"`
}

// CalculateCabinetPricing computes the itemized cabinet breakdown. Pure and
// deterministic, like CalculatePrice.
func CalculateCabinetPricing(cfg CabinetConfig) CabinetPricing {
	p := CabinetPricing{
		CabinetBase:         cabinetBaseMonthly,
		DimensionAdjustment: dimensionAdjustment[cfg.CabinetSize],
		CircuitSurcharge:    circuitSurcharge[cfg.CircuitType],
	}

	if cfg.PDUCount > 0 {
		p.PDUCost = float64(cfg.PDUCount) * pduMonthlyEach
	}
	if cfg.DrawCapKW > includedDrawKW {
		p.DrawCapSurcharge = (cfg.DrawCapKW - includedDrawKW) * drawCapPerKWOver
	}

	p.MonthlyTotal = p.CabinetBase + p.DimensionAdjustment + p.CircuitSurcharge + p.PDUCost + p.DrawCapSurcharge
	p.OneTimeTotal = cabinetInstallFee
	if cfg.PDUCount > 0 {
		p.OneTimeTotal += float64(cfg.PDUCount) * pduInstallEach
	}
	return p
}

// CabinetConfigFrom extracts the cabinet fields from a generic configuration
// map, tolerating the mixed value types a form layer produces.
func CabinetConfigFrom(configuration map[string]any) CabinetConfig {
	cfg := CabinetConfig{}
	if size, ok := stringValue(configuration, "cabinetSize"); ok {
		cfg.CabinetSize = size
	}
	if circuit, ok := stringValue(configuration, "circuitType"); ok {
		cfg.CircuitType = circuit
	}
	if count, ok := numericValue(configuration, "pduCount"); ok {
		cfg.PDUCount = int(count)
	}
	if kw, ok := numericValue(configuration, "drawCapKW"); ok {
		cfg.DrawCapKW = kw
	}
	return cfg
}

// IsCabinetProduct reports whether a product belongs to the colocation
// cabinet family and should be priced with the itemized calculator.
func IsCabinetProduct(p entities.Product) bool {
	return p.Category == entities.CategoryColocation
}

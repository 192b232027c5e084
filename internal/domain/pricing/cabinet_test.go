package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCabinetPricing_ItemizedBreakdown(t *testing.T) {
	p := CalculateCabinetPricing(CabinetConfig{
		CabinetSize: "Full Rack",
		CircuitType: "DC",
		PDUCount:    2,
		DrawCapKW:   8,
	})

	// Every charge must be reproducible line by line.
	assert.Equal(t, 850.0, p.CabinetBase)
	assert.Equal(t, 0.0, p.DimensionAdjustment)
	assert.Equal(t, 250.0, p.CircuitSurcharge)
	assert.Equal(t, 150.0, p.PDUCost)
	assert.Equal(t, 300.0, p.DrawCapSurcharge)

	assert.Equal(t, 1550.0, p.MonthlyTotal)
	assert.Equal(t, 600.0, p.OneTimeTotal)
}

func TestCalculateCabinetPricing_SmallerDimensions(t *testing.T) {
	half := CalculateCabinetPricing(CabinetConfig{CabinetSize: "Half Rack", CircuitType: "AC Single-Phase"})
	assert.Equal(t, -300.0, half.DimensionAdjustment)
	assert.Equal(t, 550.0, half.MonthlyTotal)
	assert.Equal(t, 500.0, half.OneTimeTotal)

	quarter := CalculateCabinetPricing(CabinetConfig{CabinetSize: "Quarter Rack"})
	assert.Equal(t, 400.0, quarter.MonthlyTotal)
}

func TestCalculateCabinetPricing_DrawCapWithinIncludedPower(t *testing.T) {
	p := CalculateCabinetPricing(CabinetConfig{CabinetSize: "Full Rack", DrawCapKW: 5})
	assert.Equal(t, 0.0, p.DrawCapSurcharge)
}

func TestCabinetConfigFrom_MixedValueTypes(t *testing.T) {
	cfg := CabinetConfigFrom(map[string]any{
		"cabinetSize": "Half Rack",
		"circuitType": "AC Three-Phase",
		"pduCount":    "3",
		"drawCapKW":   7.5,
	})

	assert.Equal(t, "Half Rack", cfg.CabinetSize)
	assert.Equal(t, "AC Three-Phase", cfg.CircuitType)
	assert.Equal(t, 3, cfg.PDUCount)
	assert.Equal(t, 7.5, cfg.DrawCapKW)
}

package pricing

import (
	"math"
	"strconv"

	"colohub/internal/domain/entities"
)

// Monthly surcharge tables keyed by configuration field value. Surcharges are
// additive and evaluated independently; unrecognized keys contribute zero.
var cabinetSizeSurcharge = map[string]float64{
	"Full Rack":    200,
	"Half Rack":    100,
	"Quarter Rack": 50,
}

var speedSurcharge = map[string]float64{
	"100G": 500,
	"10G":  200,
	"1G":   50,
}

// bandwidthRate is the monthly charge per committed Mbps.
const bandwidthRate = 0.1

// CalculatePrice maps a product definition plus a configuration onto a
// monthly price. It is pure: identical inputs always produce identical
// output, and it is re-invoked on every configuration change.
//
// The result is rounded to whole currency units.
func CalculatePrice(product entities.Product, configuration map[string]any) float64 {
	price := product.BasePrice

	if size, ok := stringValue(configuration, "cabinetSize"); ok {
		price += cabinetSizeSurcharge[size]
	}
	if speed, ok := stringValue(configuration, "speed"); ok {
		price += speedSurcharge[speed]
	}
	if mbps, ok := numericValue(configuration, "bandwidth"); ok {
		price += mbps * bandwidthRate
	}

	return math.Round(price)
}

func stringValue(configuration map[string]any, key string) (string, bool) {
	v, ok := configuration[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// numericValue accepts both JSON numbers and numeric strings, since form
// layers submit free-text fields as strings.
func numericValue(configuration map[string]any, key string) (float64, bool) {
	v, ok := configuration[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

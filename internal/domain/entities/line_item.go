package entities

import (
	"math"
	"time"
)

// ConfigStatus tracks how far a line item's post-acceptance configuration has
// progressed.
type ConfigStatus string

const (
	ConfigStatusNotStarted ConfigStatus = "not-started"
	ConfigStatusPartial    ConfigStatus = "partial"
	ConfigStatusComplete   ConfigStatus = "complete"
)

// Money splits a charge into its one-time (NRC) and recurring (MRC) parts.
type Money struct {
	OneTime   float64 `json:"one_time"`
	Recurring float64 `json:"recurring"`
}

func (m Money) Add(o Money) Money {
	return Money{OneTime: m.OneTime + o.OneTime, Recurring: m.Recurring + o.Recurring}
}

func (m Money) Times(qty int) Money {
	return Money{OneTime: m.OneTime * float64(qty), Recurring: m.Recurring * float64(qty)}
}

// LineItem is one product entry within a quote or order.
//
// Configuration progress invariants:
//   - 0 <= CompletedCount <= TotalRequired
//   - ConfigStatus is complete iff CompletedCount == TotalRequired
//   - ConfigStatus is not-started iff CompletedCount == 0
//   - TotalRequired is Qty when the product scope is per-quantity, else 1
//
// ConfigurationProgress is a cached percentage; it is recomputed on every
// mutation and must never be read as authoritative over the counters.
type LineItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`
	Key      string          `json:"key"`
	Qty      int             `json:"qty"`

	UnitPrice  Money      `json:"unit_price"`
	TotalPrice Money      `json:"total_price"`
	Product    ProductRef `json:"product"`

	NeedsConfiguration    bool           `json:"needs_configuration"`
	Configuration         map[string]any `json:"configuration,omitempty"`
	ConfigStatus          ConfigStatus   `json:"config_status"`
	CompletedCount        int            `json:"completed_count"`
	TotalRequired         int            `json:"total_required"`
	ConfigurationProgress int            `json:"configuration_progress"`
	ConfiguredAt          *time.Time     `json:"configured_at,omitempty"`
}

// Scope resolves the item's configuration scope, defaulting to per-line-item
// when the embedded product snapshot does not carry one.
func (li LineItem) Scope() ConfigurationScope {
	if li.Product.ConfigurationScope == ScopePerQuantity {
		return ScopePerQuantity
	}
	return ScopePerLineItem
}

// RequiredConfigurations is Qty under per-quantity scope, 1 otherwise.
func (li LineItem) RequiredConfigurations() int {
	if li.Scope() == ScopePerQuantity {
		if li.Qty < 1 {
			return 1
		}
		return li.Qty
	}
	return 1
}

// Progress derives the completion percentage from the counters.
func ProgressPercent(completed, required int) int {
	if required <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(required) * 100))
}

// StatusForCount maps a completed/required pair onto a ConfigStatus.
func StatusForCount(completed, required int) ConfigStatus {
	switch {
	case required > 0 && completed >= required:
		return ConfigStatusComplete
	case completed > 0:
		return ConfigStatusPartial
	default:
		return ConfigStatusNotStarted
	}
}

// NormalizeProgress clamps the counters into their legal range and recomputes
// the derived status and cached percentage.
func (li LineItem) NormalizeProgress() LineItem {
	li.TotalRequired = li.RequiredConfigurations()
	if li.CompletedCount < 0 {
		li.CompletedCount = 0
	}
	if li.CompletedCount > li.TotalRequired {
		li.CompletedCount = li.TotalRequired
	}
	li.ConfigStatus = StatusForCount(li.CompletedCount, li.TotalRequired)
	li.ConfigurationProgress = ProgressPercent(li.CompletedCount, li.TotalRequired)
	return li
}

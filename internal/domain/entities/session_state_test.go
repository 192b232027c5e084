package entities

import "testing"

func TestSanitize_RepairsMalformedState(t *testing.T) {
	loaded := SessionState{
		Quotes: []Quote{{ID: "1-ABCD1234"}},
		Orders: []Order{{ID: "1-1700000000000"}},
	}

	s := Sanitize(loaded)

	if s.Cart == nil || s.Packages == nil {
		t.Fatalf("expected non-nil collections")
	}
	if s.SelectedIBX != DefaultIBX || s.SelectedCage != DefaultCage {
		t.Fatalf("expected location defaults, got %s/%s", s.SelectedIBX, s.SelectedCage)
	}

	q := s.Quotes[0]
	if q.Items == nil {
		t.Fatalf("expected quote items repaired to empty list")
	}
	if q.Status != QuoteStatusPending {
		t.Fatalf("expected missing quote status coerced to pending, got %s", q.Status)
	}
	if q.QuoteNumber != q.ID {
		t.Fatalf("expected quote number defaulted to id, got %s", q.QuoteNumber)
	}

	o := s.Orders[0]
	if o.Items == nil || o.Status != OrderStatusPending || o.OrderNumber != o.ID {
		t.Fatalf("order not repaired: %+v", o)
	}
}

func TestSanitize_RecomputesLineItemProgress(t *testing.T) {
	loaded := SessionState{
		Quotes: []Quote{{
			ID:     "1-QQQQQQQQ",
			Status: QuoteStatusAccepted,
			Items: []LineItem{{
				Name:                  "Cabinet",
				Qty:                   2,
				Product:               ProductRef{ConfigurationScope: ScopePerQuantity},
				CompletedCount:        5,
				ConfigurationProgress: 1,
			}},
		}},
	}

	li := Sanitize(loaded).Quotes[0].Items[0]
	if li.CompletedCount != 2 || li.TotalRequired != 2 {
		t.Fatalf("counters not clamped: %d/%d", li.CompletedCount, li.TotalRequired)
	}
	if li.ConfigStatus != ConfigStatusComplete || li.ConfigurationProgress != 100 {
		t.Fatalf("derived fields stale: %s/%d", li.ConfigStatus, li.ConfigurationProgress)
	}
}

func TestSanitize_PreservesExistingData(t *testing.T) {
	loaded := SessionState{
		Cart:         []CartItem{{ID: 1, Name: "Fiber", Price: 500}},
		SelectedIBX:  "DC5",
		SelectedCage: "B-204",
	}

	s := Sanitize(loaded)
	if len(s.Cart) != 1 || s.Cart[0].Name != "Fiber" {
		t.Fatalf("cart contents dropped: %+v", s.Cart)
	}
	if s.SelectedIBX != "DC5" || s.SelectedCage != "B-204" {
		t.Fatalf("location context overwritten: %s/%s", s.SelectedIBX, s.SelectedCage)
	}
}

func TestClone_IsolatesNestedData(t *testing.T) {
	orig := NewSessionState()
	orig.Cart = []CartItem{{ID: 1, Configuration: map[string]any{"speed": "1G"}}}
	orig.Quotes = []Quote{{ID: "1-AAAA0000", Items: []LineItem{{Name: "Fiber"}}}}

	copied := Clone(orig)
	copied.Cart[0].Configuration["speed"] = "100G"
	copied.Quotes[0].Items[0].Name = "changed"

	if orig.Cart[0].Configuration["speed"] != "1G" {
		t.Fatalf("configuration map aliased between clones")
	}
	if orig.Quotes[0].Items[0].Name != "Fiber" {
		t.Fatalf("line items aliased between clones")
	}
}

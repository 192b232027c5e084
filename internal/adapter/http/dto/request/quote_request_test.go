package request

import (
	"testing"

	"colohub/internal/domain/entities"
)

func TestLineItemRequest_ToEntity(t *testing.T) {
	t.Run("quantity-aware totals", func(t *testing.T) {
		r := LineItemRequest{
			Key:                "colocation-cabinet",
			Name:               "Colocation Cabinet",
			Category:           "Colocation",
			Qty:                2,
			UnitPrice:          MoneyRequest{OneTime: 500, Recurring: 850},
			NeedsConfiguration: true,
			ConfigurationScope: "per-quantity",
		}

		li := r.ToEntity()
		if li.TotalPrice != (entities.Money{OneTime: 1000, Recurring: 1700}) {
			t.Fatalf("expected total = unit x qty, got %+v", li.TotalPrice)
		}
		if li.TotalRequired != 2 || li.ConfigStatus != entities.ConfigStatusNotStarted {
			t.Fatalf("progress not seeded from scope: %+v", li)
		}
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		li := LineItemRequest{Key: "fiber-connection", Name: "Fiber Connection"}.ToEntity()
		if li.Qty != 1 || li.TotalRequired != 1 {
			t.Fatalf("expected qty/required 1, got %d/%d", li.Qty, li.TotalRequired)
		}
	})
}

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	t.Run("explicit items win over from_cart", func(t *testing.T) {
		r := CreateQuoteRequest{
			FromCart: true,
			Items:    []LineItemRequest{{Key: "fiber-connection", Name: "Fiber Connection"}},
		}
		in := r.ToInput()
		if in.FromCart {
			t.Fatalf("from_cart should yield to the explicit item list")
		}
		if len(in.Items) != 1 || in.Items[0].Key != "fiber-connection" {
			t.Fatalf("items not converted: %+v", in.Items)
		}
	})

	t.Run("from cart alone", func(t *testing.T) {
		in := CreateQuoteRequest{FromCart: true}.ToInput()
		if !in.FromCart || in.Items != nil {
			t.Fatalf("unexpected input %+v", in)
		}
	})
}

func TestSignatureRequest_ResolveSignedBy(t *testing.T) {
	r := SignatureRequest{SignedBy: "  Alex Carter  "}
	if got := r.ResolveSignedBy(); got != "Alex Carter" {
		t.Fatalf("expected trimmed signer, got %q", got)
	}
}

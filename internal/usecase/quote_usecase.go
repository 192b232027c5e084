package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"colohub/internal/domain/entities"
	"colohub/internal/domain/pricing"
	"colohub/internal/store"
	"colohub/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrQuoteExpired     = errors.New("quote has expired")
	ErrQuoteResolved    = errors.New("quote already resolved")
	ErrQuoteNotAccepted = errors.New("configuration is only available for accepted quotes")
	ErrItemNotFound     = errors.New("line item not found")
)

// CreateQuoteInput mirrors the store's discriminated payload: FromCart mints
// a quote from the current cart contents, Items supplies a bare item list,
// and Quote supplies a fully-formed payload verbatim (id minted only when
// absent). Exactly one branch should be set; precedence is Quote, Items,
// FromCart.
type CreateQuoteInput struct {
	FromCart bool
	Items    []entities.LineItem
	Quote    *entities.Quote
}

// IQuoteUseCase drives the quote lifecycle: minting, accept/decline with
// signatures, and per-item configuration after acceptance.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	ListQuotes(ctx context.Context) []entities.Quote
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	AcceptQuote(ctx context.Context, id, signedBy, signedByEmail string) (entities.Quote, error)
	DeclineQuote(ctx context.Context, id, signedBy, signedByEmail string) (entities.Quote, error)
	SubmitItemConfiguration(ctx context.Context, quoteID string, itemIndex int, configuration map[string]any) (entities.LineItem, entities.Order, error)
}

type QuoteUseCase struct {
	store   *store.Store
	catalog interfaces.ICatalog
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(st *store.Store, catalog interfaces.ICatalog) *QuoteUseCase {
	return &QuoteUseCase{store: st, catalog: catalog, now: time.Now}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	switch {
	case in.Quote != nil:
		return u.store.CreateQuote(ctx, store.CreateQuoteInput{Quote: in.Quote}), nil
	case in.Items != nil:
		return u.store.CreateQuote(ctx, store.CreateQuoteInput{Items: in.Items}), nil
	case in.FromCart:
		snap := u.store.Snapshot()
		if len(snap.Cart) == 0 {
			return entities.Quote{}, ErrEmptyCart
		}
		items := make([]entities.LineItem, 0, len(snap.Cart))
		for _, row := range snap.Cart {
			items = append(items, u.buildLineItem(row))
		}
		q := u.store.CreateQuote(ctx, store.CreateQuoteInput{Items: items})
		log.Printf("[quote][usecase] quote minted quote_id=%s items=%d recurring=%.2f", q.ID, len(q.Items), q.FinalTotals.Recurring)
		return q, nil
	default:
		return entities.Quote{}, ErrEmptyCart
	}
}

// buildLineItem converts a cart row into the quantity-aware line item model.
// The monthly unit price is the price computed at add time; the one-time part
// comes from the cabinet rate card for the colocation family.
func (u *QuoteUseCase) buildLineItem(row entities.CartItem) entities.LineItem {
	unit := entities.Money{Recurring: row.Price}
	ref := entities.ProductRef{ID: row.Key, Name: row.Name, Category: row.Category}
	needsConfiguration := false

	if product, ok := u.catalog.Get(row.Key); ok {
		ref = product.Ref()
		needsConfiguration = product.ConfigurationRequired
		if pricing.IsCabinetProduct(product) {
			unit.OneTime = pricing.CalculateCabinetPricing(pricing.CabinetConfigFrom(row.Configuration)).OneTimeTotal
		}
	}

	qty := row.Qty
	if qty < 1 {
		qty = 1
	}
	li := entities.LineItem{
		ID:                 row.ID,
		Name:               row.Name,
		Category:           row.Category,
		Key:                row.Key,
		Qty:                qty,
		UnitPrice:          unit,
		TotalPrice:         unit.Times(qty),
		Product:            ref,
		NeedsConfiguration: needsConfiguration,
		Configuration:      row.Configuration,
	}
	return li.NormalizeProgress()
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) []entities.Quote {
	return u.store.Quotes()
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, ok := u.store.QuoteByID(id)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// AcceptQuote transitions pending -> accepted, attaching the signature and
// clearing the cart whose contents the quote consumed. Repeating the call on
// an already-accepted quote is an idempotent success. Declined and expired
// quotes are terminal.
func (u *QuoteUseCase) AcceptQuote(ctx context.Context, id, signedBy, signedByEmail string) (entities.Quote, error) {
	return u.resolveQuote(ctx, id, signedBy, signedByEmail, entities.QuoteStatusAccepted)
}

// DeclineQuote transitions pending -> declined; mutually exclusive with
// acceptance and likewise idempotent on repeats.
func (u *QuoteUseCase) DeclineQuote(ctx context.Context, id, signedBy, signedByEmail string) (entities.Quote, error) {
	return u.resolveQuote(ctx, id, signedBy, signedByEmail, entities.QuoteStatusDeclined)
}

func (u *QuoteUseCase) resolveQuote(ctx context.Context, id, signedBy, signedByEmail string, target entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	// Repeating the resolution the quote already has is a no-op success.
	if q.Status == target {
		return q, nil
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteResolved
	}
	if q.Expired(u.now()) {
		return entities.Quote{}, ErrQuoteExpired
	}

	sig := &entities.Signature{
		SignedBy:      signedBy,
		SignedByEmail: signedByEmail,
		SignedAt:      u.now().UTC(),
	}
	u.store.UpdateQuoteStatus(ctx, q.ID, target, sig)
	if target == entities.QuoteStatusAccepted {
		u.store.ClearCart(ctx)
	}
	log.Printf("[quote][usecase] quote resolved quote_id=%s status=%s signed_by=%s", q.ID, target, signedBy)

	resolved, ok := u.store.QuoteByID(q.ID)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return resolved, nil
}

// SubmitItemConfiguration records one configuration submission for a line
// item of an accepted quote and, as a compatibility side effect, synthesizes
// an order from the configured item. The consolidated quote-level order is
// the canonical creation path.
func (u *QuoteUseCase) SubmitItemConfiguration(ctx context.Context, quoteID string, itemIndex int, configuration map[string]any) (entities.LineItem, entities.Order, error) {
	q, err := u.GetQuote(ctx, quoteID)
	if err != nil {
		return entities.LineItem{}, entities.Order{}, err
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.LineItem{}, entities.Order{}, ErrQuoteNotAccepted
	}
	if itemIndex < 0 || itemIndex >= len(q.Items) {
		return entities.LineItem{}, entities.Order{}, ErrItemNotFound
	}

	item, ok := u.store.ApplyItemConfiguration(ctx, quoteID, itemIndex, configuration)
	if !ok {
		return entities.LineItem{}, entities.Order{}, ErrItemNotFound
	}

	order := u.store.CreateOrder(ctx, entities.Order{
		QuoteID:      q.ID,
		Items:        []entities.LineItem{item},
		Total:        item.TotalPrice.OneTime,
		MonthlyTotal: item.TotalPrice.Recurring,
		Customer:     q.Customer,
		ConfigurationSummary: fmt.Sprintf("%s: %d of %d configured",
			item.Name, item.CompletedCount, item.TotalRequired),
	})
	log.Printf("[quote][usecase] item configured quote_id=%s item_index=%d progress=%d%% order_id=%s",
		quoteID, itemIndex, item.ConfigurationProgress, order.ID)
	return item, order, nil
}

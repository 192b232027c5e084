package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"colohub/internal/domain/entities"
	"colohub/internal/store"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// IncompleteConfigurationError reports which line items still block the
// consolidated order. It unwraps to ErrConfigurationIncomplete so callers can
// match it with errors.Is.
type IncompleteConfigurationError struct {
	Items []string
}

var ErrConfigurationIncomplete = errors.New("configuration incomplete")

func (e *IncompleteConfigurationError) Error() string {
	return "configuration incomplete for: " + strings.Join(e.Items, ", ")
}

func (e *IncompleteConfigurationError) Unwrap() error {
	return ErrConfigurationIncomplete
}

// IOrderUseCase creates the consolidated order for a fully configured quote
// and serves order lookups.
type IOrderUseCase interface {
	CreateOrderFromQuote(ctx context.Context, quoteID string) (entities.Order, error)
	ListOrders(ctx context.Context) []entities.Order
	GetOrder(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	store *store.Store
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(st *store.Store) *OrderUseCase {
	return &OrderUseCase{store: st}
}

// CreateOrderFromQuote is the canonical order-creation path: one order for
// the whole quote, allowed only once every configurable line item reports
// full progress. Guard failures leave the state tree untouched.
func (u *OrderUseCase) CreateOrderFromQuote(ctx context.Context, quoteID string) (entities.Order, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Order{}, ErrInvalidQuoteID
	}
	q, ok := u.store.QuoteByID(quoteID)
	if !ok {
		return entities.Order{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.Order{}, ErrQuoteNotAccepted
	}
	if pending := q.ItemsNeedingConfiguration(); len(pending) > 0 {
		return entities.Order{}, &IncompleteConfigurationError{Items: pending}
	}

	totals := entities.SumItemTotals(q.Items)
	order := u.store.CreateOrder(ctx, entities.Order{
		QuoteID:              q.ID,
		Items:                q.Items,
		Total:                totals.OneTime,
		MonthlyTotal:         totals.Recurring,
		Customer:             q.Customer,
		ConfigurationSummary: "all items configured",
	})
	log.Printf("[order][usecase] consolidated order created quote_id=%s order_id=%s items=%d", q.ID, order.ID, len(order.Items))
	return order, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) []entities.Order {
	return u.store.Orders()
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, ok := u.store.OrderByID(id)
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

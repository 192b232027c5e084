package usecase

import (
	"context"
	"errors"
	"strings"

	"colohub/internal/domain/entities"
	"colohub/internal/domain/pricing"
	"colohub/internal/store"
	"colohub/internal/usecase/interfaces"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidProduct  = errors.New("invalid product key")
)

// AddItemInput carries everything needed to price and append a cart or
// package row.
type AddItemInput struct {
	ProductKey    string
	Configuration map[string]any
	Qty           int
}

// ICartUseCase exposes cart, package and session-context operations.
//
// Quantity validation happens here: the store trusts its caller and applies
// whatever it is given.
type ICartUseCase interface {
	AddCartItem(ctx context.Context, in AddItemInput) (entities.CartItem, error)
	AddPackageItem(ctx context.Context, in AddItemInput) (entities.CartItem, error)
	RemoveCartItem(ctx context.Context, id int64) error
	RemovePackageItem(ctx context.Context, id int64) error
	UpdateCartQuantity(ctx context.Context, id int64, qty int) error
	UpdatePackageQuantity(ctx context.Context, id int64, qty int) error
	ClearCart(ctx context.Context) error
	Cart(ctx context.Context) ([]entities.CartItem, float64)
	Packages(ctx context.Context) ([]entities.CartItem, float64)
	Session(ctx context.Context) (ibx, cage string)
	SetLocation(ctx context.Context, ibx, cage string)
}

type CartUseCase struct {
	store   *store.Store
	catalog interfaces.ICatalog
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(st *store.Store, catalog interfaces.ICatalog) *CartUseCase {
	return &CartUseCase{store: st, catalog: catalog}
}

func (u *CartUseCase) AddCartItem(ctx context.Context, in AddItemInput) (entities.CartItem, error) {
	return u.addItem(ctx, in, false)
}

func (u *CartUseCase) AddPackageItem(ctx context.Context, in AddItemInput) (entities.CartItem, error) {
	return u.addItem(ctx, in, true)
}

func (u *CartUseCase) addItem(ctx context.Context, in AddItemInput, toPackages bool) (entities.CartItem, error) {
	key := strings.TrimSpace(in.ProductKey)
	if key == "" {
		return entities.CartItem{}, ErrInvalidProduct
	}
	product, ok := u.catalog.Get(key)
	if !ok {
		return entities.CartItem{}, ErrProductNotFound
	}
	qty := in.Qty
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return entities.CartItem{}, ErrInvalidQuantity
	}

	// The ambient location context is copied into every new configuration.
	ibx, cage := u.Session(ctx)
	configuration := map[string]any{"ibx": ibx, "cage": cage}
	for k, v := range in.Configuration {
		configuration[k] = v
	}

	item := entities.CartItem{
		Name:          product.Name,
		Category:      product.Category,
		Key:           product.Key,
		Price:         pricing.CalculatePrice(product, configuration),
		Configuration: configuration,
		Qty:           qty,
	}
	if toPackages {
		return u.store.AddToPackages(ctx, item), nil
	}
	return u.store.AddToCart(ctx, item), nil
}

func (u *CartUseCase) RemoveCartItem(ctx context.Context, id int64) error {
	u.store.RemoveFromCart(ctx, id)
	return nil
}

func (u *CartUseCase) RemovePackageItem(ctx context.Context, id int64) error {
	u.store.RemoveFromPackages(ctx, id)
	return nil
}

func (u *CartUseCase) UpdateCartQuantity(ctx context.Context, id int64, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	u.store.UpdateCartQuantity(ctx, id, qty)
	return nil
}

func (u *CartUseCase) UpdatePackageQuantity(ctx context.Context, id int64, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	u.store.UpdatePackagesQuantity(ctx, id, qty)
	return nil
}

func (u *CartUseCase) ClearCart(ctx context.Context) error {
	u.store.ClearCart(ctx)
	return nil
}

func (u *CartUseCase) Cart(ctx context.Context) ([]entities.CartItem, float64) {
	snap := u.store.Snapshot()
	return snap.Cart, u.store.CartTotal()
}

func (u *CartUseCase) Packages(ctx context.Context) ([]entities.CartItem, float64) {
	snap := u.store.Snapshot()
	return snap.Packages, u.store.PackagesTotal()
}

func (u *CartUseCase) Session(ctx context.Context) (string, string) {
	snap := u.store.Snapshot()
	return snap.SelectedIBX, snap.SelectedCage
}

func (u *CartUseCase) SetLocation(ctx context.Context, ibx, cage string) {
	if ibx = strings.TrimSpace(ibx); ibx != "" {
		u.store.SetSelectedIBX(ctx, ibx)
	}
	if cage = strings.TrimSpace(cage); cage != "" {
		u.store.SetSelectedCage(ctx, cage)
	}
}

// Package store owns the session state tree (cart, packages, quotes, orders
// and the selected location context) and exposes every mutation the commerce
// core performs.
//
// Mutations are pure snapshot transitions: each operation reads the current
// tree and produces a complete new tree in one step. All transitions funnel
// through a single serialized entry point, so the sequence of applied
// transitions is exactly the sequence of dispatched operations. After every
// transition the tree is mirrored to the state repository best-effort; a
// failed write is logged and swallowed, never rolled back.
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"colohub/internal/domain/entities"
	"colohub/internal/domain/identifier"
	"colohub/internal/usecase/interfaces"
)

type Store struct {
	mu    sync.Mutex
	state entities.SessionState
	repo  interfaces.ISessionStateRepository
	now   func() time.Time
}

// Option tweaks store construction; used by tests to pin the clock.
type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store, rehydrating the tree from the repository when a
// snapshot exists. Loaded data passes through entities.Sanitize, so malformed
// snapshots are repaired rather than rejected.
func New(ctx context.Context, repo interfaces.ISessionStateRepository, opts ...Option) *Store {
	s := &Store{
		state: entities.NewSessionState(),
		repo:  repo,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if repo != nil {
		loaded, found, err := repo.Load(ctx)
		if err != nil {
			log.Printf("[store] load failed, starting from defaults err=%v", err)
		} else if found {
			s.state = entities.Sanitize(loaded)
		}
	}
	return s
}

// apply is the single dispatch point. transition must be pure with respect to
// the passed snapshot.
func (s *Store) apply(ctx context.Context, transition func(entities.SessionState) entities.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = transition(entities.Clone(s.state))
	s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, entities.Clone(s.state)); err != nil {
		// In-memory state is the source of truth; storage is a mirror.
		log.Printf("[store] persist failed err=%v", err)
	}
}

// Snapshot returns a deep copy of the current tree.
func (s *Store) Snapshot() entities.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entities.Clone(s.state)
}

// --- cart & packages ---

// AddToCart appends the item with a freshly minted id. Identical items are
// never coalesced; duplicates become separate rows.
func (s *Store) AddToCart(ctx context.Context, item entities.CartItem) entities.CartItem {
	return s.addRow(ctx, item, false)
}

func (s *Store) AddToPackages(ctx context.Context, item entities.CartItem) entities.CartItem {
	return s.addRow(ctx, item, true)
}

func (s *Store) addRow(ctx context.Context, item entities.CartItem, toPackages bool) entities.CartItem {
	item.ID = identifier.NewItemID()
	if item.Qty < 1 {
		item.Qty = 1
	}
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		if toPackages {
			st.Packages = append(st.Packages, item)
		} else {
			st.Cart = append(st.Cart, item)
		}
		return st
	})
	return item
}

// RemoveFromCart filters out the matching row. An absent id is a no-op, not
// an error.
func (s *Store) RemoveFromCart(ctx context.Context, id int64) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Cart = removeRow(st.Cart, id)
		return st
	})
}

func (s *Store) RemoveFromPackages(ctx context.Context, id int64) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Packages = removeRow(st.Packages, id)
		return st
	})
}

func removeRow(items []entities.CartItem, id int64) []entities.CartItem {
	out := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// UpdateCartQuantity sets qty on the matching row. Quantity validation is the
// caller's responsibility at this layer.
func (s *Store) UpdateCartQuantity(ctx context.Context, id int64, qty int) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Cart = setRowQty(st.Cart, id, qty)
		return st
	})
}

func (s *Store) UpdatePackagesQuantity(ctx context.Context, id int64, qty int) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Packages = setRowQty(st.Packages, id, qty)
		return st
	})
}

func setRowQty(items []entities.CartItem, id int64, qty int) []entities.CartItem {
	for i := range items {
		if items[i].ID == id {
			items[i].Qty = qty
		}
	}
	return items
}

// ClearCart empties the cart only; packages are untouched.
func (s *Store) ClearCart(ctx context.Context) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.Cart = []entities.CartItem{}
		return st
	})
}

// CartTotal is the legacy flat sum of the monthly price field, ignoring qty.
// The quantity-aware model lives on LineItem.TotalPrice; this remains a
// display-only convenience.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return flatTotal(s.state.Cart)
}

func (s *Store) PackagesTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return flatTotal(s.state.Packages)
}

func flatTotal(items []entities.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}

// --- session context ---

func (s *Store) SetSelectedIBX(ctx context.Context, ibx string) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.SelectedIBX = ibx
		return st
	})
}

func (s *Store) SetSelectedCage(ctx context.Context, cage string) {
	s.apply(ctx, func(st entities.SessionState) entities.SessionState {
		st.SelectedCage = cage
		return st
	})
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"colohub/internal/domain/entities"
	mock_interfaces "colohub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(context.Background(), nil, WithClock(func() time.Time { return testClock }))
}

func TestAddToCart_MintsIDsAndKeepsDuplicates(t *testing.T) {
	s := newTestStore(t)

	item := entities.CartItem{Name: "Fiber Connection", Price: 550}
	first := s.AddToCart(context.Background(), item)
	second := s.AddToCart(context.Background(), item)

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("expected minted ids, got %d and %d", first.ID, second.ID)
	}

	snap := s.Snapshot()
	if len(snap.Cart) != 2 {
		t.Fatalf("expected duplicate rows, got %d", len(snap.Cart))
	}
	if snap.Cart[0].Qty != 1 {
		t.Fatalf("expected default qty 1, got %d", snap.Cart[0].Qty)
	}
}

func TestRemoveFromCart_AbsentIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	added := s.AddToCart(context.Background(), entities.CartItem{Name: "Fiber", Price: 500})

	s.RemoveFromCart(context.Background(), 999999)
	if len(s.Snapshot().Cart) != 1 {
		t.Fatalf("no-op removal changed the cart")
	}

	s.RemoveFromCart(context.Background(), added.ID)
	if len(s.Snapshot().Cart) != 0 {
		t.Fatalf("expected empty cart after removal")
	}
}

func TestUpdateCartQuantity_SetsWhateverItIsGiven(t *testing.T) {
	s := newTestStore(t)
	added := s.AddToCart(context.Background(), entities.CartItem{Name: "Fiber", Price: 500})

	s.UpdateCartQuantity(context.Background(), added.ID, 4)
	if got := s.Snapshot().Cart[0].Qty; got != 4 {
		t.Fatalf("expected qty 4, got %d", got)
	}

	// Validation is the caller's job at this layer.
	s.UpdateCartQuantity(context.Background(), added.ID, 0)
	if got := s.Snapshot().Cart[0].Qty; got != 0 {
		t.Fatalf("expected qty 0 applied verbatim, got %d", got)
	}
}

func TestClearCart_LeavesPackagesUntouched(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(context.Background(), entities.CartItem{Name: "Fiber", Price: 500})
	s.AddToPackages(context.Background(), entities.CartItem{Name: "Starter Bundle", Price: 1250})

	s.ClearCart(context.Background())

	snap := s.Snapshot()
	if len(snap.Cart) != 0 {
		t.Fatalf("cart not cleared")
	}
	if len(snap.Packages) != 1 {
		t.Fatalf("packages were touched")
	}
}

func TestCartTotal_FlatSumIgnoresQty(t *testing.T) {
	s := newTestStore(t)
	a := s.AddToCart(context.Background(), entities.CartItem{Name: "Fiber", Price: 500})
	s.AddToCart(context.Background(), entities.CartItem{Name: "Metro", Price: 750})
	s.UpdateCartQuantity(context.Background(), a.ID, 3)

	if got := s.CartTotal(); got != 1250 {
		t.Fatalf("expected flat total 1250, got %.2f", got)
	}
}

func TestSnapshot_IsIsolatedFromStoreState(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart(context.Background(), entities.CartItem{Name: "Fiber", Price: 500, Configuration: map[string]any{"speed": "1G"}})

	snap := s.Snapshot()
	snap.Cart[0].Configuration["speed"] = "100G"
	snap.Cart[0].Price = 0

	fresh := s.Snapshot()
	if fresh.Cart[0].Configuration["speed"] != "1G" || fresh.Cart[0].Price != 500 {
		t.Fatalf("snapshot mutation leaked into store state: %+v", fresh.Cart[0])
	}
}

func TestNew_RehydratesAndSanitizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)

	repo.EXPECT().Load(gomock.Any()).Return(entities.SessionState{
		Quotes: []entities.Quote{{ID: "1-STORED00"}},
	}, true, nil)

	s := New(context.Background(), repo)

	snap := s.Snapshot()
	if len(snap.Quotes) != 1 || snap.Quotes[0].Status != entities.QuoteStatusPending {
		t.Fatalf("loaded quote not sanitized: %+v", snap.Quotes)
	}
	if snap.Cart == nil || snap.SelectedIBX != entities.DefaultIBX {
		t.Fatalf("defaults not repaired on load")
	}
}

func TestNew_LoadFailureFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)

	repo.EXPECT().Load(gomock.Any()).Return(entities.SessionState{}, false, errors.New("dynamo down"))

	s := New(context.Background(), repo)
	if len(s.Snapshot().Cart) != 0 {
		t.Fatalf("expected pristine default state")
	}
}

func TestApply_PersistsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)

	repo.EXPECT().Load(gomock.Any()).Return(entities.SessionState{}, false, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded")).Times(2)

	s := New(context.Background(), repo)
	s.AddToCart(context.Background(), entities.CartItem{Name: "Fiber", Price: 500})
	s.ClearCart(context.Background())

	// A failing mirror write never rolls back the in-memory transition.
	if len(s.Snapshot().Cart) != 0 {
		t.Fatalf("state rolled back on persistence failure")
	}
}

func TestApply_MirrorsEveryTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionStateRepository(ctrl)

	repo.EXPECT().Load(gomock.Any()).Return(entities.SessionState{}, false, nil)

	var persisted entities.SessionState
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st entities.SessionState) error {
			persisted = st
			return nil
		},
	)

	s := New(context.Background(), repo)
	s.AddToCart(context.Background(), entities.CartItem{Name: "Fiber", Price: 500})

	if len(persisted.Cart) != 1 || persisted.Cart[0].Name != "Fiber" {
		t.Fatalf("persisted snapshot does not match transition: %+v", persisted.Cart)
	}
}

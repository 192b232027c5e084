package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"colohub/internal/adapter/http/handlers/mocks"
	"colohub/internal/domain/entities"
	"colohub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_AddCartItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddCartItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing product key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddCartItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"qty":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddCartItem)

		uc.EXPECT().AddCartItem(gomock.Any(), gomock.Any()).Return(entities.CartItem{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items",
			bytes.NewBufferString(`{"product_key":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddCartItem)

		uc.EXPECT().AddCartItem(gomock.Any(), usecase.AddItemInput{
			ProductKey:    "fiber-connection",
			Configuration: map[string]any{"speed": "10G"},
			Qty:           2,
		}).Return(entities.CartItem{ID: 1748779200000, Name: "Fiber Connection", Price: 700, Qty: 2}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items",
			bytes.NewBufferString(`{"product_key":"fiber-connection","configuration":{"speed":"10G"},"qty":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["price"] != float64(700) || body["qty"] != float64(2) {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestCartHandler_GetCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.GET("/v1/cart", h.GetCart)

	uc.EXPECT().Cart(gomock.Any()).Return([]entities.CartItem{
		{ID: 1, Name: "Fiber Connection", Price: 500, Qty: 1},
		{ID: 2, Name: "Metro Connect", Price: 750, Qty: 1},
	}, 1250.0)

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Items []map[string]any `json:"items"`
		Total float64          `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Items) != 2 || body.Total != 1250 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCartHandler_UpdateCartQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PUT("/v1/cart/items/:id", h.UpdateCartQuantity)

		req := httptest.NewRequest(http.MethodPut, "/v1/cart/items/abc", bytes.NewBufferString(`{"qty":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid quantity maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PUT("/v1/cart/items/:id", h.UpdateCartQuantity)

		uc.EXPECT().UpdateCartQuantity(gomock.Any(), int64(42), -1).Return(usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodPut, "/v1/cart/items/42", bytes.NewBufferString(`{"qty":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PUT("/v1/cart/items/:id", h.UpdateCartQuantity)

		uc.EXPECT().UpdateCartQuantity(gomock.Any(), int64(42), 3).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/cart/items/42", bytes.NewBufferString(`{"qty":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCartHandler_RemoveCartItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.DELETE("/v1/cart/items/:id", h.RemoveCartItem)

	uc.EXPECT().RemoveCartItem(gomock.Any(), int64(42)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/cart/items/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestCartHandler_UpdateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.PUT("/v1/session", h.UpdateSession)

	uc.EXPECT().SetLocation(gomock.Any(), "DC5", "B-204")
	uc.EXPECT().Session(gomock.Any()).Return("DC5", "B-204")

	req := httptest.NewRequest(http.MethodPut, "/v1/session",
		bytes.NewBufferString(`{"ibx":"DC5","cage":"B-204"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["selected_ibx"] != "DC5" || body["selected_cage"] != "B-204" {
		t.Fatalf("unexpected body %v", body)
	}
}

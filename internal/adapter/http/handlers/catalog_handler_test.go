package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"colohub/internal/catalog"

	"github.com/gin-gonic/gin"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(catalog.NewStaticCatalog())
	r := gin.New()
	r.GET("/v1/catalog", h.ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("expected seeded products")
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(catalog.NewStaticCatalog())
	r := gin.New()
	r.GET("/v1/catalog/:key", h.GetProduct)

	t.Run("unknown key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("known key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/colocation-cabinet", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["key"] != "colocation-cabinet" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestCatalogHandler_PreviewPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(catalog.NewStaticCatalog())
	r := gin.New()
	r.POST("/v1/catalog/:key/price", h.PreviewPrice)

	t.Run("interconnect price", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/fiber-connection/price",
			bytes.NewBufferString(`{"configuration":{"speed":"100G","bandwidth":200}}`))
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
		// 500 base + 500 for 100G + 200 * 0.1 bandwidth.
		if body["price"] != float64(1020) {
			t.Fatalf("expected price 1020, got %v", body["price"])
		}
	})

	t.Run("cabinet price carries the breakdown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/colocation-cabinet/price",
			bytes.NewBufferString(`{"configuration":{"cabinetSize":"Full Rack"}}`))
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
		if body["cabinet_breakdown"] == nil {
			t.Fatalf("expected cabinet breakdown, got %v", body)
		}
	})
}

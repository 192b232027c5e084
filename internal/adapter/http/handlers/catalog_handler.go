package handlers

import (
	"net/http"

	request "colohub/internal/adapter/http/dto/request"
	response "colohub/internal/adapter/http/dto/response"
	"colohub/internal/domain/pricing"
	"colohub/internal/usecase/interfaces"
	"colohub/pkg"

	"github.com/gin-gonic/gin"
)

var errProductNotFound = pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)

// CatalogHandler serves the read-only product catalog and pricing previews.
type CatalogHandler struct {
	catalog interfaces.ICatalog
}

func NewCatalogHandler(catalog interfaces.ICatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProducts(h.catalog.List()))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Get(c.Param("key"))
	if !ok {
		c.JSON(errProductNotFound.HTTPStatus, errProductNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// PreviewPrice recomputes the monthly price for a configuration. It is safe
// to call on every configuration change; the calculation is pure.
func (h *CatalogHandler) PreviewPrice(c *gin.Context) {
	product, ok := h.catalog.Get(c.Param("key"))
	if !ok {
		c.JSON(errProductNotFound.HTTPStatus, errProductNotFound.ToHTTPError())
		return
	}

	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid pricing payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.PriceResponse{
		ProductKey: product.Key,
		Price:      pricing.CalculatePrice(product, payload.Configuration),
	}
	if pricing.IsCabinetProduct(product) {
		breakdown := pricing.CalculateCabinetPricing(pricing.CabinetConfigFrom(payload.Configuration))
		res.Cabinet = &breakdown
	}
	c.JSON(http.StatusOK, res)
}

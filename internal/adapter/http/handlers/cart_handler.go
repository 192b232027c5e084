package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "colohub/internal/adapter/http/dto/request"
	response "colohub/internal/adapter/http/dto/response"
	"colohub/internal/domain/entities"
	"colohub/internal/usecase"
	"colohub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
	errInvalidItemID      = pkg.NewDomainErrorSimple("INVALID_ITEM_ID", "Invalid item id", http.StatusBadRequest)
)

// CartHandler serves the cart and packages collections plus the session
// location context.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items, total := h.usecase.Cart(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCart(items, total))
}

func (h *CartHandler) GetPackages(c *gin.Context) {
	items, total := h.usecase.Packages(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCart(items, total))
}

func (h *CartHandler) AddCartItem(c *gin.Context) {
	h.addItem(c, h.usecase.AddCartItem)
}

func (h *CartHandler) AddPackageItem(c *gin.Context) {
	h.addItem(c, h.usecase.AddPackageItem)
}

func (h *CartHandler) addItem(
	c *gin.Context,
	add func(ctx context.Context, in usecase.AddItemInput) (entities.CartItem, error),
) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	item, err := add(c.Request.Context(), usecase.AddItemInput{
		ProductKey:    payload.ResolveProductKey(),
		Configuration: payload.Configuration,
		Qty:           payload.Qty,
	})
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCart([]entities.CartItem{item}, item.Price).Items[0])
}

func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	h.removeItem(c, h.usecase.RemoveCartItem)
}

func (h *CartHandler) RemovePackageItem(c *gin.Context) {
	h.removeItem(c, h.usecase.RemovePackageItem)
}

func (h *CartHandler) removeItem(c *gin.Context, remove func(ctx context.Context, id int64) error) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	if err := remove(c.Request.Context(), id); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) UpdateCartQuantity(c *gin.Context) {
	h.updateQuantity(c, h.usecase.UpdateCartQuantity)
}

func (h *CartHandler) UpdatePackageQuantity(c *gin.Context) {
	h.updateQuantity(c, h.usecase.UpdatePackageQuantity)
}

func (h *CartHandler) updateQuantity(c *gin.Context, update func(ctx context.Context, id int64, qty int) error) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	if err := update(c.Request.Context(), id, payload.Qty); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.ClearCart(c.Request.Context()); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) GetSession(c *gin.Context) {
	ibx, cage := h.usecase.Session(c.Request.Context())
	c.JSON(http.StatusOK, response.SessionResponse{SelectedIBX: ibx, SelectedCage: cage})
}

func (h *CartHandler) UpdateSession(c *gin.Context) {
	var payload request.SessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	h.usecase.SetLocation(c.Request.Context(), payload.IBX, payload.Cage)
	ibx, cage := h.usecase.Session(c.Request.Context())
	c.JSON(http.StatusOK, response.SessionResponse{SelectedIBX: ibx, SelectedCage: cage})
}

func itemIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidItemID.HTTPStatus, errInvalidItemID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

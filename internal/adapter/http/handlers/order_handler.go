package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "colohub/internal/adapter/http/dto/response"
	"colohub/internal/usecase"
	"colohub/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves order creation and lookups.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder creates the consolidated order for a fully configured quote.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	order, err := h.usecase.CreateOrderFromQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.usecase.ListOrders(c.Request.Context())
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	var incomplete *usecase.IncompleteConfigurationError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Orders can only be created from accepted quotes", http.StatusConflict)
	case errors.As(err, &incomplete):
		return pkg.NewDomainErrorSimple("CONFIGURATION_INCOMPLETE",
			"Configuration incomplete for: "+strings.Join(incomplete.Items, ", "), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

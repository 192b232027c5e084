package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	request "colohub/internal/adapter/http/dto/request"
	response "colohub/internal/adapter/http/dto/response"
	"colohub/internal/domain/entities"
	"colohub/internal/usecase"
	"colohub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidItemIndex    = pkg.NewDomainErrorSimple("INVALID_ITEM_INDEX", "Invalid line item index", http.StatusBadRequest)
)

// QuoteHandler drives the quote lifecycle over HTTP: minting, accept/decline
// and per-item configuration.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote, time.Now()))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes := h.usecase.ListQuotes(c.Request.Context())
	c.JSON(http.StatusOK, response.FromQuotes(quotes, time.Now()))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now()))
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.resolveQuote(c, h.usecase.AcceptQuote)
}

func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.resolveQuote(c, h.usecase.DeclineQuote)
}

func (h *QuoteHandler) resolveQuote(
	c *gin.Context,
	resolve func(ctx context.Context, id, signedBy, signedByEmail string) (entities.Quote, error),
) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := resolve(c.Request.Context(), c.Param("id"), payload.ResolveSignedBy(), payload.SignedByEmail)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now()))
}

// ConfigureItem records one configuration submission for the line item at
// the given index and returns the updated item plus the order the submission
// spawned.
func (h *QuoteHandler) ConfigureItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidItemIndex.HTTPStatus, errInvalidItemIndex.ToHTTPError())
		return
	}

	var payload request.ConfigureItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	item, order, err := h.usecase.SubmitItemConfiguration(c.Request.Context(), c.Param("id"), index, payload.Configuration)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item":  response.FromLineItem(item),
		"order": response.FromOrder(order),
	})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Configuration is only available for accepted quotes", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote has expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteResolved):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_RESOLVED", "Quote has already been resolved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

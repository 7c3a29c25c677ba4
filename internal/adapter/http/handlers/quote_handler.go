package handlers

import (
	"errors"
	"log"
	"net/http"

	request "esquadrias_xpto/internal/adapter/http/dto/request"
	response "esquadrias_xpto/internal/adapter/http/dto/response"
	"esquadrias_xpto/internal/adapter/http/middleware"
	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/domain/pricing"
	"esquadrias_xpto/internal/usecase"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes (orçamentos).

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// PriceQuote computes the live price preview for a partially filled form.
// Incomplete forms price to zero; that is not an error here.
func (h *QuoteHandler) PriceQuote(c *gin.Context) {
	var payload request.PriceQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	total := pricing.Total(pricing.Spec{
		Type:              entities.ProductType(payload.Type),
		HeightCM:          payload.Height,
		WidthCM:           payload.Width,
		NeedsInstallation: payload.NeedsInstallation,
		LockIncluded:      payload.LockIncluded,
		HingeIncluded:     payload.HingeIncluded,
	})
	c.JSON(http.StatusOK, response.PriceQuoteResponse{TotalPrice: total})
}

// CreateQuote handles a new quote form submit.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	h.submit(c, "")
}

// UpdateQuote re-submits an existing quote, including status changes; an
// approval through here derives the order.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	h.submit(c, c.Param("id"))
}

func (h *QuoteHandler) submit(c *gin.Context, existingQuoteID string) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	session := middleware.SessionFrom(c)
	log.Printf("[quote][handler] submit start quote_id=%s user_id=%s status=%s", existingQuoteID, session.UserID, payload.Status)

	in := usecase.QuoteInput{
		RequestToken:      payload.RequestToken,
		CustomerName:      payload.CustomerName,
		Phone:             payload.Phone,
		Address:           payload.Address,
		Type:              entities.ProductType(payload.Type),
		HeightCM:          payload.Height,
		WidthCM:           payload.Width,
		FrameWidthCM:      payload.FrameWidth,
		NeedsInstallation: payload.NeedsInstallation,
		LockIncluded:      payload.LockIncluded,
		HingeIncluded:     payload.HingeIncluded,
		Status:            entities.QuoteStatus(payload.Status),
	}

	res, err := h.usecase.SubmitQuote(c.Request.Context(), session, in, existingQuoteID)
	if err != nil {
		log.Printf("[quote][handler] submit failed quote_id=%s err=%v", existingQuoteID, err)
		respondUseCaseError(c, err, mapQuoteError)
		return
	}
	log.Printf("[quote][handler] submit success quote_id=%s status=%s order_created=%t", res.Quote.ID, res.Quote.Status, res.CreatedOrder != nil)

	body := response.QuoteSubmitResponse{Quote: response.FromQuote(res.Quote)}
	if res.CreatedOrder != nil {
		o := response.FromOrder(*res.CreatedOrder)
		body.CreatedOrder = &o
	}
	if res.OrderErr != nil {
		body.OrderError = "quote saved, but the production order could not be created"
	}
	if res.RefreshErr != nil {
		body.RefreshError = "quote saved, but the quote listing could not be refreshed"
	} else {
		body.Quotes = response.FromQuotes(res.Quotes)
	}

	status := http.StatusOK
	if existingQuoteID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, body)
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUseCaseError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondUseCaseError(c, err, mapQuoteError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOrderQueue serves the legacy order queue view: approved quotes projected
// as order-shaped records, not the persisted orders.
func (h *QuoteHandler) ListOrderQueue(c *gin.Context) {
	orders, err := h.usecase.ListApprovedAsOrders(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_EXISTS", "This quote was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

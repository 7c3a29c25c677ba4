package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "esquadrias_xpto/internal/adapter/http/dto/request"
	response "esquadrias_xpto/internal/adapter/http/dto/response"
	"esquadrias_xpto/internal/adapter/http/middleware"
	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for production orders and their payments.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUseCaseError(c, err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in := usecase.OrderUpdateInput{
		CustomerName: payload.CustomerName,
		Quantity:     payload.Quantity,
		Paid:         payload.Paid,
	}
	if payload.Status != nil {
		status := entities.OrderStatus(*payload.Status)
		in.Status = &status
	}

	o, err := h.usecase.UpdateOrder(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondUseCaseError(c, err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondUseCaseError(c, err, mapOrderError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListHistory serves the read-only sales history (delivered orders).
func (h *OrderHandler) ListHistory(c *gin.Context) {
	orders, err := h.usecase.ListHistory(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// PayOrder charges the order through the payment provider.
func (h *OrderHandler) PayOrder(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[payment][handler] pay start order_id=%s", orderID)

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if isPaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_id=%s err=%v", orderID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	session := middleware.SessionFrom(c)
	payment, order, err := h.usecase.PayOrder(c.Request.Context(), session, orderID, providerPayload)
	if err != nil {
		log.Printf("[payment][handler] pay failed order_id=%s err=%v", orderID, err)
		respondUseCaseError(c, err, mapOrderError)
		return
	}
	log.Printf("[payment][handler] pay success order_id=%s payment_id=%s", orderID, payment.ID)

	c.JSON(http.StatusOK, response.PayOrderResponse{
		Payment: response.FromOrderPayment(payment),
		Order:   response.FromOrder(order),
	})
}

func (h *OrderHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUseCaseError(c, err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPayments(payments))
}

// readProviderPayload accepts either a bare provider payload or one wrapped in
// a provider_payload envelope. An empty body is a valid "charge with defaults"
// request.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderCancelled):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Order is cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

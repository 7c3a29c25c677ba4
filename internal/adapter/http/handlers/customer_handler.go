package handlers

import (
	"errors"
	"net/http"

	request "esquadrias_xpto/internal/adapter/http/dto/request"
	response "esquadrias_xpto/internal/adapter/http/dto/response"
	"esquadrias_xpto/internal/usecase"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for the cliente registry.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCustomer(c.Request.Context(), usecase.CustomerInput{
		Name:    payload.Name,
		Address: payload.Address,
		Phone:   payload.Phone,
	})
	if err != nil {
		respondUseCaseError(c, err, mapCustomerError)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateCustomer(c.Request.Context(), c.Param("id"), usecase.CustomerInput{
		Name:    payload.Name,
		Address: payload.Address,
		Phone:   payload.Phone,
	})
	if err != nil {
		respondUseCaseError(c, err, mapCustomerError)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUseCaseError(c, err, mapCustomerError)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ListCustomers serves the registry, narrowed by ?q= for the quote form's
// autocomplete.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.ListCustomers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondUseCaseError(c, err, mapCustomerError)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondUseCaseError(c, err, mapCustomerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "esquadrias_xpto/internal/adapter/http/dto/request"
	response "esquadrias_xpto/internal/adapter/http/dto/response"
	"esquadrias_xpto/internal/adapter/http/middleware"
	"esquadrias_xpto/internal/usecase"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

// ExpenseHandler handles HTTP requests for despesas.

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateExpense(c.Request.Context(), middleware.SessionFrom(c), usecase.ExpenseInput{
		Description: payload.Description,
		Amount:      payload.Amount,
		Date:        payload.Date,
	})
	if err != nil {
		respondUseCaseError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(created))
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.ListExpenses(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err, mapExpenseError)
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.usecase.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondUseCaseError(c, err, mapExpenseError)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

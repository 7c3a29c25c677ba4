package response

import (
	"time"

	"esquadrias_xpto/internal/domain/entities"
)

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"descricao"`
	Amount      float64   `json:"valor"`
	Date        string    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

func FromExpenses(expenses []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

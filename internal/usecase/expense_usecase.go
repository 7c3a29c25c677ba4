package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase/interfaces"
	"esquadrias_xpto/pkg"

	"github.com/google/uuid"
)

var ErrInvalidExpenseID = errors.New("invalid expense id")

type ExpenseInput struct {
	Description string
	Amount      float64
	Date        string
}

type IExpenseUseCase interface {
	CreateExpense(ctx context.Context, session entities.Session, in ExpenseInput) (entities.Expense, error)
	ListExpenses(ctx context.Context) ([]entities.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func (u *ExpenseUseCase) CreateExpense(ctx context.Context, session entities.Session, in ExpenseInput) (entities.Expense, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)

	fieldErrs := pkg.FieldErrors{}
	if in.Description == "" {
		fieldErrs["descricao"] = "description is required"
	}
	if in.Amount <= 0 {
		fieldErrs["valor"] = "amount must be a positive number"
	}
	if _, err := time.Parse(entities.ExpenseDateLayout, in.Date); err != nil {
		fieldErrs["data"] = "date must be in YYYY-MM-DD format"
	}
	if len(fieldErrs) > 0 {
		return entities.Expense{}, fieldErrs
	}

	e := entities.Expense{
		ID:          uuid.NewString(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   session.UserID,
	}
	return u.repo.Create(ctx, e)
}

func (u *ExpenseUseCase) ListExpenses(ctx context.Context) ([]entities.Expense, error) {
	return u.repo.List(ctx)
}

func (u *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidExpenseID
	}
	return u.repo.Delete(ctx, id)
}

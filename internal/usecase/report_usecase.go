package usecase

import (
	"context"
	"sort"
	"time"

	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase/interfaces"
)

// MonthlyFlow is one month's income/outgoings pair on the cash-flow series.
type MonthlyFlow struct {
	Month    string  `json:"mes"`
	Income   float64 `json:"receitas"`
	Expenses float64 `json:"despesas"`
}

// FinanceSummary backs the finance screen. Receivable counts unpaid,
// non-cancelled orders; Paid counts settled ones; Balance is Paid minus
// Payable.
type FinanceSummary struct {
	Receivable float64       `json:"contas_a_receber"`
	Payable    float64       `json:"contas_a_pagar"`
	Paid       float64       `json:"recebido"`
	Balance    float64       `json:"saldo"`
	CashFlow   []MonthlyFlow `json:"fluxo_caixa"`
}

// DashboardSummary backs the landing screen counters.
type DashboardSummary struct {
	PendingQuotes int     `json:"orcamentos_pendentes"`
	OpenOrders    int     `json:"pedidos_em_aberto"`
	MonthSales    float64 `json:"vendas_do_mes"`
}

type IReportUseCase interface {
	FinanceSummary(ctx context.Context) (FinanceSummary, error)
	DashboardSummary(ctx context.Context) (DashboardSummary, error)
}

type ReportUseCase struct {
	quoteRepo   interfaces.IQuoteRepository
	orderRepo   interfaces.IOrderRepository
	expenseRepo interfaces.IExpenseRepository

	// Overridable in tests.
	now func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(quoteRepo interfaces.IQuoteRepository, orderRepo interfaces.IOrderRepository, expenseRepo interfaces.IExpenseRepository) *ReportUseCase {
	return &ReportUseCase{
		quoteRepo:   quoteRepo,
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

const monthKeyLayout = "2006-01"

func (u *ReportUseCase) FinanceSummary(ctx context.Context) (FinanceSummary, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return FinanceSummary{}, err
	}
	expenses, err := u.expenseRepo.List(ctx)
	if err != nil {
		return FinanceSummary{}, err
	}

	var s FinanceSummary
	flow := map[string]*MonthlyFlow{}
	monthOf := func(key string) *MonthlyFlow {
		if f, ok := flow[key]; ok {
			return f
		}
		f := &MonthlyFlow{Month: key}
		flow[key] = f
		return f
	}

	for _, o := range orders {
		if o.Paid {
			s.Paid += o.TotalPrice
			monthOf(o.CreatedAt.Format(monthKeyLayout)).Income += o.TotalPrice
		} else if o.Status != entities.OrderStatusCancelled {
			s.Receivable += o.TotalPrice
		}
	}
	for _, e := range expenses {
		s.Payable += e.Amount
		key := e.Date
		if d, err := time.Parse(entities.ExpenseDateLayout, e.Date); err == nil {
			key = d.Format(monthKeyLayout)
		}
		monthOf(key).Expenses += e.Amount
	}
	s.Balance = s.Paid - s.Payable

	s.CashFlow = make([]MonthlyFlow, 0, len(flow))
	for _, f := range flow {
		s.CashFlow = append(s.CashFlow, *f)
	}
	sort.Slice(s.CashFlow, func(i, j int) bool { return s.CashFlow[i].Month < s.CashFlow[j].Month })

	return s, nil
}

func (u *ReportUseCase) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	quotes, err := u.quoteRepo.ListByStatus(ctx, entities.QuoteStatusPending)
	if err != nil {
		return DashboardSummary{}, err
	}
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	s := DashboardSummary{PendingQuotes: len(quotes)}
	currentMonth := u.now().Format(monthKeyLayout)
	for _, o := range orders {
		if !o.Status.Terminal() {
			s.OpenOrders++
		}
		if o.Paid && o.CreatedAt.Format(monthKeyLayout) == currentMonth {
			s.MonthSales += o.TotalPrice
		}
	}
	return s, nil
}

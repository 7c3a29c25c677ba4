package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"esquadrias_xpto/internal/domain/entities"
	mock_interfaces "esquadrias_xpto/internal/usecase/interfaces/mocks"
	"esquadrias_xpto/pkg"

	"go.uber.org/mock/gomock"
)

func validQuoteInput() QuoteInput {
	return QuoteInput{
		CustomerName:      "Maria Silva",
		Phone:             "(11) 91234-5678",
		Address:           "Rua das Flores, 10",
		Type:              entities.ProductCompleteDoor,
		HeightCM:          200,
		WidthCM:           100,
		NeedsInstallation: true,
	}
}

func TestQuoteUseCase_SubmitQuote_Validation(t *testing.T) {
	session := entities.Session{UserID: "user-1"}

	t.Run("collects every field error", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		in := QuoteInput{
			CustomerName: "   ",
			Type:         entities.ProductType("telhado"),
			HeightCM:     0,
			WidthCM:      -5,
			Status:       entities.QuoteStatus("maybe"),
		}

		_, err := uc.SubmitQuote(context.Background(), session, in, "")
		var fieldErrs pkg.FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
		for _, field := range []string{"customer_name", "type", "height", "width", "total_price", "status"} {
			if _, ok := fieldErrs[field]; !ok {
				t.Fatalf("expected error for %q, got %v", field, fieldErrs)
			}
		}
	})

	t.Run("valid form passes validation even with junk client total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				// 1000 base (width > 89) + 200 area + 120 installation.
				if q.TotalPrice != 1320 {
					t.Fatalf("expected recomputed total 1320, got %v", q.TotalPrice)
				}
				return q, nil
			},
		)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		if _, err := uc.SubmitQuote(context.Background(), session, validQuoteInput(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_SubmitQuote_Create(t *testing.T) {
	session := entities.Session{UserID: "user-1"}

	t.Run("generates id and defaults to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				if q.Status != entities.QuoteStatusPending {
					t.Fatalf("expected pending status, got %s", q.Status)
				}
				if q.CreatedBy != "user-1" {
					t.Fatalf("expected created_by user-1, got %s", q.CreatedBy)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		res, err := uc.SubmitQuote(context.Background(), session, validQuoteInput(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CreatedOrder != nil {
			t.Fatalf("pending quote must not derive an order")
		}
	})

	t.Run("request token becomes the quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "tok-1" {
					t.Fatalf("expected id tok-1, got %s", q.ID)
				}
				return q, nil
			},
		)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		in := validQuoteInput()
		in.RequestToken = " tok-1 "
		if _, err := uc.SubmitQuote(context.Background(), session, in, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate request token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)

		in := validQuoteInput()
		in.RequestToken = "tok-1"
		_, err := uc.SubmitQuote(context.Background(), session, in, "")
		if !errors.Is(err, ErrQuoteAlreadyExists) {
			t.Fatalf("expected ErrQuoteAlreadyExists, got %v", err)
		}
	})

	t.Run("options outside product type are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.LockIncluded || q.HingeIncluded || q.FrameWidthCM != nil {
					t.Fatalf("window must not keep door options: %+v", q)
				}
				return q, nil
			},
		)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		frame := 12.0
		in := validQuoteInput()
		in.Type = entities.ProductWindow
		in.LockIncluded = true
		in.HingeIncluded = true
		in.FrameWidthCM = &frame
		if _, err := uc.SubmitQuote(context.Background(), session, in, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_SubmitQuote_Update(t *testing.T) {
	session := entities.Session{UserID: "user-1"}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.SubmitQuote(context.Background(), session, validQuoteInput(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("preserves creation metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		createdAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
		existing := entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending, CreatedAt: createdAt, CreatedBy: "user-0"}

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "q-1" || !q.CreatedAt.Equal(createdAt) || q.CreatedBy != "user-0" {
					t.Fatalf("creation metadata lost: %+v", q)
				}
				if !q.UpdatedAt.After(createdAt) {
					t.Fatalf("expected updated_at to advance")
				}
				return q, nil
			},
		)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		if _, err := uc.SubmitQuote(context.Background(), session, validQuoteInput(), " q-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_SubmitQuote_OrderDerivation(t *testing.T) {
	session := entities.Session{UserID: "user-1"}

	approvedInput := func() QuoteInput {
		in := validQuoteInput()
		in.Status = entities.QuoteStatusApproved
		return in
	}

	t.Run("approval derives exactly one order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewQuoteUseCase(repo, orderRepo)

		existing := entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		orderRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.SourceQuoteID != "q-1" {
					t.Fatalf("expected source quote q-1, got %s", o.SourceQuoteID)
				}
				if o.Status != entities.OrderStatusQueued || o.Quantity != 1 || o.Paid {
					t.Fatalf("unexpected derived order: %+v", o)
				}
				if o.TotalPrice != 1320 {
					t.Fatalf("expected order total 1320, got %v", o.TotalPrice)
				}
				return o, nil
			},
		)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		res, err := uc.SubmitQuote(context.Background(), session, approvedInput(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CreatedOrder == nil || res.OrderErr != nil {
			t.Fatalf("expected derived order, got %+v", res)
		}
	})

	t.Run("re-saving an approved quote derives nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewQuoteUseCase(repo, orderRepo)

		existing := entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		res, err := uc.SubmitQuote(context.Background(), session, approvedInput(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CreatedOrder != nil {
			t.Fatalf("order must not be derived twice")
		}
	})

	t.Run("order insert failure does not fail the submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewQuoteUseCase(repo, orderRepo)

		existing := entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		res, err := uc.SubmitQuote(context.Background(), session, approvedInput(), "q-1")
		if err != nil {
			t.Fatalf("quote write committed, submit must not fail: %v", err)
		}
		if res.OrderErr == nil || res.CreatedOrder != nil {
			t.Fatalf("expected OrderErr, got %+v", res)
		}
		if res.Quote.Status != entities.QuoteStatusApproved {
			t.Fatalf("quote status must stay approved, got %s", res.Quote.Status)
		}
	})

	t.Run("list refresh failure is reported, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		res, err := uc.SubmitQuote(context.Background(), session, validQuoteInput(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RefreshErr == nil || res.Quotes != nil {
			t.Fatalf("expected RefreshErr, got %+v", res)
		}
	})
}

func TestQuoteUseCase_ListQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{
		{ID: "q-1", Status: entities.QuoteStatusPending},
		{ID: "q-2", Status: entities.QuoteStatusApproved},
		{ID: "q-3", Status: entities.QuoteStatusRejected},
	}, nil)

	quotes, err := uc.ListQuotes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("approved quotes must leave the listing, got %d", len(quotes))
	}
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusApproved {
			t.Fatalf("approved quote leaked into listing: %+v", q)
		}
	}
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		q, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" {
			t.Fatalf("unexpected result: %+v", q)
		}
	})
}

func TestQuoteUseCase_DeleteQuote(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		if err := uc.DeleteQuote(context.Background(), ""); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)
		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		if err := uc.DeleteQuote(context.Background(), " q-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_ListApprovedAsOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil)

	createdAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	repo.EXPECT().ListByStatus(gomock.Any(), entities.QuoteStatusApproved).Return([]entities.Quote{
		{ID: "q-1", CustomerName: "Maria", Type: entities.ProductWindow, TotalPrice: 900, CreatedAt: createdAt, CreatedBy: "user-1"},
	}, nil)

	orders, err := uc.ListApprovedAsOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 projected order, got %d", len(orders))
	}
	o := orders[0]
	if o.ID != "q-1" || o.SourceQuoteID != "q-1" || o.Quantity != 1 || o.Paid {
		t.Fatalf("unexpected projection: %+v", o)
	}
	if o.Status != entities.OrderStatusQueued || o.TotalPrice != 900 {
		t.Fatalf("unexpected projection: %+v", o)
	}
}

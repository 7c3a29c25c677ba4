package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"esquadrias_xpto/internal/adapter/http/handlers/mocks"
	"esquadrias_xpto/internal/domain/entities"
	"esquadrias_xpto/internal/usecase"
	"esquadrias_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure returns every field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(
			usecase.SubmitResult{},
			pkg.FieldErrors{"customer_name": "customer name is required", "height": "height must be a positive number"},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"type":"janela"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "VALIDATION_FAILED" || len(body.Fields) != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("duplicate submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(usecase.SubmitResult{}, usecase.ErrQuoteAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"request_token":"tok-1","customer_name":"Maria","type":"janela","height":100,"width":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any(), "").DoAndReturn(
			func(_ context.Context, _ entities.Session, in usecase.QuoteInput, _ string) (usecase.SubmitResult, error) {
				if in.CustomerName != "Maria" || in.Type != entities.ProductWindow {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.SubmitResult{
					Quote:  entities.Quote{ID: "q-1", CustomerName: in.CustomerName, Type: in.Type, Status: entities.QuoteStatusPending},
					Quotes: []entities.Quote{{ID: "q-1"}},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"customer_name":"Maria","type":"janela","height":100,"width":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Quote struct {
				ID string `json:"id"`
			} `json:"quote"`
			OrderError string `json:"order_error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Quote.ID != "q-1" || body.OrderError != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestQuoteHandler_UpdateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approval reports the derived order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:id", h.UpdateQuote)

		order := entities.Order{ID: "o-1", SourceQuoteID: "q-1", Status: entities.OrderStatusQueued}
		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any(), "q-1").Return(usecase.SubmitResult{
			Quote:        entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved},
			CreatedOrder: &order,
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1", bytes.NewBufferString(`{"customer_name":"Maria","type":"janela","height":100,"width":100,"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			CreatedOrder *struct {
				ID string `json:"id"`
			} `json:"created_order"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.CreatedOrder == nil || body.CreatedOrder.ID != "o-1" {
			t.Fatalf("expected created order in body: %s", w.Body.String())
		}
	})

	t.Run("order insert failure surfaces as warning with 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:id", h.UpdateQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any(), "q-1").Return(usecase.SubmitResult{
			Quote:    entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved},
			OrderErr: usecase.ErrOrderNotFound,
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1", bytes.NewBufferString(`{"customer_name":"Maria","type":"janela","height":100,"width":100,"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			OrderError string `json:"order_error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.OrderError == "" {
			t.Fatalf("expected order_error in body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:id", h.UpdateQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any(), gomock.Any(), "q-404").Return(usecase.SubmitResult{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-404", bytes.NewBufferString(`{"customer_name":"Maria","type":"janela","height":100,"width":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_PriceQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/price", h.PriceQuote)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/price", bytes.NewBufferString(`{"type":"porta_completa","height":200,"width":100,"needs_installation":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		TotalPrice float64 `json:"total_price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.TotalPrice != 1320 {
		t.Fatalf("expected 1320, got %v", body.TotalPrice)
	}
}

func TestQuoteHandler_ListAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("queue projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/queue", h.ListOrderQueue)

		uc.EXPECT().ListApprovedAsOrders(gomock.Any()).Return([]entities.Order{{ID: "q-1", SourceQuoteID: "q-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/queue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:id", h.DeleteQuote)

		uc.EXPECT().DeleteQuote(gomock.Any(), "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

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

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status string maps to typed pointer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().UpdateOrder(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.OrderUpdateInput) (entities.Order, error) {
				if in.Status == nil || *in.Status != entities.OrderStatusInProduction {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.CustomerName != nil || in.Quantity != nil {
					t.Fatalf("absent fields must stay nil: %+v", in)
				}
				return entities.Order{ID: "o-1", Status: entities.OrderStatusInProduction}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1", bytes.NewBufferString(`{"status":"em_producao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().UpdateOrder(gomock.Any(), "o-404", gomock.Any()).Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-404", bytes.NewBufferString(`{"paid":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_PayOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/payments", h.PayOrder)

		uc.EXPECT().PayOrder(gomock.Any(), gomock.Any(), "o-1", gomock.Any()).Return(entities.OrderPayment{}, entities.Order{}, usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/payments", bytes.NewBufferString(`{}`))
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
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/payments", h.PayOrder)

		uc.EXPECT().PayOrder(gomock.Any(), gomock.Any(), "o-1", gomock.Any()).Return(
			entities.OrderPayment{ID: "mp-1", OrderID: "o-1", Status: entities.PaymentStatusAprovado},
			entities.Order{ID: "o-1", Paid: true},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Payment struct {
				ID string `json:"id"`
			} `json:"payment"`
			Order struct {
				Paid bool `json:"paid"`
			} `json:"order"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Payment.ID != "mp-1" || !body.Order.Paid {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("wrapped provider payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/payments", h.PayOrder)

		uc.EXPECT().PayOrder(gomock.Any(), gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Session, _ string, payload json.RawMessage) (entities.OrderPayment, entities.Order, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if req["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.OrderPayment{ID: "mp-1"}, entities.Order{ID: "o-1"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Listings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/history", h.ListHistory)

		uc.EXPECT().ListHistory(gomock.Any()).Return([]entities.Order{{ID: "o-1", Status: entities.OrderStatusDelivered}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("payments by order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/payments", h.ListPayments)

		uc.EXPECT().ListPayments(gomock.Any(), "o-1").Return([]entities.OrderPayment{{ID: "mp-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

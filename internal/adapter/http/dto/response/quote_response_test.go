package response

import (
	"testing"
	"time"

	"esquadrias_xpto/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	frame := 14.0
	q := entities.Quote{
		ID:                "q-1",
		CustomerName:      "Maria",
		Type:              entities.ProductCompleteDoor,
		HeightCM:          200,
		WidthCM:           100,
		FrameWidthCM:      &frame,
		NeedsInstallation: true,
		TotalPrice:        1320,
		Status:            entities.QuoteStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.CustomerName != "Maria" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Type != "porta_completa" || res.Status != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.FrameWidth == nil || *res.FrameWidth != 14.0 {
		t.Fatalf("unexpected frame width: %+v", res.FrameWidth)
	}
	if res.TotalPrice != 1320 || !res.NeedsInstallation {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:            "o-1",
		CustomerName:  "Maria",
		Product:       entities.ProductWindow,
		Quantity:      2,
		TotalPrice:    640,
		Status:        entities.OrderStatusQueued,
		SourceQuoteID: "q-1",
		CreatedAt:     now,
	}

	res := FromOrder(o)
	if res.ID != "o-1" || res.SourceQuoteID != "q-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Product != "janela" || res.Status != "na_fila" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Quantity != 2 || res.TotalPrice != 640 || res.Paid {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

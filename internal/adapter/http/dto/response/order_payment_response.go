package response

import (
	"time"

	"esquadrias_xpto/internal/domain/entities"
)

type OrderPaymentResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		ID:      p.ID,
		OrderID: p.OrderID,
		Date:    p.Date,
		Status:  string(p.Status),
	}
}

func FromOrderPayments(payments []entities.OrderPayment) []OrderPaymentResponse {
	out := make([]OrderPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromOrderPayment(p))
	}
	return out
}

// PayOrderResponse pairs the recorded payment with the refreshed order.
type PayOrderResponse struct {
	Payment OrderPaymentResponse `json:"payment"`
	Order   OrderResponse        `json:"order"`
}

package response

import (
	"time"

	"esquadrias_xpto/internal/domain/entities"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Product       string    `json:"product"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	Paid          bool      `json:"paid"`
	Status        string    `json:"status"`
	SourceQuoteID string    `json:"source_quote_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Product:       string(o.Product),
		Quantity:      o.Quantity,
		TotalPrice:    o.TotalPrice,
		Paid:          o.Paid,
		Status:        string(o.Status),
		SourceQuoteID: o.SourceQuoteID,
		CreatedAt:     o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

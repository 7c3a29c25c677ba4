package entities

import "time"

// OrderStatus tracks an order through the production pipeline. Wire values
// match the retailer's historical data (Portuguese). Any status may be set
// from any other; entregue/cancelado are terminal by convention only.

type OrderStatus string

const (
	OrderStatusQueued       OrderStatus = "na_fila"
	OrderStatusInProduction OrderStatus = "em_producao"
	OrderStatusReady        OrderStatus = "pronto"
	OrderStatusDelivered    OrderStatus = "entregue"
	OrderStatusCancelled    OrderStatus = "cancelado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusQueued, OrderStatusInProduction, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order is a production/fulfillment record, created once when a quote
// transitions into approved and mutated independently afterwards.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SourceQuoteID links back to the originating quote. Deleting the quote does
// not cascade here; the two records are independent once split.

type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	Product       ProductType `json:"product"`
	Quantity      int         `json:"quantity"`
	TotalPrice    float64     `json:"total_price"`
	Paid          bool        `json:"paid"`
	Status        OrderStatus `json:"status"`
	SourceQuoteID string      `json:"source_quote_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	CreatedBy     string      `json:"created_by"`
}

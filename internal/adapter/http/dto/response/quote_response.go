package response

import (
	"time"

	"esquadrias_xpto/internal/domain/entities"
)

type QuoteResponse struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customer_name"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	Type              string    `json:"type"`
	Height            float64   `json:"height"`
	Width             float64   `json:"width"`
	FrameWidth        *float64  `json:"frame_width,omitempty"`
	NeedsInstallation bool      `json:"needs_installation"`
	LockIncluded      bool      `json:"lock_included"`
	HingeIncluded     bool      `json:"hinge_included"`
	TotalPrice        float64   `json:"total_price"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                q.ID,
		CustomerName:      q.CustomerName,
		Phone:             q.Phone,
		Address:           q.Address,
		Type:              string(q.Type),
		Height:            q.HeightCM,
		Width:             q.WidthCM,
		FrameWidth:        q.FrameWidthCM,
		NeedsInstallation: q.NeedsInstallation,
		LockIncluded:      q.LockIncluded,
		HingeIncluded:     q.HingeIncluded,
		TotalPrice:        q.TotalPrice,
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// QuoteSubmitResponse reports a committed submit together with its non-fatal
// side effects. A non-empty OrderError means the quote saved but the derived
// order did not; the client must show both facts.
type QuoteSubmitResponse struct {
	Quote        QuoteResponse   `json:"quote"`
	CreatedOrder *OrderResponse  `json:"created_order,omitempty"`
	OrderError   string          `json:"order_error,omitempty"`
	Quotes       []QuoteResponse `json:"quotes,omitempty"`
	RefreshError string          `json:"refresh_error,omitempty"`
}

// PriceQuoteResponse is the live price preview.
type PriceQuoteResponse struct {
	TotalPrice float64 `json:"total_price"`
}

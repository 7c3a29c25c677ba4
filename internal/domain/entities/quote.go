package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - A quote starts pending and is approved or rejected by staff through
//     the quote form; there is no transition guard, edits may set any status.
//   - Approval derives an Order (see Order) and the quote leaves the
//     quotes listing.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// ProductType identifies what is being quoted. Wire values match the
// retailer's historical data (Portuguese).

type ProductType string

const (
	ProductCompleteDoor ProductType = "porta_completa"
	ProductDoorLeaf     ProductType = "folha_de_porta"
	ProductWindow       ProductType = "janela"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductCompleteDoor, ProductDoorLeaf, ProductWindow:
		return true
	}
	return false
}

// Quote is a priced proposal for a door/window product persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariant: TotalPrice always equals pricing.Total over the dimension and
// option fields; the price is recomputed server-side on every submit and a
// client-supplied total is never trusted.
//
// FrameWidthCM only applies to porta_completa; LockIncluded/HingeIncluded
// only apply to folha_de_porta.

type Quote struct {
	ID                string      `json:"id"`
	CustomerName      string      `json:"customer_name"`
	Phone             string      `json:"phone"`
	Address           string      `json:"address"`
	Type              ProductType `json:"type"`
	HeightCM          float64     `json:"height"`
	WidthCM           float64     `json:"width"`
	FrameWidthCM      *float64    `json:"frame_width,omitempty"`
	NeedsInstallation bool        `json:"needs_installation"`
	LockIncluded      bool        `json:"lock_included"`
	HingeIncluded     bool        `json:"hinge_included"`
	TotalPrice        float64     `json:"total_price"`
	Status            QuoteStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	CreatedBy         string      `json:"created_by"`
}

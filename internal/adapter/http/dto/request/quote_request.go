package request

// QuoteRequest is the quote form as posted by the dashboard. The client may
// echo a computed total back, but it is ignored; the server always reprices.
//
// RequestToken is generated once per opened form. Retries of the same submit
// carry the same token, which the server uses to collapse duplicates.
type QuoteRequest struct {
	RequestToken      string   `json:"request_token"`
	CustomerName      string   `json:"customer_name"`
	Phone             string   `json:"phone"`
	Address           string   `json:"address"`
	Type              string   `json:"type"`
	Height            float64  `json:"height"`
	Width             float64  `json:"width"`
	FrameWidth        *float64 `json:"frame_width"`
	NeedsInstallation bool     `json:"needs_installation"`
	LockIncluded      bool     `json:"lock_included"`
	HingeIncluded     bool     `json:"hinge_included"`
	Status            string   `json:"status"`
}

// PriceQuoteRequest carries just the pricing-relevant fields for the live
// price preview shown while the form is being filled.
type PriceQuoteRequest struct {
	Type              string  `json:"type"`
	Height            float64 `json:"height"`
	Width             float64 `json:"width"`
	NeedsInstallation bool    `json:"needs_installation"`
	LockIncluded      bool    `json:"lock_included"`
	HingeIncluded     bool    `json:"hinge_included"`
}

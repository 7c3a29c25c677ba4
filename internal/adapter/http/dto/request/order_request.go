package request

// OrderUpdateRequest is a partial order edit. Absent fields (nil pointers)
// leave the stored values untouched.
type OrderUpdateRequest struct {
	CustomerName *string `json:"customer_name"`
	Quantity     *int    `json:"quantity"`
	Paid         *bool   `json:"paid"`
	Status       *string `json:"status"`
}

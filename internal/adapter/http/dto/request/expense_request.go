package request

// ExpenseRequest uses the retailer's Portuguese field names on the wire.
// Date is a calendar day in YYYY-MM-DD.
type ExpenseRequest struct {
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Date        string  `json:"data"`
}

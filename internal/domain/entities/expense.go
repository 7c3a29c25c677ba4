package entities

import "time"

// ExpenseDateLayout is the calendar-day format used for despesa dates.
const ExpenseDateLayout = "2006-01-02"

// Expense (despesa) is an outgoing cost entered on the finance screen.
//
// Storage model (DynamoDB):
//   - PK: id

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"descricao"`
	Amount      float64   `json:"valor"`
	Date        string    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
}

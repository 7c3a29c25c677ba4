package entities

import "time"

// Customer (cliente) feeds the quote form's autocomplete; selecting one
// copies name/phone/address into the quote.
//
// Storage model (DynamoDB):
//   - PK: id

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Address   string    `json:"endereco"`
	Phone     string    `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
}

package request

// CustomerRequest uses the retailer's Portuguese field names on the wire.
type CustomerRequest struct {
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
}

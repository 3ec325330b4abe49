package model

// Trade represents an executed trade for an account.
type Trade struct {
	ID       string `json:"id"`
	Account  string `json:"account"`
	Symbol   string `json:"symbol"`
	Quantity Number `json:"quantity"`
	Price    Number `json:"price"`
	Action   string `json:"action"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// Order represents a working or historical order for an account. The backend
// uses the same field set for orders and trades.
type Order struct {
	ID       string `json:"id"`
	Account  string `json:"account"`
	Symbol   string `json:"symbol"`
	Quantity Number `json:"quantity"`
	Price    Number `json:"price"`
	Action   string `json:"action"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

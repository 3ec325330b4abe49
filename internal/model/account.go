package model

// Account represents a trading account as returned by the backend API.
type Account struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Currency     string `json:"currency"`
	AccountGroup string `json:"accountgroup"`
	Owner        string `json:"owner"`
}

// Owner represents an account owner.
type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

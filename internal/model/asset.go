package model

// Asset represents a tradable instrument known to the backend.
type Asset struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Currency    string `json:"currency"`
}

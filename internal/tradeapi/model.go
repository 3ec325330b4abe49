package tradeapi

// AccountRequest is the payload for creating or updating an account.
// Field names match the backend's expected JSON body.
type AccountRequest struct {
	ID           string `json:"id,omitempty"`
	Description  string `json:"description"`
	Currency     string `json:"currency"`
	AccountGroup string `json:"accountgroup"`
	Owner        string `json:"owner"`
}

// AssetRequest is the payload for creating an asset.
type AssetRequest struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Currency    string `json:"currency"`
}

// AssetUpdateRequest is the payload for updating an asset. The backend's
// update endpoint uses "name" where the create endpoint uses "description",
// and additionally accepts a value.
type AssetUpdateRequest struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Value    float64 `json:"value,omitempty"`
	Currency string  `json:"currency"`
}

// PositionRequest is the payload for creating a position.
type PositionRequest struct {
	AccountID string  `json:"account_id"`
	Qty       float64 `json:"qty"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"`
}

// TradeRequest is the payload for creating a trade or an order; the backend
// uses the same field set for both.
type TradeRequest struct {
	Account  string  `json:"account"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status,omitempty"`
	Symbol   string  `json:"symbol"`
	Action   string  `json:"action,omitempty"`
	Date     string  `json:"date"`
}

// PriceQuery holds the optional query parameters of the price history
// endpoint. Empty fields are omitted from the request.
type PriceQuery struct {
	Account string
	Start   string
	End     string
}

// credentialsRequest is the body of the credential-check endpoint.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// credentialsResponse is the backend's credential-check answer: result is 1
// for a valid pair, 0 otherwise.
type credentialsResponse struct {
	Result int `json:"result"`
}

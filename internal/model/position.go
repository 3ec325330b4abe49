package model

// Position represents an open position row for an account on a given date.
type Position struct {
	ID       string `json:"id"`
	Account  string `json:"account_id"`
	Symbol   string `json:"symbol"`
	Quantity Number `json:"quantity"`
	AvgPrice Number `json:"avgprice"`
	Currency string `json:"currency"`
	Date     string `json:"date"`
}

// MarketValue returns avgprice * quantity, the same display-time product the
// dashboard shows per row. Missing fields count as zero.
func (p Position) MarketValue() float64 {
	if !p.Quantity.Valid || !p.AvgPrice.Valid {
		return 0
	}
	return p.AvgPrice.Value * p.Quantity.Value
}

// PositionGroup is the per-date grouping of positions the dashboard renders,
// with the summed market value of the group.
type PositionGroup struct {
	Date      string     `json:"date"`
	Positions []Position `json:"positions"`
	Total     float64    `json:"total"`
}

package model

// PriceHistory is the backend's price response for a symbol: a map of
// ISO-8601 timestamp to price, plus the latest known price.
type PriceHistory struct {
	Hist  map[string]float64 `json:"hist"`
	Price Number             `json:"price"`
}

// PricePoint is one entry of a price series after conversion from the
// timestamp-keyed map to a sortable array.
type PricePoint struct {
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

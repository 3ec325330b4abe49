package model

// HistoryRow is one dated observation of an account's mark-to-market value
// and its period-over-period return. The backend serves one row per
// valuation date; either numeric field may be missing or malformed for a
// given row, which is why both use Number rather than float64.
type HistoryRow struct {
	Date        string `json:"date"`
	Value       Number `json:"value"`
	Performance Number `json:"performance"`
}

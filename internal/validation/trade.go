package validation

import (
	"strings"
	"time"

	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// ValidateCreateTrade checks the payload of the trade and order add
// dialogs; both use the same field set. Status and action are optional,
// matching the original forms.
func ValidateCreateTrade(req tradeapi.TradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Account) == "" {
		errors["account"] = "account is required"
	}
	if req.Quantity == 0 {
		errors["quantity"] = "quantity is required"
	}
	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if err := requireDate(req.Date); err != "" {
		errors["date"] = err
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// requireDate returns a field error message when the date is missing or not
// a calendar date, empty string otherwise.
func requireDate(date string) string {
	if strings.TrimSpace(date) == "" {
		return "date is required"
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "date must be YYYY-MM-DD"
	}
	return ""
}

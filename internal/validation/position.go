package validation

import (
	"strings"

	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// ValidateCreatePosition checks the payload of the position add dialog.
// Every field is required, matching the original form.
func ValidateCreatePosition(req tradeapi.PositionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.AccountID) == "" {
		errors["account_id"] = "account is required"
	}
	if req.Qty == 0 {
		errors["qty"] = "qty is required"
	}
	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}
	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if len(req.Currency) > 3 {
		errors["currency"] = "currency must be 3 characters or less (USD, EUR)"
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

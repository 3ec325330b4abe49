package validation

import (
	"strings"

	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// ValidateCreateAccount checks the payload of the account create dialog.
// All fields except the owner are required, matching the original form.
func ValidateCreateAccount(req tradeapi.AccountRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.ID) == "" {
		errors["id"] = "id is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	}
	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if len(req.Currency) > 3 {
		errors["currency"] = "currency must be 3 characters or less (USD, EUR)"
	}
	if strings.TrimSpace(req.AccountGroup) == "" {
		errors["accountgroup"] = "account group is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateAccount checks the payload of the account update dialog.
// The ID comes from the URL, so only the mutable fields are required.
func ValidateUpdateAccount(req tradeapi.AccountRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	}
	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if len(req.Currency) > 3 {
		errors["currency"] = "currency must be 3 characters or less (USD, EUR)"
	}
	if strings.TrimSpace(req.AccountGroup) == "" {
		errors["accountgroup"] = "account group is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

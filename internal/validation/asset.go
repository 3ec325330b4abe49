package validation

import (
	"strings"

	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// ValidateCreateAsset checks the payload of the asset create dialog.
func ValidateCreateAsset(req tradeapi.AssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	}
	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	}
	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if len(req.Currency) > 3 {
		errors["currency"] = "currency must be 3 characters or less (USD, EUR)"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateAsset checks the payload of the asset edit dialog.
func ValidateUpdateAsset(req tradeapi.AssetUpdateRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	}
	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if len(req.Currency) > 3 {
		errors["currency"] = "currency must be 3 characters or less (USD, EUR)"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

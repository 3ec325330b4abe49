package service

import (
	"context"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
	"github.com/andrealuzzi/tradingweb/internal/validation"
)

// AccountService handles account-related operations against the trading
// backend.
type AccountService struct {
	api *tradeapi.Client
}

// NewAccountService creates a new AccountService
func NewAccountService(api *tradeapi.Client) *AccountService {
	return &AccountService{api: api}
}

// GetAllAccounts returns every account known to the backend.
func (s *AccountService) GetAllAccounts(ctx context.Context) ([]model.Account, error) {
	return s.api.ListAccounts(ctx)
}

// GetOwners returns every account owner known to the backend.
func (s *AccountService) GetOwners(ctx context.Context) ([]model.Owner, error) {
	return s.api.ListOwners(ctx)
}

// CreateAccount validates the payload and creates the account upstream.
func (s *AccountService) CreateAccount(ctx context.Context, req tradeapi.AccountRequest) (model.Account, error) {
	if err := validation.ValidateCreateAccount(req); err != nil {
		return model.Account{}, err
	}
	return s.api.CreateAccount(ctx, req)
}

// UpdateAccount validates the payload and updates the account upstream.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, req tradeapi.AccountRequest) (model.Account, error) {
	if err := validation.ValidateUpdateAccount(req); err != nil {
		return model.Account{}, err
	}
	return s.api.UpdateAccount(ctx, id, req)
}

// DeleteAccount deletes the account upstream.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	return s.api.DeleteAccount(ctx, id)
}

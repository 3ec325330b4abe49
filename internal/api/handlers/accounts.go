package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// GetAccounts lists all accounts.
//
// Endpoint: GET /api/accounts
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.GetAllAccounts(r.Context())
	if err != nil {
		response.RespondServiceError(w, "failed to retrieve accounts", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, accounts)
}

// GetOwners lists all account owners.
//
// Endpoint: GET /api/owners
func (h *AccountHandler) GetOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.accountService.GetOwners(r.Context())
	if err != nil {
		response.RespondServiceError(w, "failed to retrieve owners", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, owners)
}

// CreateAccount creates an account from the add-account dialog payload.
//
// Endpoint: POST /api/accounts
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req tradeapi.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, "failed to add account", err)
		return
	}
	response.RespondJSON(w, http.StatusCreated, account)
}

// UpdateAccount updates the account named in the URL.
//
// Endpoint: PUT /api/accounts/{id}
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	var req tradeapi.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(r.Context(), id, req)
	if err != nil {
		response.RespondServiceError(w, "failed to update account", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, account)
}

// DeleteAccount deletes the account named in the URL.
//
// Endpoint: DELETE /api/accounts/{id}
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), id); err != nil {
		response.RespondServiceError(w, "failed to delete account", err)
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

func newAccountHandler(t *testing.T) (*AccountHandler, *testutil.MockBackend) {
	t.Helper()
	backend := testutil.NewMockBackend(t)
	return NewAccountHandler(service.NewAccountService(backend.Client())), backend
}

func TestGetAccounts(t *testing.T) {
	handler, backend := newAccountHandler(t)
	backend.Accounts = []model.Account{
		testutil.NewAccount("ACC-1"),
		testutil.NewAccount("ACC-2"),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	w := httptest.NewRecorder()
	handler.GetAccounts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var accounts []model.Account
	testutil.DecodeJSON(t, w, &accounts)
	if len(accounts) != 2 || accounts[0].ID != "ACC-1" {
		t.Errorf("unexpected accounts: %+v", accounts)
	}
}

func TestGetAccountsBackendFailure(t *testing.T) {
	handler, backend := newAccountHandler(t)
	backend.FailWith = http.StatusInternalServerError

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	w := httptest.NewRecorder()
	handler.GetAccounts(w, req)

	// The failure must surface as a structured error response so the
	// accounts table shows an error state instead of loading forever.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var errResp response.ErrorResponse
	testutil.DecodeJSON(t, w, &errResp)
	if errResp.Error == "" {
		t.Error("error response has no message")
	}
}

func TestGetAccountsBackendDown(t *testing.T) {
	client := tradeapi.NewClient("http://127.0.0.1:1", 0)
	handler := NewAccountHandler(service.NewAccountService(client))

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	w := httptest.NewRecorder()
	handler.GetAccounts(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestCreateAccount(t *testing.T) {
	handler, _ := newAccountHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts", tradeapi.AccountRequest{
		ID:           "ACC-9",
		Description:  "New account",
		Currency:     "EUR",
		AccountGroup: "taxable",
	}, nil)
	w := httptest.NewRecorder()
	handler.CreateAccount(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var account model.Account
	testutil.DecodeJSON(t, w, &account)
	if account.ID != "ACC-9" {
		t.Errorf("echoed account = %+v", account)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	handler, backend := newAccountHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts", tradeapi.AccountRequest{
		Description: "No id, no currency",
	}, nil)
	w := httptest.NewRecorder()
	handler.CreateAccount(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var errResp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	testutil.DecodeJSON(t, w, &errResp)
	if errResp.Details["id"] == "" || errResp.Details["currency"] == "" {
		t.Errorf("missing field details: %+v", errResp.Details)
	}
	if backend.RequestCount() != 0 {
		t.Errorf("backend saw %d requests, want 0", backend.RequestCount())
	}
}

func TestCreateAccountBadBody(t *testing.T) {
	handler, _ := newAccountHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts", nil)
	w := httptest.NewRecorder()
	handler.CreateAccount(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateAccount(t *testing.T) {
	handler, _ := newAccountHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/accounts/ACC-1", tradeapi.AccountRequest{
		Description:  "Renamed",
		Currency:     "USD",
		AccountGroup: "taxable",
	}, map[string]string{"id": "ACC-1"})
	w := httptest.NewRecorder()
	handler.UpdateAccount(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestDeleteAccount(t *testing.T) {
	handler, backend := newAccountHandler(t)

	req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/accounts/ACC-1", map[string]string{"id": "ACC-1"})
	w := httptest.NewRecorder()
	handler.DeleteAccount(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if backend.Requests[0] != "DELETE /api/accounts/ACC-1" {
		t.Errorf("unexpected backend request %q", backend.Requests[0])
	}
}

func TestGetOwners(t *testing.T) {
	handler, backend := newAccountHandler(t)
	backend.Owners = []model.Owner{{ID: "owner-1", Name: "Andrea"}}

	req := httptest.NewRequest(http.MethodGet, "/api/owners", nil)
	w := httptest.NewRecorder()
	handler.GetOwners(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var owners []model.Owner
	testutil.DecodeJSON(t, w, &owners)
	if len(owners) != 1 || owners[0].Name != "Andrea" {
		t.Errorf("unexpected owners: %+v", owners)
	}
}

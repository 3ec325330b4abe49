// Package tradeapi provides a typed client for the remote trading API that
// owns all persistence and business logic behind this dashboard. Every call
// is plain request/response JSON over HTTP; there is no streaming, no
// server push, and no retry policy (a failed call surfaces to the caller,
// who degrades to an empty result).
package tradeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
	"github.com/andrealuzzi/tradingweb/internal/model"
)

// Client provides methods for every operation of the trading backend API.
// It wraps an HTTP client with a fixed base URL and timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a trading API client for the given base URL.
// A timeout of zero disables the client-side request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError reports a non-2xx answer from the backend. It unwraps to
// apperrors.ErrBackendStatus so callers can test with errors.Is.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("trading backend returned status %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	return apperrors.ErrBackendStatus
}

// ListAccounts fetches all accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount creates an account and returns the backend's echo of it.
func (c *Client) CreateAccount(ctx context.Context, req AccountRequest) (model.Account, error) {
	var account model.Account
	if err := c.do(ctx, http.MethodPost, "/api/accounts", nil, req, &account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// UpdateAccount updates the account with the given ID.
func (c *Client) UpdateAccount(ctx context.Context, id string, req AccountRequest) (model.Account, error) {
	var account model.Account
	if err := c.do(ctx, http.MethodPut, "/api/accounts/"+url.PathEscape(id), nil, req, &account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// DeleteAccount deletes the account with the given ID.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/accounts/"+url.PathEscape(id), nil, nil, nil)
}

// ListOwners fetches all account owners.
func (c *Client) ListOwners(ctx context.Context) ([]model.Owner, error) {
	var owners []model.Owner
	if err := c.do(ctx, http.MethodGet, "/api/owners", nil, nil, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// ListAssets fetches all tradable assets.
func (c *Client) ListAssets(ctx context.Context) ([]model.Asset, error) {
	var assets []model.Asset
	if err := c.do(ctx, http.MethodGet, "/api/assets", nil, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// CreateAsset creates an asset and returns the backend's echo of it.
func (c *Client) CreateAsset(ctx context.Context, req AssetRequest) (model.Asset, error) {
	var asset model.Asset
	if err := c.do(ctx, http.MethodPost, "/api/assets", nil, req, &asset); err != nil {
		return model.Asset{}, err
	}
	return asset, nil
}

// UpdateAsset updates the asset with the given symbol.
func (c *Client) UpdateAsset(ctx context.Context, symbol string, req AssetUpdateRequest) error {
	return c.do(ctx, http.MethodPut, "/api/assets/"+url.PathEscape(symbol), nil, req, nil)
}

// DeleteAsset deletes the asset with the given symbol.
func (c *Client) DeleteAsset(ctx context.Context, symbol string) error {
	return c.do(ctx, http.MethodDelete, "/api/assets/"+url.PathEscape(symbol), nil, nil, nil)
}

// AccountHistory fetches the value/performance series for an account, one
// row per valuation date. The series order is whatever the backend serves;
// the statistics engine sorts for itself.
func (c *Client) AccountHistory(ctx context.Context, accountID string) ([]model.HistoryRow, error) {
	var rows []model.HistoryRow
	if err := c.do(ctx, http.MethodGet, "/api/accounthist/"+url.PathEscape(accountID), nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Positions fetches the open positions of an account.
func (c *Client) Positions(ctx context.Context, accountID string) ([]model.Position, error) {
	var positions []model.Position
	if err := c.do(ctx, http.MethodGet, "/api/positions/"+url.PathEscape(accountID), nil, nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// CreatePosition creates a position and returns the backend's echo of it.
func (c *Client) CreatePosition(ctx context.Context, req PositionRequest) (model.Position, error) {
	var position model.Position
	if err := c.do(ctx, http.MethodPost, "/api/positions", nil, req, &position); err != nil {
		return model.Position{}, err
	}
	return position, nil
}

// DeletePosition deletes the position with the given ID.
func (c *Client) DeletePosition(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/positions/"+url.PathEscape(id), nil, nil, nil)
}

// Trades fetches all trades of an account.
func (c *Client) Trades(ctx context.Context, accountID string) ([]model.Trade, error) {
	var trades []model.Trade
	if err := c.do(ctx, http.MethodGet, "/api/trades/"+url.PathEscape(accountID), nil, nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// TradesBySymbol fetches the trades of an account restricted to one symbol.
func (c *Client) TradesBySymbol(ctx context.Context, accountID, symbol string) ([]model.Trade, error) {
	path := "/api/trades/" + url.PathEscape(accountID) + "/" + url.PathEscape(symbol)
	var trades []model.Trade
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// CreateTrade records a trade and returns the backend's echo of it.
func (c *Client) CreateTrade(ctx context.Context, req TradeRequest) (model.Trade, error) {
	var trade model.Trade
	if err := c.do(ctx, http.MethodPost, "/api/trades", nil, req, &trade); err != nil {
		return model.Trade{}, err
	}
	return trade, nil
}

// Orders fetches all orders of an account.
func (c *Client) Orders(ctx context.Context, accountID string) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(accountID), nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder places an order and returns the backend's echo of it.
func (c *Client) CreateOrder(ctx context.Context, req TradeRequest) (model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// Prices fetches the price history and latest price for a symbol. The
// optional query narrows the range or scopes the lookup to an account.
func (c *Client) Prices(ctx context.Context, symbol string, query PriceQuery) (model.PriceHistory, error) {
	params := url.Values{}
	if query.Account != "" {
		params.Set("account", query.Account)
	}
	if query.Start != "" {
		params.Set("start", query.Start)
	}
	if query.End != "" {
		params.Set("end", query.End)
	}

	var prices model.PriceHistory
	if err := c.do(ctx, http.MethodGet, "/api/prices/"+url.PathEscape(symbol), params, nil, &prices); err != nil {
		return model.PriceHistory{}, err
	}
	return prices, nil
}

// CheckCredentials asks the backend to verify a username/password pair.
// It returns true only when the backend answers result=1; any transport or
// status failure is an error, not a rejection.
func (c *Client) CheckCredentials(ctx context.Context, username, password string) (bool, error) {
	body := credentialsRequest{Username: username, Password: password}
	var result credentialsResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/check_credentials", nil, body, &result); err != nil {
		return false, err
	}
	return result.Result == 1, nil
}

// do executes one backend request. It marshals the optional body, checks
// for a 2xx status, and decodes the response into out when out is non-nil.
// Transport failures wrap apperrors.ErrBackendUnavailable, non-2xx answers
// become a *StatusError, and undecodable bodies wrap
// apperrors.ErrBackendDecode.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep a short prefix of the body for diagnostics.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBackendDecode, err)
	}
	return nil
}

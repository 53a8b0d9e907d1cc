package eeris

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrUnauthorized marks request failures caused by a missing, stale, or
// insufficient token. Callers redirect the user to the login entry point
// instead of retrying.
var ErrUnauthorized = errors.New("authentication required")

// TokenProvider supplies the bearer token for outgoing requests.
// *session.Session satisfies this interface.
type TokenProvider interface {
	Token() string
}

// ClientConfig represents the configuration for the EERIS API client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration // Default: 30 seconds
}

// Client is an EERIS backend API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenProvider
}

// NewClient creates a new EERIS API client. The token provider is
// consulted before every authenticated request.
func NewClient(config ClientConfig, tokens TokenProvider) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: config.BaseURL,
		tokens:  tokens,
	}
}

// Login authenticates with email and password. The caller is responsible
// for establishing the session from the returned token and role.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", req, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AllUsers lists all accounts. Admin only.
func (c *Client) AllUsers(ctx context.Context) ([]User, error) {
	var resp UsersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/all-users", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UpdateUserRole changes another user's role. Admin only.
func (c *Client) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	path := fmt.Sprintf("/update-user-role/%d", userID)
	return c.doJSON(ctx, http.MethodPost, path, RoleUpdateRequest{Role: role}, true, nil)
}

// DeleteUser deletes another user's account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/delete-user/%d", userID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, true, nil)
}

// FetchReceipts lists receipts visible to the current user.
func (c *Client) FetchReceipts(ctx context.Context) (*ReceiptsResponse, error) {
	var resp ReceiptsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/fetch-receipts", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Statistics fetches spending statistics for the current user's scope.
func (c *Client) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	var resp StatisticsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/statistics", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReceiptDetails fetches the line items and submitter of one receipt.
func (c *Client) ReceiptDetails(ctx context.Context, receiptID int64) (*ReceiptDetailsResponse, error) {
	var resp ReceiptDetailsResponse
	path := fmt.Sprintf("/receipt-details/%d", receiptID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateReceiptStatus approves or rejects a receipt. Reviewer roles only.
func (c *Client) UpdateReceiptStatus(ctx context.Context, receiptID int64, status string) error {
	path := fmt.Sprintf("/update-receipt-status/%d", receiptID)
	return c.doJSON(ctx, http.MethodPost, path, StatusUpdateRequest{Status: status}, true, nil)
}

// DeleteReceipt deletes a receipt. Admin only.
func (c *Client) DeleteReceipt(ctx context.Context, receiptID int64) error {
	path := fmt.Sprintf("/delete-receipt/%d", receiptID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, true, nil)
}

// SubmitManualReceipt submits a completed expense draft.
func (c *Client) SubmitManualReceipt(ctx context.Context, req ManualReceiptRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/manual-receipt", req, true, nil)
}

// UploadReceipt uploads a receipt image for extraction. The backend runs
// OCR and returns recognized items without persisting anything; the caller
// turns the extraction into a draft for the user to correct and submit.
func (c *Client) UploadReceipt(ctx context.Context, filename string, file io.Reader) (*ExtractionResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("receipt", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-receipt", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, c.parseError(httpResp)
	}

	var resp ExtractionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &resp, nil
}

// ExpenseHistory fetches the audit history. Elevated roles fetch all
// users' records, others only their own.
func (c *Client) ExpenseHistory(ctx context.Context, allUsers bool) ([]HistoryEntry, error) {
	path := "/user-expense-history"
	if allUsers {
		path = "/all-expense-history"
	}

	var resp HistoryResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// ChangePassword changes the current user's password. On success the
// backend invalidates nothing server-side; the caller must clear the
// session and force re-authentication.
func (c *Client) ChangePassword(ctx context.Context, current, updated string) (*MessageResponse, error) {
	var resp MessageResponse
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: updated}
	if err := c.doJSON(ctx, http.MethodPost, "/change-password", req, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAccount deletes the current user's account.
func (c *Client) DeleteAccount(ctx context.Context) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/delete-account", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON performs a JSON request. body may be nil; out may be nil when the
// caller only cares about success.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, authenticated bool, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.parseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// parseError parses an error response from the backend. Authorization
// failures map to ErrUnauthorized so callers can route to login.
func (c *Client) parseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		body = nil
	}

	message := ""
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	} else if len(body) > 0 {
		message = string(body)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	}

	if message != "" {
		return fmt.Errorf("backend error (status %d): %s", resp.StatusCode, message)
	}
	return fmt.Errorf("backend error (status %d)", resp.StatusCode)
}

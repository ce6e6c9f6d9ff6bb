// Package client is a typed Go SDK for the BMU equipment system API.
// It mirrors the server contract endpoint for endpoint; all business
// rules are enforced server-side, the few local checks here only stop
// requests that the server is guaranteed to reject.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New builds a client rooted at baseURL (e.g. "http://localhost:5000").
// The session supplies the bearer token for authenticated calls.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
}

// SetHTTPClient overrides the underlying http.Client, mainly for tests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}
	return nil
}

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(result.Token); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListEquipment(ctx context.Context) ([]Equipment, error) {
	var items []Equipment
	if err := c.do(ctx, http.MethodGet, "/equipment", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error) {
	var created Equipment
	if err := c.do(ctx, http.MethodPost, "/equipment", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/equipment/%d", id), nil, nil)
}

func (c *Client) UpdateEquipmentStatus(ctx context.Context, id uint64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/equipment/%d/status", id), body, nil)
}

func (c *Client) UpdateEquipmentLocation(ctx context.Context, id uint64, location string) error {
	body := map[string]string{"location": location}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/equipment/%d/location", id), body, nil)
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/equipment/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// BindEquipment claims the equipment with the given asset code for the
// current user.
func (c *Client) BindEquipment(ctx context.Context, assetCode string) error {
	body := map[string]string{"asset_code": assetCode}
	return c.do(ctx, http.MethodPost, "/equipment/bind", body, nil)
}

func (c *Client) ActiveHistory(ctx context.Context) ([]HistoryItem, error) {
	var items []HistoryItem
	if err := c.do(ctx, http.MethodGet, "/equipment/history/active", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) PendingHistory(ctx context.Context) ([]HistoryItem, error) {
	var items []HistoryItem
	if err := c.do(ctx, http.MethodGet, "/equipment/history/pending", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PendingCount fetches the size of the approval queue.
func (c *Client) PendingCount(ctx context.Context) (int, error) {
	items, err := c.PendingHistory(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// SubmitBorrow files a borrow request for the equipment. The remark is
// mandatory; an empty one is rejected before any request is made.
func (c *Client) SubmitBorrow(ctx context.Context, equipmentID uint64, req BorrowRequest) error {
	if strings.TrimSpace(req.Remark) == "" {
		return fmt.Errorf("%w: remark", ErrMissingField)
	}
	if strings.TrimSpace(req.BorrowerName) == "" {
		req.BorrowerName = c.session.FullName()
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/equipment/history/%d/borrow", equipmentID), req, nil)
}

// SubmitReturn announces the return of a borrowed item. An unnamed
// receiver is an invalid transition and is rejected before any request
// is made.
func (c *Client) SubmitReturn(ctx context.Context, recordID uint64, receivedBy string) error {
	if strings.TrimSpace(receivedBy) == "" {
		return fmt.Errorf("%w: received_by", ErrMissingField)
	}
	body := map[string]string{"received_by": receivedBy}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/equipment/history/%d/return", recordID), body, nil)
}

func (c *Client) ApproveRequest(ctx context.Context, recordID uint64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/equipment/history/%d/approve", recordID), nil, nil)
}

func (c *Client) RejectRequest(ctx context.Context, recordID uint64, remark string) error {
	if strings.TrimSpace(remark) == "" {
		return fmt.Errorf("%w: remark", ErrMissingField)
	}
	body := map[string]string{"remark": remark}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/equipment/history/%d/reject", recordID), body, nil)
}

func (c *Client) BrokenReports(ctx context.Context) ([]RepairItem, error) {
	var items []RepairItem
	if err := c.do(ctx, http.MethodGet, "/equipment/broken", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ReportBroken(ctx context.Context, equipmentID uint64, problemDetail string) error {
	if strings.TrimSpace(problemDetail) == "" {
		return fmt.Errorf("%w: problem_detail", ErrMissingField)
	}
	body := map[string]interface{}{"equipment_id": equipmentID, "problem_detail": problemDetail}
	return c.do(ctx, http.MethodPost, "/equipment/broken", body, nil)
}

func (c *Client) ResolveRepair(ctx context.Context, reportID uint64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/equipment/broken/%d/resolve", reportID), nil, nil)
}

func (c *Client) VaultEntries(ctx context.Context) ([]VaultEntry, error) {
	var entries []VaultEntry
	if err := c.do(ctx, http.MethodGet, "/passwords", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CreateVaultEntry(ctx context.Context, req VaultEntryRequest) (*VaultEntry, error) {
	var created VaultEntry
	if err := c.do(ctx, http.MethodPost, "/passwords", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateVaultEntry(ctx context.Context, id uint64, req VaultEntryRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/passwords/%d", id), req, nil)
}

func (c *Client) DeleteVaultEntry(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/passwords/%d", id), nil, nil)
}

func (c *Client) EquipmentPasswords(ctx context.Context, equipmentID uint64) ([]EquipmentPassword, error) {
	var items []EquipmentPassword
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/equipment/%d/passwords", equipmentID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateEquipmentPassword(ctx context.Context, equipmentID uint64, password, note string) error {
	body := map[string]string{"password": password, "note": note}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/equipment/%d/passwords", equipmentID), body, nil)
}

func (c *Client) DeleteEquipmentPassword(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/equipment/passwords/%d", id), nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var created User
	if err := c.do(ctx, http.MethodPost, "/users", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

func (c *Client) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/equipment/dashboard-summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

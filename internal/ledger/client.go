// Package ledger talks to the Apps Script web app that owns the order sheet.
// Every call is a POST of {action, data}; every reply is a
// {success, data?, message?} envelope.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

// Error is a failed ledger call: transport trouble, a non-success envelope,
// or a payload that does not match the action's schema.
type Error struct {
	Action  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger %s: %s", e.Action, e.Message)
}

type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// call performs one RPC and returns the raw data payload.
func (c *Client) call(ctx context.Context, action string, data any) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]any{"action": action, "data": data})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Action: action, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &Error{Action: action, Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, body)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &Error{Action: action, Message: fmt.Sprintf("decode response: %v", err)}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &Error{Action: action, Message: msg}
	}
	return env.Data, nil
}

func decodeData[T any](action string, raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, &Error{Action: action, Message: "missing data in response"}
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, &Error{Action: action, Message: fmt.Sprintf("unexpected data shape: %v", err)}
	}
	return v, nil
}

// Orders fetches the records of the default sheet.
func (c *Client) Orders(ctx context.Context) ([]model.Record, error) {
	raw, err := c.call(ctx, "getOrders", map[string]any{})
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.Record]("getOrders", raw)
}

// OrdersFromSheet fetches the records of one named tab.
func (c *Client) OrdersFromSheet(ctx context.Context, sheet string) ([]model.Record, error) {
	raw, err := c.call(ctx, "getOrdersFromSheet", map[string]any{"sheetName": sheet})
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.Record]("getOrdersFromSheet", raw)
}

// RawSheetData fetches a tab's physical rows, continuation rows included.
func (c *Client) RawSheetData(ctx context.Context, sheet string) ([]model.RawRow, error) {
	raw, err := c.call(ctx, "getRawSheetData", map[string]any{"sheetName": sheet})
	if err != nil {
		return nil, err
	}
	return decodeData[[]model.RawRow]("getRawSheetData", raw)
}

// SyncOrders appends records to the target sheet.
func (c *Client) SyncOrders(ctx context.Context, records []model.Record, target string) error {
	_, err := c.call(ctx, "syncToSheets", map[string]any{"orders": records, "targetSheetName": target})
	return err
}

// UpdateOrderStatusAndMove relocates every row of an order to the tab
// matching the new status and refreshes its updated-at stamp.
func (c *Client) UpdateOrderStatusAndMove(ctx context.Context, orderID, status string) error {
	_, err := c.call(ctx, "updateOrderStatusAndMove", map[string]any{"orderId": orderID, "newStatus": status})
	return err
}

// AvailableSheets lists the sheet names the ledger exposes.
func (c *Client) AvailableSheets(ctx context.Context) ([]string, error) {
	raw, err := c.call(ctx, "getAvailableSheets", map[string]any{})
	if err != nil {
		return nil, err
	}
	return decodeData[[]string]("getAvailableSheets", raw)
}

package model

import (
	"encoding/json"
	"strconv"
)

// Lifecycle statuses. Each one maps to a sheet tab of the same name.
const (
	StatusPending   = "Pending"
	StatusReady     = "Ready"
	StatusDelivered = "Delivered"
	StatusCompleted = "Completed"
)

// Tabs is the fixed tab scan order used by summaries and cross-tab search.
var Tabs = []string{StatusPending, StatusReady, StatusDelivered, StatusCompleted}

// SizeQuantity is one extracted size/quantity pair. Both fields are kept as
// free text, exactly as they appeared in the message.
type SizeQuantity struct {
	Size     string `json:"size"`
	Quantity string `json:"quantity"`
}

// OrderDraft is the transient result of extracting an order from a message,
// before an id and status are assigned and the rows are persisted.
type OrderDraft struct {
	ClientName     string         `json:"client_name"`
	Specifications string         `json:"specifications"`
	Pairs          []SizeQuantity `json:"size_quantity_pairs"`
	ExternalID     string         `json:"external_id,omitempty"`
}

// LineItem is one glass size within an order.
type LineItem struct {
	Size     string `json:"sizes"`
	Quantity string `json:"quantity"`
}

// Order is a reconstructed multi-line order.
type Order struct {
	ID             string     `json:"id"`
	ClientName     string     `json:"clientName"`
	Specifications string     `json:"specifications"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes"`
	CreatedAt      string     `json:"createdAt"`
	UpdatedAt      string     `json:"updatedAt"`
	SourceTab      string     `json:"source_tab,omitempty"`
	Items          []LineItem `json:"items"`
}

// Record is one flat ledger row as the Apps Script service returns it from
// getOrders/getOrdersFromSheet and as syncToSheets expects it. A multi-item
// order spans several records sharing the same id.
type Record struct {
	ID             string `json:"id"`
	ClientName     string `json:"clientName"`
	Specifications string `json:"specifications"`
	Sizes          string `json:"sizes"`
	Quantity       string `json:"quantity"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// RawRow is one physical sheet row as a plain cell slice:
// [id, client, specs, size, quantity, status, notes, createdAt, updatedAt, ...].
// A row with an empty id cell is a continuation of the previous order.
type RawRow []string

// UnmarshalJSON converts a row of loosely-typed sheet cells (strings, bare
// numbers, booleans, nulls) into strings at the boundary.
func (r *RawRow) UnmarshalJSON(b []byte) error {
	var cells []any
	if err := json.Unmarshal(b, &cells); err != nil {
		return err
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case nil:
			// empty cell
		case string:
			out[i] = v
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[i] = strconv.FormatBool(v)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				return err
			}
			out[i] = string(raw)
		}
	}
	*r = out
	return nil
}

// Cell returns the i-th cell or "" when the row is shorter.
func (r RawRow) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

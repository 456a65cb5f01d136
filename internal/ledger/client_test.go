package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

type rpcRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func TestOrdersFromSheet(t *testing.T) {
	var got rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []model.Record{
				{ID: "111", ClientName: "Acme", Sizes: "10x10", Quantity: "1"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	records, err := c.OrdersFromSheet(context.Background(), "Ready")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "111", records[0].ID)
	assert.Equal(t, "getOrdersFromSheet", got.Action)
	assert.JSONEq(t, `{"sheetName":"Ready"}`, string(got.Data))
}

func TestRawSheetData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Sheet cells come back loosely typed: ids and quantities can be
		// bare numbers, blanks can be null.
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []any{
				[]any{"ID", "Client Name"},
				[]any{111, "Acme", "6mm", "10x10", 1},
				[]any{nil, "", "", "20x20", 2},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	rows, err := c.RawSheetData(context.Background(), "Pending")

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "111", rows[1].Cell(0))
	assert.Equal(t, "1", rows[1].Cell(4))
	assert.Equal(t, "", rows[2].Cell(0))
	assert.Equal(t, "20x20", rows[2].Cell(3))
}

func TestUpdateOrderStatusAndMove(t *testing.T) {
	var got rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]string{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.UpdateOrderStatusAndMove(context.Background(), "555555", "Delivered")

	require.NoError(t, err)
	assert.Equal(t, "updateOrderStatusAndMove", got.Action)
	assert.JSONEq(t, `{"orderId":"555555","newStatus":"Delivered"}`, string(got.Data))
}

func TestSyncOrders(t *testing.T) {
	var got rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.SyncOrders(context.Background(), []model.Record{{ID: "1", ClientName: "A"}}, "Pending")

	require.NoError(t, err)
	assert.Equal(t, "syncToSheets", got.Action)

	var data struct {
		Orders []model.Record `json:"orders"`
		Target string         `json:"targetSheetName"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &data))
	assert.Equal(t, "Pending", data.Target)
	require.Len(t, data.Orders, 1)
	assert.Equal(t, "1", data.Orders[0].ID)
}

func TestNonSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "sheet not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.OrdersFromSheet(context.Background(), "Nope")

	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "getOrdersFromSheet", lerr.Action)
	assert.Contains(t, lerr.Message, "sheet not found")
}

func TestUnexpectedDataShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": "not-a-list"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Orders(context.Background())

	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Contains(t, lerr.Message, "unexpected data shape")
}

func TestUnexpectedHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.AvailableSheets(context.Background())

	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Contains(t, lerr.Message, "502")
}

func TestCallTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 30*time.Millisecond)
	_, err := c.Orders(context.Background())

	var lerr *Error
	require.ErrorAs(t, err, &lerr)
}

func TestAvailableSheets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []string{"Pending", "Ready", "Delivered", "Completed"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	sheets, err := c.AvailableSheets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Pending", "Ready", "Delivered", "Completed"}, sheets)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

// Ledger is the remote sheet service the bot reads and writes through.
type Ledger interface {
	Orders(ctx context.Context) ([]model.Record, error)
	OrdersFromSheet(ctx context.Context, sheet string) ([]model.Record, error)
	RawSheetData(ctx context.Context, sheet string) ([]model.RawRow, error)
	SyncOrders(ctx context.Context, records []model.Record, target string) error
	UpdateOrderStatusAndMove(ctx context.Context, orderID, status string) error
	AvailableSheets(ctx context.Context) ([]string, error)
}

const timeLayout = "2006-01-02 15:04:05"

type OrderService struct {
	ledger Ledger
}

func NewOrderService(ledger Ledger) *OrderService {
	return &OrderService{ledger: ledger}
}

// Submit persists a draft as one ledger record per size/quantity pair, all
// sharing the order id, on the Pending tab. The supplied external id is used
// when present; otherwise a 6-digit id is generated. Returns the id used.
func (s *OrderService) Submit(ctx context.Context, draft model.OrderDraft) (string, error) {
	orderID := draft.ExternalID
	if orderID == "" {
		orderID = fmt.Sprintf("%d", 100000+rand.Intn(900000))
	}
	now := time.Now().Format(timeLayout)

	base := model.Record{
		ID:             orderID,
		ClientName:     draft.ClientName,
		Specifications: draft.Specifications,
		Status:         model.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var records []model.Record
	if len(draft.Pairs) == 0 {
		records = append(records, base)
	} else {
		for _, pair := range draft.Pairs {
			rec := base
			rec.Sizes = pair.Size
			rec.Quantity = pair.Quantity
			records = append(records, rec)
		}
	}

	if err := s.ledger.SyncOrders(ctx, records, model.StatusPending); err != nil {
		return "", fmt.Errorf("sync order %s: %w", orderID, err)
	}
	return orderID, nil
}

// TabOrders reconstructs the orders of one tab from its raw rows. A nil
// result means the tab holds no orders.
func (s *OrderService) TabOrders(ctx context.Context, tab string) ([]model.Order, error) {
	records, err := s.ledger.OrdersFromSheet(ctx, tab)
	if err != nil {
		return nil, fmt.Errorf("fetch %s records: %w", tab, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	raw, err := s.ledger.RawSheetData(ctx, tab)
	if err != nil {
		slog.Warn("raw sheet data unavailable", "tab", tab, "error", err)
		raw = nil
	}
	return ReconcileRows(raw), nil
}

// TabCount is one tab's distinct-order count in the all-tabs summary.
type TabCount struct {
	Tab   string
	Count int
}

// AllTabs counts distinct order ids per tab, in fixed tab order.
func (s *OrderService) AllTabs(ctx context.Context) ([]TabCount, error) {
	counts := make([]TabCount, 0, len(model.Tabs))
	for _, tab := range model.Tabs {
		records, err := s.ledger.OrdersFromSheet(ctx, tab)
		if err != nil {
			return nil, fmt.Errorf("fetch %s records: %w", tab, err)
		}
		seen := make(map[string]struct{})
		for _, rec := range records {
			if rec.ID != "" {
				seen[rec.ID] = struct{}{}
			}
		}
		counts = append(counts, TabCount{Tab: tab, Count: len(seen)})
	}
	return counts, nil
}

// Query lists the default sheet's records, optionally filtered by a
// case-insensitive client-name substring.
func (s *OrderService) Query(ctx context.Context, clientFilter string) ([]model.Record, error) {
	records, err := s.ledger.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	if clientFilter == "" {
		return records, nil
	}

	needle := strings.ToLower(clientFilter)
	var filtered []model.Record
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.ClientName), needle) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

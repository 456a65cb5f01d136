package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

// Search matches orders across all tabs. An order matches when the term is a
// case-insensitive substring of its id, client name or specifications. Orders
// found in several tabs are merged by id; the first tab in scan order becomes
// the order's SourceTab. Continuation rows of matched ids contribute extra
// line items under the usual dedup rule. An empty result is not an error.
func (s *OrderService) Search(ctx context.Context, term string) ([]model.Order, error) {
	needle := strings.ToLower(term)

	var ids []string
	byID := make(map[string]*model.Order)
	rawByTab := make(map[string][]model.RawRow)

	for _, tab := range model.Tabs {
		records, err := s.ledger.OrdersFromSheet(ctx, tab)
		if err != nil {
			return nil, fmt.Errorf("fetch %s records: %w", tab, err)
		}

		// Continuation rows live only in the raw data; a tab without it
		// still contributes its primary rows.
		raw, err := s.ledger.RawSheetData(ctx, tab)
		if err != nil {
			slog.Warn("raw sheet data unavailable", "tab", tab, "error", err)
			raw = nil
		}
		rawByTab[tab] = raw

		for _, rec := range records {
			if rec.ID == "" {
				continue
			}
			searchable := strings.ToLower(rec.ID + " " + rec.ClientName + " " + rec.Specifications)
			if !strings.Contains(searchable, needle) {
				continue
			}
			o, seen := byID[rec.ID]
			if !seen {
				o = &model.Order{
					ID:             rec.ID,
					ClientName:     rec.ClientName,
					Specifications: rec.Specifications,
					Status:         rec.Status,
					Notes:          rec.Notes,
					CreatedAt:      rec.CreatedAt,
					UpdatedAt:      rec.UpdatedAt,
					SourceTab:      tab,
				}
				byID[rec.ID] = o
				ids = append(ids, rec.ID)
			}
			appendItem(o, rec.Sizes, rec.Quantity)
		}
	}

	// Second pass: pull continuation items for the ids that matched.
	for _, tab := range model.Tabs {
		currentID := ""
		for _, row := range rawByTab[tab] {
			if isHeaderRow(row) {
				continue
			}
			if id := row.Cell(colID); id != "" {
				currentID = id
				continue
			}
			if o, ok := byID[currentID]; ok {
				appendItem(o, row.Cell(colSize), row.Cell(colQuantity))
			}
		}
	}

	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, *byID[id])
	}
	return orders, nil
}

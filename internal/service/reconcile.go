package service

import (
	"strings"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

// Raw sheet column positions.
const (
	colID = iota
	colClient
	colSpecs
	colSize
	colQuantity
	colStatus
	colNotes
	colCreatedAt
	colUpdatedAt
)

// ReconcileRows folds one tab's physical rows into orders, in the order their
// ids first appear. A row with an id starts or continues the order with that
// id; a row with a blank id contributes a line item to the most recently
// started order. Continuation rows before the first id-bearing row are
// dropped. Single left-to-right pass, no backtracking.
func ReconcileRows(rows []model.RawRow) []model.Order {
	var ids []string
	byID := make(map[string]*model.Order)

	currentID := ""
	for _, row := range rows {
		if isHeaderRow(row) {
			continue
		}

		if id := row.Cell(colID); id != "" {
			currentID = id
			if _, seen := byID[id]; !seen {
				ids = append(ids, id)
				byID[id] = &model.Order{
					ID:             id,
					ClientName:     row.Cell(colClient),
					Specifications: row.Cell(colSpecs),
					Status:         row.Cell(colStatus),
					Notes:          row.Cell(colNotes),
					CreatedAt:      row.Cell(colCreatedAt),
					UpdatedAt:      row.Cell(colUpdatedAt),
				}
			}
		}
		if currentID == "" {
			continue
		}
		appendItem(byID[currentID], row.Cell(colSize), row.Cell(colQuantity))
	}

	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, *byID[id])
	}
	return orders
}

// isHeaderRow recognizes the sheet's column-title row.
func isHeaderRow(row model.RawRow) bool {
	return len(row) == 0 || strings.EqualFold(row.Cell(colID), "ID")
}

// appendItem adds a line item unless the order already carries the same
// normalized size. First occurrence wins, even when quantities differ.
func appendItem(o *model.Order, size, quantity string) {
	if size == "" || quantity == "" {
		return
	}
	norm := normalizeSize(size)
	for _, item := range o.Items {
		if normalizeSize(item.Size) == norm {
			return
		}
	}
	o.Items = append(o.Items, model.LineItem{Size: size, Quantity: quantity})
}

func normalizeSize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package service

import (
	"context"
	"errors"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

// fakeLedger is an in-memory stand-in for the Apps Script service.
type fakeLedger struct {
	defaultRecords []model.Record
	recordsByTab   map[string][]model.Record
	rawByTab       map[string][]model.RawRow
	sheets         []string

	syncedRecords []model.Record
	syncedTarget  string
	updatedID     string
	updatedStatus string

	failAll bool
	failRaw bool
}

var errLedgerDown = errors.New("ledger down")

func (f *fakeLedger) Orders(ctx context.Context) ([]model.Record, error) {
	if f.failAll {
		return nil, errLedgerDown
	}
	return f.defaultRecords, nil
}

func (f *fakeLedger) OrdersFromSheet(ctx context.Context, sheet string) ([]model.Record, error) {
	if f.failAll {
		return nil, errLedgerDown
	}
	return f.recordsByTab[sheet], nil
}

func (f *fakeLedger) RawSheetData(ctx context.Context, sheet string) ([]model.RawRow, error) {
	if f.failAll || f.failRaw {
		return nil, errLedgerDown
	}
	return f.rawByTab[sheet], nil
}

func (f *fakeLedger) SyncOrders(ctx context.Context, records []model.Record, target string) error {
	if f.failAll {
		return errLedgerDown
	}
	f.syncedRecords = append(f.syncedRecords, records...)
	f.syncedTarget = target
	return nil
}

func (f *fakeLedger) UpdateOrderStatusAndMove(ctx context.Context, orderID, status string) error {
	if f.failAll {
		return errLedgerDown
	}
	f.updatedID = orderID
	f.updatedStatus = status
	return nil
}

func (f *fakeLedger) AvailableSheets(ctx context.Context) ([]string, error) {
	if f.failAll {
		return nil, errLedgerDown
	}
	return f.sheets, nil
}

package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/model"
)

type probeLedger struct {
	fail bool
}

func (p *probeLedger) Orders(ctx context.Context) ([]model.Record, error) { return nil, nil }
func (p *probeLedger) OrdersFromSheet(ctx context.Context, sheet string) ([]model.Record, error) {
	return nil, nil
}
func (p *probeLedger) RawSheetData(ctx context.Context, sheet string) ([]model.RawRow, error) {
	return nil, nil
}
func (p *probeLedger) SyncOrders(ctx context.Context, records []model.Record, target string) error {
	return nil
}
func (p *probeLedger) UpdateOrderStatusAndMove(ctx context.Context, orderID, status string) error {
	return nil
}
func (p *probeLedger) AvailableSheets(ctx context.Context) ([]string, error) {
	if p.fail {
		return nil, errors.New("unreachable")
	}
	return model.Tabs, nil
}

// Start probes once before entering its tick loop, so a cancelled context
// gives exactly one probe.
func TestProberRecordsOutcome(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	led := &probeLedger{fail: true}
	p := NewProber(led)
	p.Start(ctx)
	assert.False(t, p.Healthy())

	led.fail = false
	p.Start(ctx)
	assert.True(t, p.Healthy())
}

package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dogshit1234/whatsapp-glass-bot-v2/internal/service"
)

// Prober periodically checks that the ledger answers, so /api/health can
// report connectivity without calling out on every probe request. It holds
// no order state.
type Prober struct {
	ledger   service.Ledger
	interval time.Duration
	up       atomic.Bool
}

func NewProber(ledger service.Ledger) *Prober {
	p := &Prober{ledger: ledger, interval: 60 * time.Second}
	p.up.Store(true)
	return p
}

// Healthy reports the outcome of the most recent probe.
func (p *Prober) Healthy() bool {
	return p.up.Load()
}

func (p *Prober) Start(ctx context.Context) {
	slog.Info("starting ledger prober", "interval", p.interval)
	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("ledger prober stopped")
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *Prober) probe(ctx context.Context) {
	sheets, err := p.ledger.AvailableSheets(ctx)
	was := p.up.Load()
	if err != nil {
		p.up.Store(false)
		if was {
			slog.Warn("ledger unreachable", "error", err)
		}
		return
	}
	p.up.Store(true)
	if !was {
		slog.Info("ledger reachable again", "sheets", len(sheets))
	}
}

package presence

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Fetcher is what the poller needs from the presence client.
type Fetcher interface {
	FetchOnline(ctx context.Context) (Snapshot, error)
}

// Poller refreshes the presence snapshot wholesale on a fixed interval.
// On fetch failure the previous snapshot is retained, so a flaky realtime
// service does not flicker every driver to offline.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration
	logger   *zap.Logger

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewPoller(fetcher Fetcher, interval time.Duration, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		logger:   logger,
		snapshot: Snapshot{},
	}
}

// Run polls until ctx is cancelled: one immediate fetch, then one per tick.
// The caller owns the goroutine; cancelling the server context stops the
// timer, no dangling tickers.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	snap, err := p.fetcher.FetchOnline(ctx)
	if err != nil {
		p.logger.Warn("presence refresh failed, keeping last snapshot", zap.Error(err))
		return
	}
	p.mu.Lock()
	p.snapshot = snap
	p.mu.Unlock()
}

// Snapshot returns the latest snapshot. The map is replaced wholesale on
// every refresh and never mutated in place, so sharing it read-only is safe.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

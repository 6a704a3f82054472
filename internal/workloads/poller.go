package workloads

import (
	"context"
	"time"

	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/logging"
)

// DefaultPollInterval is used when a poller is given a non-positive interval
const DefaultPollInterval = 10 * time.Second

// Poller syncs workloads on an interval and on demand. All publishing
// happens on the poller goroutine.
type Poller struct {
	fetcher   k8s.Fetcher
	actions   *Actions
	namespace string
	interval  time.Duration
	trigger   chan struct{}
}

// NewPoller creates a poller. It does nothing until Start is called.
func NewPoller(fetcher k8s.Fetcher, actions *Actions, namespace string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		fetcher:   fetcher,
		actions:   actions,
		namespace: namespace,
		interval:  interval,
		trigger:   make(chan struct{}, 1),
	}
}

// Start syncs once, then keeps syncing in the background until ctx is done.
// The returned channel is closed when the background loop exits.
func (p *Poller) Start(ctx context.Context) <-chan struct{} {
	p.sync(ctx)

	done := make(chan struct{})
	ticker := time.NewTicker(p.interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.sync(ctx)
			case <-p.trigger:
				logging.Component("poller").Info("manual workloads sync triggered")
				p.sync(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return done
}

// Trigger requests a sync. It returns false when one is already pending.
func (p *Poller) Trigger() bool {
	select {
	case p.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

func (p *Poller) sync(ctx context.Context) {
	if err := Sync(ctx, p.fetcher, p.actions, p.namespace); err != nil {
		logging.Component("poller").Error("workloads sync incomplete", "namespace", p.namespace, "error", err)
	}
}

// SPDX-License-Identifier: Apache-2.0

package connectivity

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/PsyChonek/spajzka-client/internal/adapter"
	"github.com/PsyChonek/spajzka-client/internal/logger"
)

// Pinger probes the backend. A nil error or any error other than
// adapter.ErrUnreachable counts as online: an HTTP error status still proves
// a server answered.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReconnectPublisher receives the offline-to-online edge.
type ReconnectPublisher interface {
	PublishReconnected() error
}

// Monitor probes the backend on an interval and feeds the verdict into an
// Oracle. On every offline-to-online transition it publishes a reconnect
// event so pending changes get replayed.
type Monitor struct {
	pinger Pinger
	oracle *Oracle
	bus    ReconnectPublisher
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates a Monitor that is idle until Start is called.
func NewMonitor(p Pinger, oracle *Oracle, bus ReconnectPublisher, log *logger.Logger) *Monitor {
	return &Monitor{pinger: p, oracle: oracle, bus: bus, logger: log}
}

// Start stops any previously running probe loop, performs one synchronous
// probe so callers see a fresh verdict as soon as Start returns, then launches
// a background goroutine probing every interval. If interval is zero or
// negative it defaults to 30 seconds. The goroutine exits when ctx is
// cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	m.probe(jobCtx)

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				m.probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until its goroutine has fully
// exited. Safe to call when the monitor is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *Monitor) probe(ctx context.Context) {
	err := m.pinger.Ping(ctx)
	online := err == nil || !errors.Is(err, adapter.ErrUnreachable)

	if reconnected := m.oracle.SetOnline(online); reconnected {
		m.logger.Info().Msg("backend reachable again")
		if pubErr := m.bus.PublishReconnected(); pubErr != nil {
			m.logger.Err(pubErr).Msg("failed to publish reconnect event")
		}
	} else if !online {
		m.logger.Debug().Err(err).Msg("backend unreachable")
	}
}

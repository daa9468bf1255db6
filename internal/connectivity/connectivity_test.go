// SPDX-License-Identifier: Apache-2.0

package connectivity

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PsyChonek/spajzka-client/internal/adapter"
	"github.com/PsyChonek/spajzka-client/internal/logger"
)

// scriptedPinger returns the configured errors in order, repeating the last
// one once the script is exhausted.
type scriptedPinger struct {
	mu     sync.Mutex
	script []error
	calls  int
}

func (p *scriptedPinger) Ping(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.calls
	p.calls++
	if i >= len(p.script) {
		i = len(p.script) - 1
	}
	return p.script[i]
}

func (p *scriptedPinger) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type recordingPublisher struct {
	mu     sync.Mutex
	events int
}

func (r *recordingPublisher) PublishReconnected() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events++
	return nil
}

func (r *recordingPublisher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events
}

// ── Oracle ──────────────────────────────────────────────────────────────────

func TestOracle_StartsOffline(t *testing.T) {
	oracle := NewOracle()
	assert.False(t, oracle.Online())
}

func TestOracle_SetOnline(t *testing.T) {
	tests := []struct {
		name            string
		initial         bool
		next            bool
		wantReconnected bool
	}{
		{name: "offline to online", initial: false, next: true, wantReconnected: true},
		{name: "online stays online", initial: true, next: true, wantReconnected: false},
		{name: "online to offline", initial: true, next: false, wantReconnected: false},
		{name: "offline stays offline", initial: false, next: false, wantReconnected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := NewOracle()
			oracle.SetOnline(tt.initial)

			got := oracle.SetOnline(tt.next)

			assert.Equal(t, tt.wantReconnected, got)
			assert.Equal(t, tt.next, oracle.Online())
		})
	}
}

// ── Monitor ─────────────────────────────────────────────────────────────────

func TestMonitor_FirstProbeIsSynchronous(t *testing.T) {
	oracle := NewOracle()
	bus := &recordingPublisher{}
	monitor := NewMonitor(&scriptedPinger{script: []error{nil}}, oracle, bus, logger.Nop())

	monitor.Start(context.Background(), time.Hour)
	defer monitor.Stop()

	// Start probed before returning, so the verdict is already online.
	assert.True(t, oracle.Online())
	assert.Equal(t, 1, bus.count())
}

func TestMonitor_ErrorStatusStillCountsAsOnline(t *testing.T) {
	oracle := NewOracle()
	bus := &recordingPublisher{}
	p := &scriptedPinger{script: []error{fmt.Errorf("ping: %w", adapter.ErrNotFound)}}
	monitor := NewMonitor(p, oracle, bus, logger.Nop())

	monitor.Start(context.Background(), time.Hour)
	defer monitor.Stop()

	assert.True(t, oracle.Online())
}

func TestMonitor_UnreachableGoesOffline(t *testing.T) {
	oracle := NewOracle()
	bus := &recordingPublisher{}
	p := &scriptedPinger{script: []error{fmt.Errorf("%w: connection refused", adapter.ErrUnreachable)}}
	monitor := NewMonitor(p, oracle, bus, logger.Nop())

	monitor.Start(context.Background(), time.Hour)
	defer monitor.Stop()

	assert.False(t, oracle.Online())
	assert.Equal(t, 0, bus.count())
}

func TestMonitor_PublishesReconnectOnEdgeOnly(t *testing.T) {
	oracle := NewOracle()
	bus := &recordingPublisher{}
	unreachable := fmt.Errorf("%w: connection refused", adapter.ErrUnreachable)
	p := &scriptedPinger{script: []error{unreachable, unreachable, nil, nil, nil}}
	monitor := NewMonitor(p, oracle, bus, logger.Nop())

	monitor.Start(context.Background(), 20*time.Millisecond)
	defer monitor.Stop()

	require.Eventually(t, func() bool { return oracle.Online() }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return p.callCount() >= 5 }, 2*time.Second, 10*time.Millisecond)

	// one edge, repeated online probes do not republish
	assert.Equal(t, 1, bus.count())
}

func TestMonitor_StopHaltsProbing(t *testing.T) {
	oracle := NewOracle()
	bus := &recordingPublisher{}
	p := &scriptedPinger{script: []error{nil}}
	monitor := NewMonitor(p, oracle, bus, logger.Nop())

	monitor.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return p.callCount() >= 2 }, 2*time.Second, 5*time.Millisecond)
	monitor.Stop()

	calls := p.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, p.callCount())
}

func TestMonitor_StopWithoutStartIsSafe(t *testing.T) {
	monitor := NewMonitor(&scriptedPinger{script: []error{nil}}, NewOracle(), &recordingPublisher{}, logger.Nop())

	assert.NotPanics(t, func() { monitor.Stop() })
}

func TestMonitor_ContextCancelHaltsProbing(t *testing.T) {
	oracle := NewOracle()
	p := &scriptedPinger{script: []error{nil}}
	monitor := NewMonitor(p, oracle, &recordingPublisher{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	monitor.Start(ctx, 10*time.Millisecond)
	require.Eventually(t, func() bool { return p.callCount() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	// ticker loop observes ctx and exits
	require.Eventually(t, func() bool {
		before := p.callCount()
		time.Sleep(40 * time.Millisecond)
		return p.callCount() == before
	}, 2*time.Second, 10*time.Millisecond)

	monitor.Stop()
}

// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/PsyChonek/spajzka-client/internal/config"
	"github.com/PsyChonek/spajzka-client/internal/connectivity"
	"github.com/PsyChonek/spajzka-client/internal/events"
	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/internal/service"
	"github.com/PsyChonek/spajzka-client/internal/store"
)

// App ties the client runtime together: it subscribes the resource stores to
// the event bus, runs the connectivity monitor, and owns shutdown of the
// shared infrastructure.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	monitor  *connectivity.Monitor
	bus      *events.Bus
	workers  config.Workers
	logger   *logger.Logger
}

// NewApp assembles the application from its already-constructed parts.
func NewApp(
	services *service.ClientServices,
	storages *store.ClientStorages,
	monitor *connectivity.Monitor,
	bus *events.Bus,
	workers config.Workers,
	log *logger.Logger,
) (*App, error) {
	if services == nil || storages == nil || monitor == nil || bus == nil {
		return nil, fmt.Errorf("missing application dependency")
	}

	return &App{
		services: services,
		storages: storages,
		monitor:  monitor,
		bus:      bus,
		workers:  workers,
		logger:   log,
	}, nil
}

// groupScoped returns the stores whose collections depend on the active group.
func (a *App) groupScoped() []Syncable {
	return []Syncable{
		a.services.Items,
		a.services.Pantry,
		a.services.Shopping,
		a.services.Recipes,
	}
}

// allStores returns every store participating in resync and replay, the group
// service included.
func (a *App) allStores() []Syncable {
	return append(a.groupScoped(), a.services.Groups)
}

// Run wires event subscriptions, starts the connectivity monitor, performs
// the initial resync, and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// active group switched: the per-group stores refetch their collections
	err := a.bus.SubscribeGroupChanged(runCtx, func(groupID string) {
		a.logger.Debug().Str("groupID", groupID).Msg("refetching group collections")
		for _, s := range a.groupScoped() {
			s.FetchAll(runCtx)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe to group changes: %w", err)
	}

	// connectivity regained: replay everything queued while offline
	err = a.bus.SubscribeReconnected(runCtx, func() {
		a.logger.Debug().Msg("replaying pending changes")
		for _, s := range a.allStores() {
			s.SyncPendingChanges(runCtx)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe to reconnect events: %w", err)
	}

	a.monitor.Start(runCtx, a.workers.ProbeInterval)
	defer a.monitor.Stop()

	for _, s := range a.allStores() {
		s.FetchAll(runCtx)
	}

	a.logger.Info().Msg("client running")
	<-ctx.Done()
	a.logger.Info().Msg("shutting down")

	return nil
}

// Close releases the shared infrastructure. Call after Run returns.
func (a *App) Close() error {
	if err := a.bus.Close(); err != nil {
		return fmt.Errorf("close events bus: %w", err)
	}
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close storages: %w", err)
	}
	return nil
}

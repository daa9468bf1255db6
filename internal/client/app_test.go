// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PsyChonek/spajzka-client/internal/adapter"
	"github.com/PsyChonek/spajzka-client/internal/config"
	"github.com/PsyChonek/spajzka-client/internal/connectivity"
	"github.com/PsyChonek/spajzka-client/internal/events"
	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/internal/service"
	"github.com/PsyChonek/spajzka-client/internal/store"
	"github.com/PsyChonek/spajzka-client/models"
)

// fakeBackend is a minimal Spajzka server tracking collection fetches.
type fakeBackend struct {
	groupLists  atomic.Int64
	pantryLists atomic.Int64
	itemLists   atomic.Int64
}

func (b *fakeBackend) router() http.Handler {
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	r := chi.NewRouter()
	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/group", func(w http.ResponseWriter, _ *http.Request) {
		b.groupLists.Add(1)
		writeJSON(w, []models.Group{{Meta: models.Meta{ID: "g1"}, Name: "Home"}})
	})
	r.Get("/api/item", func(w http.ResponseWriter, _ *http.Request) {
		b.itemLists.Add(1)
		writeJSON(w, []models.Item{})
	})
	r.Get("/api/group/{groupID}/pantry", func(w http.ResponseWriter, _ *http.Request) {
		b.pantryLists.Add(1)
		writeJSON(w, []models.PantryEntry{})
	})
	r.Get("/api/group/{groupID}/shopping", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []models.ShoppingEntry{})
	})
	r.Get("/api/group/{groupID}/recipe", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []models.Recipe{})
	})
	return r
}

func newTestApp(t *testing.T, serverURL string) (*App, *service.ClientServices) {
	t.Helper()
	log := logger.Nop()

	httpClient, err := adapter.NewClient(
		config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second},
		config.App{DeviceID: "test-device"},
		log,
	)
	require.NoError(t, err)

	storages, err := store.NewClientStorages(
		context.Background(),
		config.Storage{Snapshots: config.Snapshots{Dir: t.TempDir()}},
		log,
	)
	require.NoError(t, err)

	bus := events.NewBus(log)
	oracle := connectivity.NewOracle()
	monitor := connectivity.NewMonitor(httpClient, oracle, bus, log)
	services := service.NewClientServices(httpClient, storages, oracle, bus, log)

	app, err := NewApp(services, storages, monitor, bus, config.Workers{ProbeInterval: 50 * time.Millisecond}, log)
	require.NoError(t, err)
	return app, services
}

func TestApp_RunSyncsOnStartup(t *testing.T) {
	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	app, services := newTestApp(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	// startup resync pulls the group list and selects the first group, which
	// in turn triggers the per-group collection fetches
	require.Eventually(t, func() bool {
		return backend.groupLists.Load() >= 1 && backend.pantryLists.Load() >= 1 && backend.itemLists.Load() >= 1
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, "g1", services.Groups.ActiveGroupID())
	require.Len(t, services.Groups.List(), 1)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not shut down")
	}
	require.NoError(t, app.Close())
}

func TestApp_GroupSwitchRefetchesCollections(t *testing.T) {
	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	app, services := newTestApp(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		return services.Groups.ActiveGroupID() == "g1"
	}, 5*time.Second, 20*time.Millisecond)
	baseline := backend.pantryLists.Load()

	services.Groups.Switch("g2")

	require.Eventually(t, func() bool {
		return backend.pantryLists.Load() > baseline
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not shut down")
	}
	require.NoError(t, app.Close())
}

func TestNewApp_MissingDependency(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil, config.Workers{}, logger.Nop())
	require.Error(t, err)
}

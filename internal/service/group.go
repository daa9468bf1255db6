// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"

	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/models"
)

// GroupService owns the active household group. It wraps the groups sync
// store and publishes a group-changed event on every switch so the per-group
// stores refetch their collections.
type GroupService struct {
	store  *SyncStore[models.Group, *models.Group]
	bus    GroupEventPublisher
	logger *logger.Logger

	mu     sync.RWMutex
	active string
}

// NewGroupService wraps the groups store.
func NewGroupService(groups *SyncStore[models.Group, *models.Group], bus GroupEventPublisher, log *logger.Logger) *GroupService {
	return &GroupService{store: groups, bus: bus, logger: log}
}

// ActiveGroupID returns the currently selected group id, empty when none is
// selected yet. Satisfies [GroupProvider].
func (g *GroupService) ActiveGroupID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.active
}

// Switch selects the given group as the active context and announces the
// change. No-op when the group is already active.
func (g *GroupService) Switch(groupID string) {
	g.mu.Lock()
	if g.active == groupID {
		g.mu.Unlock()
		return
	}
	g.active = groupID
	g.mu.Unlock()

	g.logger.Info().Str("groupID", groupID).Msg("active group changed")
	if err := g.bus.PublishGroupChanged(groupID); err != nil {
		g.logger.Err(err).Str("groupID", groupID).Msg("failed to publish group change")
	}
}

// List returns the known groups from the local replica.
func (g *GroupService) List() []models.Group {
	return g.store.List()
}

// Add creates a new group through the underlying sync store and selects it
// when no group is active yet.
func (g *GroupService) Add(ctx context.Context, group models.Group) {
	g.store.Add(ctx, group)

	if g.ActiveGroupID() != "" {
		return
	}
	if known := g.store.List(); len(known) > 0 {
		g.Switch(known[len(known)-1].ID)
	}
}

// Update merges partial fields into the stored group.
func (g *GroupService) Update(ctx context.Context, id string, partial models.Group) {
	g.store.Update(ctx, id, partial)
}

// Delete removes the group. Deleting the active group clears the selection.
func (g *GroupService) Delete(ctx context.Context, id string) {
	g.store.Delete(ctx, id)

	g.mu.Lock()
	if g.active == id {
		g.active = ""
	}
	g.mu.Unlock()
}

// FetchAll resyncs the group collection from the server. When the active
// group vanished from the server's set the selection falls back to the first
// remaining group.
func (g *GroupService) FetchAll(ctx context.Context) {
	g.store.FetchAll(ctx)

	active := g.ActiveGroupID()
	if active != "" {
		if _, ok := g.store.Get(active); ok {
			return
		}
	}

	groups := g.store.List()
	if len(groups) > 0 {
		g.Switch(groups[0].ID)
	}
}

// SyncPendingChanges replays queued group mutations.
func (g *GroupService) SyncPendingChanges(ctx context.Context) {
	g.store.SyncPendingChanges(ctx)
}

// PendingCount returns the number of unconfirmed group changes.
func (g *GroupService) PendingCount() int {
	return g.store.PendingCount()
}

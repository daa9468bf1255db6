// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"time"

	"dario.cat/mergo"

	"github.com/PsyChonek/spajzka-client/internal/adapter"
	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/internal/store"
	"github.com/PsyChonek/spajzka-client/models"
)

// SyncStore is an offline-first store for one resource type. It pairs a local
// replica with a pending-change ledger and reconciles both against the REST
// endpoint: mutations apply locally first, network confirmation follows when
// connectivity allows, and unconfirmed changes wait in the ledger for the next
// replay.
//
// Failure classification is binary. A 404 means the endpoint or record will
// never materialise, so the change is dropped without retry. Everything else
// (timeout, 5xx, connection loss) keeps the change pending.
type SyncStore[T any, PT store.EntityPtr[T]] struct {
	resource string
	replica  *store.Replica[T, PT]
	ledger   *store.Ledger
	endpoint adapter.Resource[T]
	oracle   ConnectivityOracle
	groups   GroupProvider
	notifier Notifier
	logger   *logger.Logger
}

// NewSyncStore wires a store for the named resource. The resource label is
// used for snapshot namespaces and user notices.
func NewSyncStore[T any, PT store.EntityPtr[T]](
	resource string,
	snapshots store.SnapshotStore,
	endpoint adapter.Resource[T],
	oracle ConnectivityOracle,
	groups GroupProvider,
	notifier Notifier,
	log *logger.Logger,
) *SyncStore[T, PT] {
	return &SyncStore[T, PT]{
		resource: resource,
		replica:  store.NewReplica[T, PT](resource, snapshots, log),
		ledger:   store.NewLedger(resource, snapshots, log),
		endpoint: endpoint,
		oracle:   oracle,
		groups:   groups,
		notifier: notifier,
		logger:   log,
	}
}

// List returns the current local collection in storage order.
func (s *SyncStore[T, PT]) List() []T {
	return s.replica.List()
}

// Get returns the local record with the given id, if present.
func (s *SyncStore[T, PT]) Get(id string) (T, bool) {
	return s.replica.Find(id)
}

// PendingCount returns the number of unconfirmed changes, for UI badges.
func (s *SyncStore[T, PT]) PendingCount() int {
	return s.ledger.Len()
}

// LastSyncedAt returns when the store last converged with the server.
func (s *SyncStore[T, PT]) LastSyncedAt() time.Time {
	return s.replica.LastSyncedAt()
}

// Add stores a new record. It appears in List immediately under a temporary
// id; when the create round-trip succeeds the server-assigned identity and
// timestamps are merged in, keeping any payload edits made while the call was
// in flight. Offline or on retryable failure the create is queued for replay.
func (s *SyncStore[T, PT]) Add(ctx context.Context, record T) {
	now := time.Now().UTC()
	p := PT(&record)
	p.SetID(models.NewTempID())
	p.SetCreatedAt(now)
	p.SetUpdatedAt(now)
	tempID := p.GetID()

	if err := s.replica.Append(record); err != nil {
		s.logger.Err(err).Str("resource", s.resource).Msg("failed to append new record")
		return
	}

	if !s.oracle.Online() {
		s.queue(tempID, models.ChangeCreate)
		return
	}

	payload := record
	PT(&payload).ClearServerFields()

	created, err := s.endpoint.Create(ctx, s.groups.ActiveGroupID(), payload)
	switch {
	case err == nil:
		s.promote(tempID, created)
	case errors.Is(err, adapter.ErrNotFound):
		s.logger.Debug().Str("resource", s.resource).Msg("create endpoint absent, dropping change")
	default:
		s.logger.Warn().Err(err).Str("resource", s.resource).Str("id", tempID).Msg("create failed, queueing for replay")
		s.queue(tempID, models.ChangeCreate)
	}
}

// Update merges the non-zero fields of partial into the record with the given
// id and bumps its updatedAt stamp. The merge is unconditional; the server
// round-trip happens only when online and the id is server-assigned. A record
// still carrying a temp id is updated locally only, its outstanding create
// will carry the merged fields when it resolves.
func (s *SyncStore[T, PT]) Update(ctx context.Context, id string, partial T) {
	current, ok := s.replica.Find(id)
	if !ok {
		s.logger.Debug().Str("resource", s.resource).Str("id", id).Msg("update target not found")
		return
	}

	merged := current
	if err := mergo.Merge(&merged, partial, mergo.WithOverride); err != nil {
		s.logger.Err(err).Str("resource", s.resource).Str("id", id).Msg("failed to merge update fields")
		return
	}
	mp := PT(&merged)
	mp.SetID(id)
	mp.SetUpdatedAt(time.Now().UTC())
	s.replica.Update(merged)

	if models.IsTempID(id) {
		return
	}

	if !s.oracle.Online() {
		s.queue(id, models.ChangeUpdate)
		return
	}

	echoed, err := s.endpoint.Update(ctx, s.groups.ActiveGroupID(), id, merged)
	switch {
	case err == nil:
		s.replica.Update(echoed)
		s.ledger.Delete(id)
	case errors.Is(err, adapter.ErrNotFound):
		s.ledger.Delete(id)
	default:
		s.logger.Warn().Err(err).Str("resource", s.resource).Str("id", id).Msg("update failed, queueing for replay")
		s.queue(id, models.ChangeUpdate)
	}
}

// Delete removes the record from the local collection immediately regardless
// of connectivity. Deleting a record whose create is still pending cancels
// that create outright; the server never hears about either.
func (s *SyncStore[T, PT]) Delete(ctx context.Context, id string) {
	s.replica.Remove(id)

	if models.IsTempID(id) {
		s.ledger.Delete(id)
		return
	}

	if !s.oracle.Online() {
		s.queue(id, models.ChangeDelete)
		return
	}

	err := s.endpoint.Delete(ctx, s.groups.ActiveGroupID(), id)
	switch {
	case err == nil, errors.Is(err, adapter.ErrNotFound):
		s.ledger.Delete(id)
	default:
		s.logger.Warn().Err(err).Str("resource", s.resource).Str("id", id).Msg("delete failed, queueing for replay")
		s.queue(id, models.ChangeDelete)
	}
}

// FetchAll replaces the local collection with the server's, dropping every
// pending change: a full resync supersedes all optimistic state, server wins.
// Offline it is a no-op and the cached collection stays available.
func (s *SyncStore[T, PT]) FetchAll(ctx context.Context) {
	if !s.oracle.Online() {
		return
	}

	records, err := s.endpoint.List(ctx, s.groups.ActiveGroupID())
	switch {
	case err == nil:
		s.replica.ReplaceAll(records)
		s.ledger.Clear()
	case errors.Is(err, adapter.ErrNotFound):
		s.logger.Debug().Str("resource", s.resource).Msg("collection endpoint absent, keeping cache")
	default:
		s.logger.Warn().Err(err).Str("resource", s.resource).Msg("fetch failed, keeping cache")
		s.notifier.UsingCachedData(s.resource)
	}
}

// SyncPendingChanges replays every queued change against the server in
// first-recorded order. Each entry is cleared on success or 404 and kept on
// any other failure; there is no backoff, replay runs only when triggered
// again. When the pass drains the ledger the store is stamped synced.
func (s *SyncStore[T, PT]) SyncPendingChanges(ctx context.Context) {
	if !s.oracle.Online() || s.ledger.IsEmpty() {
		return
	}

	// Entries is a snapshot: each step below mutates the ledger.
	for _, entry := range s.ledger.Entries() {
		switch entry.Kind {
		case models.ChangeCreate:
			s.replayCreate(ctx, entry.ID)
		case models.ChangeUpdate:
			s.replayUpdate(ctx, entry.ID)
		case models.ChangeDelete:
			s.replayDelete(ctx, entry.ID)
		}
	}

	if s.ledger.IsEmpty() {
		s.replica.StampSynced()
		s.notifier.SyncComplete(s.resource)
	}
}

func (s *SyncStore[T, PT]) replayCreate(ctx context.Context, id string) {
	record, ok := s.replica.Find(id)
	if !ok {
		// the record was deleted locally in the meantime, nothing to create
		s.ledger.Delete(id)
		return
	}

	payload := record
	PT(&payload).ClearServerFields()

	created, err := s.endpoint.Create(ctx, s.groups.ActiveGroupID(), payload)
	switch {
	case err == nil:
		s.promote(id, created)
		s.ledger.Delete(id)
	case errors.Is(err, adapter.ErrNotFound):
		s.ledger.Delete(id)
	default:
		s.logger.Warn().Err(err).Str("resource", s.resource).Str("id", id).Msg("replay create failed, keeping entry")
	}
}

func (s *SyncStore[T, PT]) replayUpdate(ctx context.Context, id string) {
	if models.IsTempID(id) {
		return
	}

	record, ok := s.replica.Find(id)
	if !ok {
		s.ledger.Delete(id)
		return
	}

	echoed, err := s.endpoint.Update(ctx, s.groups.ActiveGroupID(), id, record)
	switch {
	case err == nil:
		s.replica.Update(echoed)
		s.ledger.Delete(id)
	case errors.Is(err, adapter.ErrNotFound):
		s.ledger.Delete(id)
	default:
		s.logger.Warn().Err(err).Str("resource", s.resource).Str("id", id).Msg("replay update failed, keeping entry")
	}
}

func (s *SyncStore[T, PT]) replayDelete(ctx context.Context, id string) {
	if models.IsTempID(id) {
		return
	}

	err := s.endpoint.Delete(ctx, s.groups.ActiveGroupID(), id)
	switch {
	case err == nil, errors.Is(err, adapter.ErrNotFound):
		s.ledger.Delete(id)
	default:
		s.logger.Warn().Err(err).Str("resource", s.resource).Str("id", id).Msg("replay delete failed, keeping entry")
	}
}

// promote merges the server-assigned identity and timestamps of created into
// the record currently stored under tempID, keeping its position and any
// payload fields edited while the create was in flight. If the record is gone
// the response is discarded silently.
func (s *SyncStore[T, PT]) promote(tempID string, created T) {
	current, ok := s.replica.Find(tempID)
	if !ok {
		s.logger.Debug().Str("resource", s.resource).Str("id", tempID).Msg("record deleted before create resolved, discarding response")
		return
	}

	cp := PT(&created)
	p := PT(&current)
	p.SetID(cp.GetID())
	p.SetCreatedAt(cp.GetCreatedAt())
	p.SetUpdatedAt(cp.GetUpdatedAt())

	s.replica.ReplaceID(tempID, current)
}

func (s *SyncStore[T, PT]) queue(id string, kind models.ChangeKind) {
	s.ledger.Set(id, kind)
	s.notifier.SavedLocally(s.resource, id)
}

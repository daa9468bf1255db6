package store

import (
	"encoding/json"
	"sync"

	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/models"
)

// Ledger records, per entity id, the single outstanding mutation kind not yet
// confirmed by the server. An id appears at most once: the latest intended
// mutation overwrites any earlier entry while keeping its original position,
// so replay order follows first-recorded order.
type Ledger struct {
	namespace string
	snapshots SnapshotStore
	logger    *logger.Logger

	mu    sync.Mutex
	kinds map[string]models.ChangeKind
	order []string
}

// NewLedger constructs a ledger for namespace and restores its last persisted
// snapshot. Corrupt snapshots are logged and treated as empty.
func NewLedger(namespace string, snapshots SnapshotStore, log *logger.Logger) *Ledger {
	l := &Ledger{
		namespace: namespace,
		snapshots: snapshots,
		logger:    log,
		kinds:     make(map[string]models.ChangeKind),
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	data, err := l.snapshots.Load(l.namespace + ".ledger")
	if err != nil {
		l.logger.Err(err).Str("namespace", l.namespace).Msg("failed to load ledger snapshot")
		return
	}
	if len(data) == 0 {
		return
	}

	var entries []models.PendingChange
	if err = json.Unmarshal(data, &entries); err != nil {
		l.logger.Err(err).Str("namespace", l.namespace).Msg("failed to decode ledger snapshot")
		return
	}

	for _, e := range entries {
		if _, ok := l.kinds[e.ID]; !ok {
			l.order = append(l.order, e.ID)
		}
		l.kinds[e.ID] = e.Kind
	}
}

// persist is best-effort, like the replica's. Callers hold l.mu.
func (l *Ledger) persist() {
	entries := l.entriesLocked()
	data, err := json.Marshal(entries)
	if err != nil {
		l.logger.Err(err).Str("namespace", l.namespace).Msg("failed to encode ledger snapshot")
		return
	}
	if err = l.snapshots.Save(l.namespace+".ledger", data); err != nil {
		l.logger.Err(err).Str("namespace", l.namespace).Msg("failed to save ledger snapshot")
	}
}

func (l *Ledger) entriesLocked() []models.PendingChange {
	entries := make([]models.PendingChange, 0, len(l.order))
	for _, id := range l.order {
		entries = append(entries, models.PendingChange{ID: id, Kind: l.kinds[id]})
	}
	return entries
}

// Set records kind as the outstanding mutation for id, overwriting any
// existing entry.
func (l *Ledger) Set(id string, kind models.ChangeKind) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.kinds[id]; !ok {
		l.order = append(l.order, id)
	}
	l.kinds[id] = kind
	l.persist()
}

// Delete removes the entry for id. No-op when absent.
func (l *Ledger) Delete(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.kinds[id]; !ok {
		return
	}

	delete(l.kinds, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.persist()
}

// Get returns the outstanding mutation kind for id, if any.
func (l *Ledger) Get(id string) (models.ChangeKind, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kind, ok := l.kinds[id]
	return kind, ok
}

// Entries returns a snapshot of all pending changes in first-recorded order.
// Mutating the ledger while iterating the returned slice is safe; the replay
// driver relies on this.
func (l *Ledger) Entries() []models.PendingChange {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entriesLocked()
}

// Len returns the number of pending entries, consumed by UI badges.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.kinds)
}

// IsEmpty reports whether no mutations are outstanding.
func (l *Ledger) IsEmpty() bool {
	return l.Len() == 0
}

// Clear drops every entry. Called after a successful bulk resync, which
// supersedes all pending optimistic state.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.kinds = make(map[string]models.ChangeKind)
	l.order = nil
	l.persist()
}

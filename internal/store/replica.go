package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/models"
)

// EntityPtr constrains PT to a pointer to T that exposes the shared identity
// and timestamp fields.
type EntityPtr[T any] interface {
	*T
	models.Entity
}

// Replica holds the client's best-known copy of one resource type's full
// collection: an ordered record list with unique ids, a last-synced stamp,
// and a persistence hook serialising every mutation through a [SnapshotStore].
type Replica[T any, PT EntityPtr[T]] struct {
	namespace string
	snapshots SnapshotStore
	logger    *logger.Logger

	mu         sync.RWMutex
	records    []T
	index      map[string]int
	lastSynced time.Time
}

type replicaState[T any] struct {
	Records    []T       `json:"records"`
	LastSynced time.Time `json:"lastSynced,omitempty"`
}

// NewReplica constructs a replica for namespace and restores its last
// persisted snapshot. A corrupt or unreadable snapshot is logged and treated
// as empty; startup never fails on cache state.
func NewReplica[T any, PT EntityPtr[T]](namespace string, snapshots SnapshotStore, log *logger.Logger) *Replica[T, PT] {
	r := &Replica[T, PT]{
		namespace: namespace,
		snapshots: snapshots,
		logger:    log,
		index:     make(map[string]int),
	}
	r.load()
	return r
}

func (r *Replica[T, PT]) load() {
	data, err := r.snapshots.Load(r.namespace + ".replica")
	if err != nil {
		r.logger.Err(err).Str("namespace", r.namespace).Msg("failed to load replica snapshot")
		return
	}
	if len(data) == 0 {
		return
	}

	var st replicaState[T]
	if err = json.Unmarshal(data, &st); err != nil {
		r.logger.Err(err).Str("namespace", r.namespace).Msg("failed to decode replica snapshot")
		return
	}

	r.records = st.Records
	r.lastSynced = st.LastSynced
	r.reindex()
}

// persist serialises the current state. Failures are swallowed: the in-memory
// mutation that triggered the write must not fail. Callers hold r.mu.
func (r *Replica[T, PT]) persist() {
	st := replicaState[T]{Records: r.records, LastSynced: r.lastSynced}
	data, err := json.Marshal(st)
	if err != nil {
		r.logger.Err(err).Str("namespace", r.namespace).Msg("failed to encode replica snapshot")
		return
	}
	if err = r.snapshots.Save(r.namespace+".replica", data); err != nil {
		r.logger.Err(err).Str("namespace", r.namespace).Msg("failed to save replica snapshot")
	}
}

// reindex rebuilds the id index from the record slice. Callers hold r.mu.
func (r *Replica[T, PT]) reindex() {
	r.index = make(map[string]int, len(r.records))
	for i := range r.records {
		r.index[PT(&r.records[i]).GetID()] = i
	}
}

// List returns a copy of the current records in storage order.
func (r *Replica[T, PT]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.records))
	copy(out, r.records)
	return out
}

// Find returns the record with the given id, if present.
func (r *Replica[T, PT]) Find(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.index[id]; ok {
		return r.records[i], true
	}
	var zero T
	return zero, false
}

// Len returns the current record count.
func (r *Replica[T, PT]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Append adds a new record at the end of the collection. Returns an error if
// a record with the same id already exists.
func (r *Replica[T, PT]) Append(rec T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := PT(&rec).GetID()
	if _, exists := r.index[id]; exists {
		return fmt.Errorf("duplicate record id %q", id)
	}

	r.records = append(r.records, rec)
	r.index[id] = len(r.records) - 1
	r.persist()
	return nil
}

// Update replaces the stored record carrying rec's id in place. Returns false
// when no such record exists.
func (r *Replica[T, PT]) Update(rec T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[PT(&rec).GetID()]
	if !ok {
		return false
	}

	r.records[i] = rec
	r.persist()
	return true
}

// ReplaceID swaps the record stored under oldID for rec, keeping its position
// in the collection. This is the temp-id promotion path: array order is
// preserved so the UI row does not jump. Returns false when oldID is absent.
func (r *Replica[T, PT]) ReplaceID(oldID string, rec T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[oldID]
	if !ok {
		return false
	}

	delete(r.index, oldID)
	r.records[i] = rec
	r.index[PT(&rec).GetID()] = i
	r.persist()
	return true
}

// Remove deletes the record with the given id. Returns false when absent.
func (r *Replica[T, PT]) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.records = append(r.records[:i], r.records[i+1:]...)
	r.reindex()
	r.persist()
	return true
}

// ReplaceAll swaps the whole collection for records and stamps the replica as
// freshly synced. Used by the bulk resync; clearing the ledger is coordinated
// by the caller, not here.
func (r *Replica[T, PT]) ReplaceAll(records []T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = make([]T, len(records))
	copy(r.records, records)
	r.reindex()
	r.lastSynced = time.Now().UTC()
	r.persist()
}

// LastSyncedAt returns when the replica last converged with the server, for
// staleness display. Zero when it never has.
func (r *Replica[T, PT]) LastSyncedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastSynced
}

// StampSynced records that the replica converged with the server just now.
func (r *Replica[T, PT]) StampSynced() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastSynced = time.Now().UTC()
	r.persist()
}

package models

// ChangeKind names the single outstanding unconfirmed mutation recorded for an
// entity id. The latest intended mutation wins: recording a new kind for an id
// replaces whatever was there before.
type ChangeKind string

const (
	ChangeCreate ChangeKind = "create"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// PendingChange is one (id, kind) pair from the pending-change ledger.
type PendingChange struct {
	ID   string     `json:"id"`
	Kind ChangeKind `json:"kind"`
}

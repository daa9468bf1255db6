package models

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// TempIDPrefix marks client-generated identifiers that have not yet been
// confirmed by the server.
const TempIDPrefix = "temp_"

// Meta carries the identity and timestamp fields shared by every synchronised
// entity. Embedding Meta in an entity struct makes its pointer type satisfy
// [Entity].
type Meta struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Entity is the minimal contract the sync layer needs from a record: read and
// write its identifier and timestamps. Payload fields stay opaque.
type Entity interface {
	GetID() string
	SetID(id string)
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
	ClearServerFields()
}

func (m *Meta) GetID() string            { return m.ID }
func (m *Meta) SetID(id string)          { m.ID = id }
func (m *Meta) GetCreatedAt() time.Time  { return m.CreatedAt }
func (m *Meta) GetUpdatedAt() time.Time  { return m.UpdatedAt }
func (m *Meta) SetCreatedAt(t time.Time) { m.CreatedAt = t }
func (m *Meta) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// IsTemp reports whether the record still carries a client-generated
// identifier, i.e. its create round-trip has not completed.
func (m *Meta) IsTemp() bool { return IsTempID(m.ID) }

// ClearServerFields zeroes the identifier and timestamps before a create
// request so the server assigns its own.
func (m *Meta) ClearServerFields() {
	m.ID = ""
	m.CreatedAt = time.Time{}
	m.UpdatedAt = time.Time{}
}

// IsTempID reports whether id is a client-generated temporary identifier.
func IsTempID(id string) bool { return strings.HasPrefix(id, TempIDPrefix) }

var tempIDCounter atomic.Int64

// NewTempID returns a fresh temporary identifier of the form
// temp_<nanosecond-timestamp>. A process-wide counter is folded in so that two
// records created in the same nanosecond never collide.
func NewTempID() string {
	return fmt.Sprintf("%s%d_%d", TempIDPrefix, time.Now().UnixNano(), tempIDCounter.Add(1))
}

// SPDX-License-Identifier: Apache-2.0

// Package service holds the sync core: one generic offline-first resource
// store instantiated per resource type, plus the auth and active-group
// services around it.
//
// Every mutation lands in the local replica immediately and unconditionally;
// the network round-trip happens after, and its failure is converted into a
// pending-change ledger entry or a silent drop, never an error returned to the
// caller. The UI layer observes state exclusively through the store's
// accessors.
package service

import (
	"context"

	"github.com/PsyChonek/spajzka-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// ConnectivityOracle answers whether the backend is currently believed
// reachable. Stores consult it before every network attempt; they never own or
// update it.
type ConnectivityOracle interface {
	Online() bool
}

// GroupProvider supplies the active household group id scoping per-group
// resource calls.
type GroupProvider interface {
	ActiveGroupID() string
}

// Notifier surfaces advisory, non-blocking notices to the user. No operation
// ever visibly fails or blocks; these are the toast-style messages the UI
// shows instead.
type Notifier interface {
	// SavedLocally tells the user a change is recorded locally and will sync
	// later.
	SavedLocally(resource, id string)

	// SyncComplete tells the user all pending changes for a resource reached
	// the server.
	SyncComplete(resource string)

	// UsingCachedData tells the user a refresh failed and the displayed data
	// may be stale.
	UsingCachedData(resource string)
}

// Authenticator is the slice of the transport layer the auth service needs.
type Authenticator interface {
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
}

// GroupEventPublisher announces active-group switches to interested stores.
type GroupEventPublisher interface {
	PublishGroupChanged(groupID string) error
}

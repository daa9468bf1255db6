// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// Spajzka REST backend.
//
// [Client] owns the shared resty HTTP client, bearer-token handling, and error
// classification; [Resource] is a generic per-resource-type endpoint built on
// top of it. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so callers can classify failures with [errors.Is]
// (notably [ErrNotFound], which the sync layer treats as a terminal,
// non-retryable outcome).
package adapter

import (
	"context"

	"github.com/PsyChonek/spajzka-client/models"
)

// Resource defines transport-agnostic CRUD access to one resource type of the
// Spajzka API. Implementations are responsible for serialisation, path
// construction, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// groupID selects the active household group; resource types that are not
// scoped to a group ignore it.
type Resource[T any] interface {
	// List fetches the full authoritative collection.
	List(ctx context.Context, groupID string) ([]T, error)

	// Create submits a new record (identifier empty) and returns the server's
	// echoed representation, including the assigned id and timestamps.
	Create(ctx context.Context, groupID string, v T) (T, error)

	// Update replaces the record identified by id with v and returns the
	// server's echoed representation.
	Update(ctx context.Context, groupID, id string, v T) (T, error)

	// Delete removes the record identified by id.
	Delete(ctx context.Context, groupID, id string) error
}

// AuthAPI defines the authentication and liveness surface of the backend.
// Implemented by [Client].
type AuthAPI interface {
	// Register creates a new account and stores the returned bearer token for
	// subsequent requests.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login authenticates existing credentials and stores the returned bearer
	// token for subsequent requests.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Ping checks whether the backend is reachable. Used by the connectivity
	// monitor as its probe.
	Ping(ctx context.Context) error
}

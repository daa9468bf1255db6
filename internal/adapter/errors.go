// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

var (
	// ErrUnauthorized maps HTTP 401.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound maps HTTP 404, for both missing endpoints and missing rows.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict maps HTTP 409.
	ErrConflict = errors.New("resource conflict")
	// ErrInternalServerError maps HTTP 5xx.
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnreachable wraps transport-level failures where no HTTP response
	// arrived at all. The connectivity monitor keys on this: any HTTP
	// response, even an error status, proves the backend is reachable.
	ErrUnreachable = errors.New("server unreachable")
)

// SPDX-License-Identifier: Apache-2.0

// Package connectivity tracks whether the backend is reachable. The Oracle
// holds the current online/offline verdict and the Monitor keeps it fresh by
// probing the backend on an interval.
package connectivity

import "sync/atomic"

// Oracle answers the single question every store asks before talking to the
// network: is the backend reachable right now? It starts pessimistic; the
// first successful probe flips it online.
type Oracle struct {
	online atomic.Bool
}

// NewOracle returns an oracle in the offline state.
func NewOracle() *Oracle {
	return &Oracle{}
}

// Online reports the last observed connectivity verdict.
func (o *Oracle) Online() bool {
	return o.online.Load()
}

// SetOnline records a new verdict and reports whether this call was an
// offline-to-online transition.
func (o *Oracle) SetOnline(online bool) (reconnected bool) {
	previous := o.online.Swap(online)
	return online && !previous
}

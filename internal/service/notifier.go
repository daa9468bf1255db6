// SPDX-License-Identifier: Apache-2.0

package service

import "github.com/PsyChonek/spajzka-client/internal/logger"

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a Notifier writing each notice at info level. A UI
// frontend replaces this with its own toast implementation.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) SavedLocally(resource, id string) {
	n.logger.Info().Str("resource", resource).Str("id", id).Msg("saved locally, will sync later")
}

func (n *logNotifier) SyncComplete(resource string) {
	n.logger.Info().Str("resource", resource).Msg("all pending changes synced")
}

func (n *logNotifier) UsingCachedData(resource string) {
	n.logger.Info().Str("resource", resource).Msg("refresh failed, using cached data")
}

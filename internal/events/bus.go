// SPDX-License-Identifier: Apache-2.0

// Package events carries the client's in-process notifications over a
// watermill gochannel Pub/Sub: the active-group switch that makes every
// resource store refetch its collection, and the reconnect edge that triggers
// a replay of pending changes.
//
// Explicit message passing replaces implicit reactive dependency tracking:
// publishers know nothing about subscribers, and new subscribers can be added
// without touching the publishing side.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/PsyChonek/spajzka-client/internal/logger"
)

// Topics published on the bus.
const (
	TopicGroupChanged = "group.changed"
	TopicReconnected  = "network.reconnected"
)

// GroupChanged is the payload of [TopicGroupChanged].
type GroupChanged struct {
	GroupID string `json:"groupId"`
}

// Bus is a thin wrapper around an in-process watermill Pub/Sub.
type Bus struct {
	pubSub *gochannel.GoChannel
	logger *logger.Logger
}

// NewBus constructs an in-process bus.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}),
		logger: log,
	}
}

// PublishGroupChanged announces that the active household group switched.
func (b *Bus) PublishGroupChanged(groupID string) error {
	payload, err := json.Marshal(GroupChanged{GroupID: groupID})
	if err != nil {
		return fmt.Errorf("encode group changed event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err = b.pubSub.Publish(TopicGroupChanged, msg); err != nil {
		return fmt.Errorf("publish group changed event: %w", err)
	}
	return nil
}

// SubscribeGroupChanged invokes fn with the new group id for every
// group-changed event until ctx is cancelled. Each subscriber runs on its own
// goroutine; fn must be safe to call from it.
func (b *Bus) SubscribeGroupChanged(ctx context.Context, fn func(groupID string)) error {
	messages, err := b.pubSub.Subscribe(ctx, TopicGroupChanged)
	if err != nil {
		return fmt.Errorf("subscribe group changed: %w", err)
	}

	go func() {
		for msg := range messages {
			var evt GroupChanged
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				b.logger.Err(err).Msg("failed to decode group changed event")
				msg.Ack()
				continue
			}
			fn(evt.GroupID)
			msg.Ack()
		}
	}()

	return nil
}

// PublishReconnected announces an offline-to-online transition.
func (b *Bus) PublishReconnected() error {
	msg := message.NewMessage(watermill.NewUUID(), nil)
	if err := b.pubSub.Publish(TopicReconnected, msg); err != nil {
		return fmt.Errorf("publish reconnected event: %w", err)
	}
	return nil
}

// SubscribeReconnected invokes fn for every reconnect edge until ctx is
// cancelled.
func (b *Bus) SubscribeReconnected(ctx context.Context, fn func()) error {
	messages, err := b.pubSub.Subscribe(ctx, TopicReconnected)
	if err != nil {
		return fmt.Errorf("subscribe reconnected: %w", err)
	}

	go func() {
		for msg := range messages {
			fn()
			msg.Ack()
		}
	}()

	return nil
}

// Close shuts the underlying Pub/Sub down; pending deliveries are dropped.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}

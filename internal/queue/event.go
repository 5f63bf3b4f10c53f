// Package queue defines the entity change events exchanged over RabbitMQ
// together with their publisher and consumer.
package queue

import (
	"context"
	"time"
)

// Entity names carried in EntityEvent.Entity.
const (
	EntityUser          = "user"
	EntityAccommodation = "accommodation"
	EntityReservation   = "reservation"
)

// Actions carried in EntityEvent.Action.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EntityEvent is published after a row has been created, updated or
// deleted.  It identifies the row only; consumers that need the current
// state read it through the API.
type EntityEvent struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"`
	ID         uint64 `json:"id"`
	OccurredAt string `json:"occurred_at"`
}

// NewEntityEvent stamps an event with the current UTC time.
func NewEntityEvent(entity, action string, id uint64) EntityEvent {
	return EntityEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// NopPublisher drops every event.  It is used when publishing is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, EntityEvent) error { return nil }

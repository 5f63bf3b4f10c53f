// Package service orchestrates the persistence gateway and the mapping
// layer into the five operations every entity supports: list, get,
// create, update and delete.  An absent row is a normal outcome, reported
// as a nil DTO or false, never as an error.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/iliyamo/accommodation-reservation/internal/queue"
)

var (
	// ErrInvalidReference is returned when a reservation points at a user
	// or accommodation that does not exist.  The store's foreign key
	// decides; no lookup is made beforehand.
	ErrInvalidReference = errors.New("referenced user or accommodation does not exist")

	// ErrInUse is returned when deleting a user or accommodation that
	// reservations still reference.
	ErrInUse = errors.New("record is referenced by reservations")
)

// EventPublisher delivers entity change events.  queue.Publisher and
// queue.NopPublisher satisfy it.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.EntityEvent) error
}

// notifier publishes change events on behalf of a service.  Failures are
// logged and otherwise ignored: the row change has already been committed.
type notifier struct {
	events EventPublisher
	log    *zap.Logger
	entity string
}

func newNotifier(events EventPublisher, log *zap.Logger, entity string) notifier {
	if events == nil {
		events = queue.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return notifier{events: events, log: log, entity: entity}
}

func (n notifier) notify(ctx context.Context, action string, id uint64) {
	if err := n.events.Publish(ctx, queue.NewEntityEvent(n.entity, action, id)); err != nil {
		n.log.Warn("publish entity event failed",
			zap.String("entity", n.entity),
			zap.String("action", action),
			zap.Uint64("id", id),
			zap.Error(err),
		)
	}
}

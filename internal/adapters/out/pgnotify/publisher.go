package pgnotify

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// Execer is the part of *sql.DB the publisher needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Publisher implements ports.EventPublisher with pg_notify.
type Publisher struct {
	db        Execer
	pgChannel string
	now       func() time.Time
}

// NewPublisher sends every event on pgChannel.
//
// Example:
//
//	db, _ := sql.Open("postgres", dsn)
//	publisher := pgnotify.NewPublisher(db, "food_events")
//	_ = publisher.Publish(ctx, "sellers", "seller-status-changed", statusChanged)
func NewPublisher(db Execer, pgChannel string) *Publisher {
	return &Publisher{db: db, pgChannel: pgChannel, now: time.Now}
}

func (p *Publisher) Publish(ctx context.Context, channel, event string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("event payload", err)
	}

	message, err := json.Marshal(Envelope{
		Channel:     channel,
		Event:       event,
		Payload:     body,
		PublishedAt: p.now().UTC(),
	})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("event envelope", err)
	}
	if len(message) >= MaxPayloadBytes {
		return errs.NewValueIsOutOfRangeError("event size", len(message), 0, MaxPayloadBytes-1)
	}

	if _, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", p.pgChannel, string(message)); err != nil {
		return errs.NewPersistenceError("pg_notify", err)
	}
	return nil
}

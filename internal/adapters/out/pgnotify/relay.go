package pgnotify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

// NotificationSource is the part of *pq.Listener the relay consumes.
type NotificationSource interface {
	NotificationChannel() <-chan *pq.Notification
	Ping() error
}

// NewListener opens a LISTEN connection on pgChannel. Reconnects are handled by
// lib/pq; connection state changes are logged.
func NewListener(dsn, pgChannel string, logger *slog.Logger) (*pq.Listener, error) {
	logger = logger.With("component", "EventListener")
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
			logger.Warn("listener connection problem", "event", ev, "error", err)
		case pq.ListenerEventReconnected:
			logger.Info("listener reconnected")
		}
	})
	if err := listener.Listen(pgChannel); err != nil {
		_ = listener.Close()
		return nil, err
	}
	return listener, nil
}

// Relay moves notifications from a LISTEN connection into a Hub.
type Relay struct {
	source       NotificationSource
	hub          *Hub
	logger       *slog.Logger
	pingInterval time.Duration
}

func NewRelay(source NotificationSource, hub *Hub, logger *slog.Logger) *Relay {
	return &Relay{
		source:       source,
		hub:          hub,
		logger:       logger.With("component", "EventRelay"),
		pingInterval: 90 * time.Second,
	}
}

// Run blocks until ctx is done or the source channel is closed.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pingInterval)
	defer ticker.Stop()

	notifications := r.source.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notifications:
			if !ok {
				r.logger.Warn("notification channel closed")
				return
			}
			// nil is sent after a reconnect; events sent meanwhile are lost.
			if n == nil {
				r.logger.Warn("listener reconnected, events may have been missed")
				continue
			}
			r.relay(n)
		case <-ticker.C:
			if err := r.source.Ping(); err != nil {
				r.logger.Warn("listener ping failed", "error", err)
			}
		}
	}
}

func (r *Relay) relay(n *pq.Notification) {
	var env Envelope
	if err := json.Unmarshal([]byte(n.Extra), &env); err != nil {
		r.logger.Error("discarding malformed event", "pgChannel", n.Channel, "error", err)
		return
	}
	if env.Channel == "" || env.Event == "" {
		r.logger.Error("discarding event without channel or name", "pgChannel", n.Channel)
		return
	}
	r.hub.Deliver(env)
}

package pgnotify

import (
	"log/slog"
	"sync"
)

const subscriberBuffer = 32

// Hub fans envelopes out to in-process subscribers by logical channel.
// A subscriber that falls behind loses events rather than blocking the relay.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscription]struct{}
	closed bool
	logger *slog.Logger
}

type subscription struct {
	ch chan Envelope
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[*subscription]struct{}),
		logger: logger.With("component", "EventHub"),
	}
}

// Subscribe registers interest in channel. The returned cancel func unregisters
// and closes the event channel; it is safe to call more than once. After Close
// the returned channel is already closed.
func (h *Hub) Subscribe(channel string) (<-chan Envelope, func()) {
	sub := &subscription{ch: make(chan Envelope, subscriberBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	if h.subs[channel] == nil {
		h.subs[channel] = make(map[*subscription]struct{})
	}
	h.subs[channel][sub] = struct{}{}
	h.mu.Unlock()

	return sub.ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[channel][sub]; !ok {
			return
		}
		delete(h.subs[channel], sub)
		if len(h.subs[channel]) == 0 {
			delete(h.subs, channel)
		}
		close(sub.ch)
	}
}

// Deliver hands env to every subscriber of env.Channel.
func (h *Hub) Deliver(env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[env.Channel] {
		select {
		case sub.ch <- env:
		default:
			h.logger.Warn("dropping event for slow subscriber", "channel", env.Channel, "event", env.Event)
		}
	}
}

// Close ends every open subscription so streaming handlers can return.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for channel, subs := range h.subs {
		for sub := range subs {
			close(sub.ch)
		}
		delete(h.subs, channel)
	}
}

// Subscribers returns the number of subscribers on channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[channel])
}

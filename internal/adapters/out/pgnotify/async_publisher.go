package pgnotify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/core/ports"
)

type pendingEvent struct {
	ctx     context.Context
	event   string
	payload any
}

// AsyncPublisher queues events per channel and drains each queue on its own
// goroutine with a detached, time-limited context. Events on one channel are
// delivered in the order they were published; separate channels do not wait
// on each other. Publish always returns nil; failures are logged.
type AsyncPublisher struct {
	next    ports.EventPublisher
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	queues map[string][]pendingEvent
	wg     sync.WaitGroup
}

func NewAsyncPublisher(next ports.EventPublisher, timeout time.Duration, logger *slog.Logger) *AsyncPublisher {
	return &AsyncPublisher{
		next:    next,
		timeout: timeout,
		logger:  logger.With("component", "AsyncPublisher"),
		queues:  make(map[string][]pendingEvent),
	}
}

func (p *AsyncPublisher) Publish(ctx context.Context, channel, event string, payload any) error {
	item := pendingEvent{ctx: context.WithoutCancel(ctx), event: event, payload: payload}

	p.mu.Lock()
	queue, draining := p.queues[channel]
	p.queues[channel] = append(queue, item)
	if !draining {
		p.wg.Add(1)
		go p.drain(channel)
	}
	p.mu.Unlock()
	return nil
}

// Wait blocks until every queued publish has finished.
func (p *AsyncPublisher) Wait() {
	p.wg.Wait()
}

// drain publishes the channel's queue in order and exits once it is empty.
func (p *AsyncPublisher) drain(channel string) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		queue := p.queues[channel]
		if len(queue) == 0 {
			delete(p.queues, channel)
			p.mu.Unlock()
			return
		}
		item := queue[0]
		p.queues[channel] = queue[1:]
		p.mu.Unlock()

		p.publish(channel, item)
	}
}

func (p *AsyncPublisher) publish(channel string, item pendingEvent) {
	ctx, cancel := context.WithTimeout(item.ctx, p.timeout)
	defer cancel()

	if err := p.next.Publish(ctx, channel, item.event, item.payload); err != nil {
		p.logger.Error("failed to publish event", "channel", channel, "event", item.event, "error", err)
	}
}

// Package availability holds the seller Availability Registry: the in-process
// answer to "can this seller take an order right now", backed by a durable
// store so a restart keeps sellers that were already online.
package availability

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// StatusChanged is the payload of the seller-status-changed broadcast.
type StatusChanged struct {
	SellerID        string    `json:"sellerId"`
	IsOnline        bool      `json:"isOnline"`
	DashboardStatus string    `json:"dashboardStatus"`
	LastActiveAt    time.Time `json:"lastActiveAt"`
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry caches seller availability in a mutex-guarded map with the
// durable store as fallback. Writes for the same seller are serialised by a
// per-seller lock, so they are last-write-wins in local arrival order and the
// cache never disagrees with the durable record.
//
// Example:
//
//	registry := availability.NewRegistry(sellerRepo, publisher, logger)
//	registry.Initialize(ctx)
//
//	_ = registry.SetOnline(ctx, sellerID, "conn-42")
//	if registry.CanAcceptOrders(ctx, sellerID) {
//	    // place the order
//	}
type Registry struct {
	mu        sync.RWMutex
	cache     map[kernel.UUID]seller.Availability
	locksMu   sync.Mutex
	locks     map[kernel.UUID]*sync.Mutex
	repo      ports.SellerAvailabilityRepository
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewRegistry(
	repo ports.SellerAvailabilityRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	opts ...Option,
) *Registry {
	r := &Registry{
		cache:     make(map[kernel.UUID]seller.Availability),
		locks:     make(map[kernel.UUID]*sync.Mutex),
		repo:      repo,
		publisher: publisher,
		logger:    logger.With("component", "AvailabilityRegistry"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize loads every seller marked online in the durable store into the
// cache. A load failure is logged and leaves the cache empty.
func (r *Registry) Initialize(ctx context.Context) {
	online, err := r.repo.ListOnline(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to load online sellers", "error", err)
		return
	}

	r.mu.Lock()
	for _, a := range online {
		r.cache[a.SellerID()] = a
	}
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "availability cache initialized", "online", len(online))
}

// GetStatus returns the cached entry or falls back to the durable record.
// Only online records are cached on a miss. Missing data yields an offline
// snapshot; it never fails.
func (r *Registry) GetStatus(ctx context.Context, sellerID kernel.UUID) seller.Availability {
	if a, ok := r.cached(sellerID); ok {
		return a
	}

	a, err := r.repo.Get(ctx, sellerID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			r.logger.WarnContext(ctx, "durable availability lookup failed",
				"sellerId", sellerID.String(), "error", err)
		}
		return seller.Offline(sellerID)
	}

	if a.IsOnline() {
		r.mu.Lock()
		// a concurrent write that landed first wins
		if current, ok := r.cache[sellerID]; ok {
			a = current
		} else {
			r.cache[sellerID] = a
		}
		r.mu.Unlock()
	}
	return a
}

// CanAcceptOrders reports isOnline && dashboardStatus != offline.
func (r *Registry) CanAcceptOrders(ctx context.Context, sellerID kernel.UUID) bool {
	return r.GetStatus(ctx, sellerID).CanAcceptOrders()
}

// SetOnline marks the seller connected with connectionID and broadcasts the change.
func (r *Registry) SetOnline(ctx context.Context, sellerID kernel.UUID, connectionID string) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if connectionID == "" {
		return errs.NewValueIsRequiredError("connectionId")
	}

	unlock := r.lockSeller(sellerID)
	defer unlock()

	next := r.base(sellerID).Connected(connectionID, r.now())
	return r.apply(ctx, next)
}

// SetOffline marks the seller disconnected and broadcasts the change, even when
// the seller was already offline.
func (r *Registry) SetOffline(ctx context.Context, sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	unlock := r.lockSeller(sellerID)
	defer unlock()

	next := r.base(sellerID).Disconnected(r.now())
	return r.apply(ctx, next)
}

// UpdateDashboardStatus changes only the dashboard status; isOnline is kept.
func (r *Registry) UpdateDashboardStatus(
	ctx context.Context,
	sellerID kernel.UUID,
	status seller.DashboardStatus,
) error {
	if err := errors.Join(sellerID.Validate(), status.Validate()); err != nil {
		return err
	}

	unlock := r.lockSeller(sellerID)
	defer unlock()

	next := r.GetStatus(ctx, sellerID).WithDashboardStatus(status)
	return r.apply(ctx, next)
}

// Heartbeat refreshes lastActiveAt for a cached online seller without
// broadcasting. Unknown and offline sellers are ignored.
func (r *Registry) Heartbeat(ctx context.Context, sellerID kernel.UUID) error {
	unlock := r.lockSeller(sellerID)
	defer unlock()

	current, ok := r.cached(sellerID)
	if !ok || !current.IsOnline() {
		return nil
	}

	next := current.Touched(r.now())
	if err := r.repo.Save(ctx, next); err != nil {
		return err
	}
	r.store(next)
	return nil
}

// ListOnline returns a copy of every cached seller that can accept orders,
// ordered by seller id.
func (r *Registry) ListOnline() []seller.Availability {
	r.mu.RLock()
	result := make([]seller.Availability, 0, len(r.cache))
	for _, a := range r.cache {
		if a.CanAcceptOrders() {
			result = append(result, a)
		}
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].SellerID().String() < result[j].SellerID().String()
	})
	return result
}

// BulkStatus resolves each id independently through GetStatus.
func (r *Registry) BulkStatus(ctx context.Context, sellerIDs []kernel.UUID) map[kernel.UUID]seller.Availability {
	result := make(map[kernel.UUID]seller.Availability, len(sellerIDs))
	for _, id := range sellerIDs {
		result[id] = r.GetStatus(ctx, id)
	}
	return result
}

// ReapInactive forces offline every cached online seller whose lastActiveAt is
// older than timeout, through the same path as SetOffline. Each candidate is
// re-checked under its seller lock, so a reconnect or heartbeat that lands
// after the sweep started keeps the seller online. Returns how many sellers
// were reaped; per-seller failures are logged.
func (r *Registry) ReapInactive(ctx context.Context, timeout time.Duration) int {
	cutoff := r.now().Add(-timeout)

	r.mu.RLock()
	stale := make([]kernel.UUID, 0)
	for id, a := range r.cache {
		if a.IsInactiveSince(cutoff) {
			stale = append(stale, id)
		}
	}
	r.mu.RUnlock()

	reaped := 0
	for _, id := range stale {
		ok, err := r.reap(ctx, id, cutoff)
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to reap inactive seller", "sellerId", id.String(), "error", err)
			continue
		}
		if ok {
			reaped++
		}
	}

	if reaped > 0 {
		r.logger.InfoContext(ctx, "reaped inactive sellers", "count", reaped, "timeout", timeout.String())
	}
	return reaped
}

func (r *Registry) reap(ctx context.Context, sellerID kernel.UUID, cutoff time.Time) (bool, error) {
	unlock := r.lockSeller(sellerID)
	defer unlock()

	current, ok := r.cached(sellerID)
	if !ok || !current.IsInactiveSince(cutoff) {
		return false, nil
	}
	if err := r.apply(ctx, current.Disconnected(r.now())); err != nil {
		return false, err
	}
	return true, nil
}

// apply persists next, then updates the cache, then publishes the change on
// the broadcast channel and the seller's own channel. A durable failure is
// returned and leaves the cache untouched. Callers hold the seller lock.
func (r *Registry) apply(ctx context.Context, next seller.Availability) error {
	if err := r.repo.Save(ctx, next); err != nil {
		return err
	}
	r.store(next)

	event := StatusChanged{
		SellerID:        next.SellerID().String(),
		IsOnline:        next.IsOnline(),
		DashboardStatus: next.DashboardStatus().String(),
		LastActiveAt:    next.LastActiveAt(),
	}
	for _, channel := range []string{ports.BroadcastChannel, ports.SellerChannel(next.SellerID())} {
		if err := r.publisher.Publish(ctx, channel, ports.EventSellerStatusChanged, event); err != nil {
			r.logger.WarnContext(ctx, "failed to publish seller status change",
				"sellerId", event.SellerID, "channel", channel, "error", err)
		}
	}
	return nil
}

// lockSeller serialises read-modify-write sequences for one seller and
// returns the matching unlock.
func (r *Registry) lockSeller(sellerID kernel.UUID) func() {
	r.locksMu.Lock()
	l, ok := r.locks[sellerID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[sellerID] = l
	}
	r.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

func (r *Registry) base(sellerID kernel.UUID) seller.Availability {
	if a, ok := r.cached(sellerID); ok {
		return a
	}
	return seller.Offline(sellerID)
}

func (r *Registry) cached(sellerID kernel.UUID) (seller.Availability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.cache[sellerID]
	return a, ok
}

func (r *Registry) store(a seller.Availability) {
	r.mu.Lock()
	r.cache[a.SellerID()] = a
	r.mu.Unlock()
}

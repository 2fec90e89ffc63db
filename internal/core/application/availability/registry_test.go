package availability_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/core/application/availability"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySellerRepo struct {
	mu      sync.Mutex
	records map[kernel.UUID]seller.Availability
	gets    int
	saveErr error
	listErr error
}

func newMemorySellerRepo() *memorySellerRepo {
	return &memorySellerRepo{records: make(map[kernel.UUID]seller.Availability)}
}

func (m *memorySellerRepo) Get(_ context.Context, id kernel.UUID) (seller.Availability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	a, ok := m.records[id]
	if !ok {
		return seller.Availability{}, errs.NewObjectNotFoundError("sellerId", id)
	}
	return a, nil
}

func (m *memorySellerRepo) Save(_ context.Context, a seller.Availability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[a.SellerID()] = a
	return nil
}

func (m *memorySellerRepo) ListOnline(_ context.Context) ([]seller.Availability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]seller.Availability, 0)
	for _, a := range m.records {
		if a.IsOnline() {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *memorySellerRepo) getCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets
}

type publishedEvent struct {
	Channel string
	Event   string
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, channel, event string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Channel: channel, Event: event, Payload: payload})
	return p.err
}

func (p *recordingPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

func (p *recordingPublisher) broadcasts() []publishedEvent {
	result := make([]publishedEvent, 0)
	for _, e := range p.published() {
		if e.Channel == ports.BroadcastChannel {
			result = append(result, e)
		}
	}
	return result
}

// gatedSellerRepo holds the first Save with the gated dashboard status until
// released, reporting which seller it holds.
type gatedSellerRepo struct {
	*memorySellerRepo
	gateOn  seller.DashboardStatus
	once    sync.Once
	entered chan kernel.UUID
	release chan struct{}
}

func newGatedSellerRepo(repo *memorySellerRepo, gateOn seller.DashboardStatus) *gatedSellerRepo {
	return &gatedSellerRepo{
		memorySellerRepo: repo,
		gateOn:           gateOn,
		entered:          make(chan kernel.UUID, 1),
		release:          make(chan struct{}),
	}
}

func (g *gatedSellerRepo) Save(ctx context.Context, a seller.Availability) error {
	if a.DashboardStatus() == g.gateOn {
		first := false
		g.once.Do(func() { first = true })
		if first {
			g.entered <- a.SellerID()
			<-g.release
		}
	}
	return g.memorySellerRepo.Save(ctx, a)
}

type fixture struct {
	registry  *availability.Registry
	repo      *memorySellerRepo
	publisher *recordingPublisher
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:      newMemorySellerRepo(),
		publisher: &recordingPublisher{},
		now:       time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.registry = availability.NewRegistry(f.repo, f.publisher, logger,
		availability.WithClock(func() time.Time { return f.now }))
	return f
}

func TestRegistry_GetStatus_UnknownSellerIsOffline(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()

	status := f.registry.GetStatus(t.Context(), id)

	assert.False(t, status.IsOnline())
	assert.Equal(t, seller.DashboardOffline, status.DashboardStatus())
	assert.True(t, status.SellerID().IsEqual(id))
	assert.False(t, f.registry.CanAcceptOrders(t.Context(), id))
}

func TestRegistry_GetStatus_DurableOnlineRecordIsCached(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	record, err := seller.NewAvailability(id, true, seller.DashboardOnline, f.now, nil)
	require.NoError(t, err)
	require.NoError(t, f.repo.Save(t.Context(), record))

	first := f.registry.GetStatus(t.Context(), id)
	second := f.registry.GetStatus(t.Context(), id)

	assert.True(t, first.IsOnline())
	assert.True(t, second.IsOnline())
	assert.Equal(t, 1, f.repo.getCount())
}

func TestRegistry_GetStatus_DurableOfflineRecordIsNotCached(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	record, err := seller.NewAvailability(id, false, seller.DashboardOffline, f.now, nil)
	require.NoError(t, err)
	require.NoError(t, f.repo.Save(t.Context(), record))

	f.registry.GetStatus(t.Context(), id)
	f.registry.GetStatus(t.Context(), id)

	assert.Equal(t, 2, f.repo.getCount())
}

func TestRegistry_SetOnline_PersistsCachesAndBroadcasts(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()

	err := f.registry.SetOnline(t.Context(), id, "conn-1")
	require.NoError(t, err)

	status := f.registry.GetStatus(t.Context(), id)
	assert.True(t, status.IsOnline())
	assert.Equal(t, seller.DashboardOnline, status.DashboardStatus())
	assert.Equal(t, f.now, status.LastActiveAt())
	require.NotNil(t, status.ConnectionID())
	assert.Equal(t, "conn-1", *status.ConnectionID())
	assert.Equal(t, 0, f.repo.getCount(), "cache hit must not touch the store")

	stored, err := f.repo.Get(t.Context(), id)
	require.NoError(t, err)
	assert.True(t, stored.IsOnline())

	events := f.publisher.published()
	require.Len(t, events, 2)
	assert.Equal(t, ports.BroadcastChannel, events[0].Channel)
	assert.Equal(t, ports.SellerChannel(id), events[1].Channel)
	for _, e := range events {
		assert.Equal(t, ports.EventSellerStatusChanged, e.Event)
		payload, ok := e.Payload.(availability.StatusChanged)
		require.True(t, ok)
		assert.Equal(t, id.String(), payload.SellerID)
		assert.True(t, payload.IsOnline)
	}
}

func TestRegistry_SetOnline_RequiresConnectionID(t *testing.T) {
	f := newFixture(t)

	err := f.registry.SetOnline(t.Context(), kernel.NewUUID(), "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Empty(t, f.publisher.published())
}

func TestRegistry_SetOnline_DurableFailureLeavesCacheUntouched(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.repo.saveErr = errs.NewPersistenceError("save seller availability", errors.New("connection refused"))

	err := f.registry.SetOnline(t.Context(), id, "conn-1")

	require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	assert.Empty(t, f.publisher.published())
	assert.Empty(t, f.registry.ListOnline())
}

func TestRegistry_SetOnline_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("sink down")
	id := kernel.NewUUID()

	err := f.registry.SetOnline(t.Context(), id, "conn-1")

	require.NoError(t, err)
	assert.True(t, f.registry.CanAcceptOrders(t.Context(), id))
}

func TestRegistry_SetOffline_AlreadyOfflineStillPublishes(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()

	require.NoError(t, f.registry.SetOffline(t.Context(), id))
	require.NoError(t, f.registry.SetOffline(t.Context(), id))

	status := f.registry.GetStatus(t.Context(), id)
	assert.False(t, status.IsOnline())
	assert.Nil(t, status.ConnectionID())
	assert.Len(t, f.publisher.broadcasts(), 2)
}

func TestRegistry_UpdateDashboardStatus_KeepsIsOnline(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	require.NoError(t, f.registry.SetOnline(t.Context(), id, "conn-1"))

	require.NoError(t, f.registry.UpdateDashboardStatus(t.Context(), id, seller.DashboardBusy))
	busy := f.registry.GetStatus(t.Context(), id)
	assert.True(t, busy.IsOnline())
	assert.Equal(t, seller.DashboardBusy, busy.DashboardStatus())
	assert.True(t, f.registry.CanAcceptOrders(t.Context(), id), "busy sellers still pass the gate")

	require.NoError(t, f.registry.UpdateDashboardStatus(t.Context(), id, seller.DashboardOffline))
	offline := f.registry.GetStatus(t.Context(), id)
	assert.True(t, offline.IsOnline())
	assert.False(t, f.registry.CanAcceptOrders(t.Context(), id))

	assert.Len(t, f.publisher.broadcasts(), 3)
}

func TestRegistry_UpdateDashboardStatus_DoesNotUndoConcurrentConnect(t *testing.T) {
	f := newFixture(t)
	repo := newGatedSellerRepo(f.repo, seller.DashboardBusy)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := availability.NewRegistry(repo, f.publisher, logger)
	id := kernel.NewUUID()

	updated := make(chan error, 1)
	go func() {
		updated <- registry.UpdateDashboardStatus(context.Background(), id, seller.DashboardBusy)
	}()
	<-repo.entered

	connected := make(chan error, 1)
	go func() {
		connected <- registry.SetOnline(context.Background(), id, "conn-1")
	}()
	close(repo.release)

	require.NoError(t, <-updated)
	require.NoError(t, <-connected)

	status := registry.GetStatus(t.Context(), id)
	assert.True(t, status.IsOnline())
	assert.Equal(t, seller.DashboardOnline, status.DashboardStatus())
	stored, err := f.repo.Get(t.Context(), id)
	require.NoError(t, err)
	assert.True(t, stored.IsOnline(), "durable record matches the cache")
}

func TestRegistry_UpdateDashboardStatus_RejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	err := f.registry.UpdateDashboardStatus(t.Context(), kernel.NewUUID(), seller.DashboardStatus("away"))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegistry_ListOnline_ExcludesDashboardOffline(t *testing.T) {
	f := newFixture(t)
	online := kernel.NewUUID()
	busy := kernel.NewUUID()
	hidden := kernel.NewUUID()
	disconnected := kernel.NewUUID()

	require.NoError(t, f.registry.SetOnline(t.Context(), online, "c1"))
	require.NoError(t, f.registry.SetOnline(t.Context(), busy, "c2"))
	require.NoError(t, f.registry.UpdateDashboardStatus(t.Context(), busy, seller.DashboardBusy))
	require.NoError(t, f.registry.SetOnline(t.Context(), hidden, "c3"))
	require.NoError(t, f.registry.UpdateDashboardStatus(t.Context(), hidden, seller.DashboardOffline))
	require.NoError(t, f.registry.SetOffline(t.Context(), disconnected))

	list := f.registry.ListOnline()

	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.SellerID().String())
	}
	assert.ElementsMatch(t, []string{online.String(), busy.String()}, ids)
}

func TestRegistry_BulkStatus_ResolvesEachID(t *testing.T) {
	f := newFixture(t)
	online := kernel.NewUUID()
	unknown := kernel.NewUUID()
	require.NoError(t, f.registry.SetOnline(t.Context(), online, "c1"))

	result := f.registry.BulkStatus(t.Context(), []kernel.UUID{online, unknown})

	require.Len(t, result, 2)
	assert.True(t, result[online].IsOnline())
	assert.False(t, result[unknown].IsOnline())
}

func TestRegistry_Initialize_LoadsOnlineSellers(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	record, err := seller.NewAvailability(id, true, seller.DashboardOnline, f.now, nil)
	require.NoError(t, err)
	require.NoError(t, f.repo.Save(t.Context(), record))

	f.registry.Initialize(t.Context())

	assert.Len(t, f.registry.ListOnline(), 1)
	assert.True(t, f.registry.CanAcceptOrders(t.Context(), id))
	assert.Equal(t, 0, f.repo.getCount())
}

func TestRegistry_Initialize_LoadFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.repo.listErr = errors.New("database unavailable")

	f.registry.Initialize(t.Context())

	assert.Empty(t, f.registry.ListOnline())
}

func TestRegistry_ReapInactive_ForcesStaleSellersOffline(t *testing.T) {
	f := newFixture(t)
	stale := kernel.NewUUID()
	fresh := kernel.NewUUID()
	require.NoError(t, f.registry.SetOnline(t.Context(), stale, "c1"))
	f.now = f.now.Add(4 * time.Minute)
	require.NoError(t, f.registry.SetOnline(t.Context(), fresh, "c2"))
	f.now = f.now.Add(2 * time.Minute)
	before := len(f.publisher.broadcasts())

	reaped := f.registry.ReapInactive(t.Context(), 5*time.Minute)

	assert.Equal(t, 1, reaped)
	status := f.registry.GetStatus(t.Context(), stale)
	assert.False(t, status.IsOnline())
	assert.Equal(t, seller.DashboardOffline, status.DashboardStatus())
	assert.True(t, f.registry.GetStatus(t.Context(), fresh).IsOnline())

	events := f.publisher.broadcasts()[before:]
	require.Len(t, events, 1)
	payload := events[0].Payload.(availability.StatusChanged)
	assert.Equal(t, stale.String(), payload.SellerID)
	assert.False(t, payload.IsOnline)
}

func TestRegistry_Heartbeat_KeepsSellerFromBeingReaped(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	require.NoError(t, f.registry.SetOnline(t.Context(), id, "c1"))
	f.now = f.now.Add(4 * time.Minute)
	require.NoError(t, f.registry.Heartbeat(t.Context(), id))
	f.now = f.now.Add(4 * time.Minute)

	reaped := f.registry.ReapInactive(t.Context(), 5*time.Minute)

	assert.Equal(t, 0, reaped)
	assert.True(t, f.registry.GetStatus(t.Context(), id).IsOnline())
	assert.Len(t, f.publisher.broadcasts(), 1, "heartbeat does not broadcast")
}

func TestRegistry_ReapInactive_SkipsSellerActiveAgainDuringSweep(t *testing.T) {
	f := newFixture(t)
	first, second := kernel.NewUUID(), kernel.NewUUID()
	require.NoError(t, f.registry.SetOnline(t.Context(), first, "c1"))
	require.NoError(t, f.registry.SetOnline(t.Context(), second, "c2"))

	repo := newGatedSellerRepo(f.repo, seller.DashboardOffline)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := f.now.Add(10 * time.Minute)
	registry := availability.NewRegistry(repo, f.publisher, logger,
		availability.WithClock(func() time.Time { return now }))
	registry.Initialize(t.Context())

	reaped := make(chan int, 1)
	go func() {
		reaped <- registry.ReapInactive(context.Background(), 5*time.Minute)
	}()

	held := <-repo.entered
	other := first
	if held.IsEqual(first) {
		other = second
	}
	require.NoError(t, registry.Heartbeat(t.Context(), other))
	close(repo.release)

	assert.Equal(t, 1, <-reaped)
	assert.False(t, registry.GetStatus(t.Context(), held).IsOnline())
	assert.True(t, registry.GetStatus(t.Context(), other).IsOnline())
}

func TestRegistry_Heartbeat_IgnoresUnknownSeller(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.registry.Heartbeat(t.Context(), kernel.NewUUID()))
	assert.Empty(t, f.publisher.published())
}

func TestRegistry_ConcurrentWritesForDifferentSellers(t *testing.T) {
	f := newFixture(t)
	ids := make([]kernel.UUID, 50)
	for i := range ids {
		ids[i] = kernel.NewUUID()
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = f.registry.SetOnline(context.Background(), id, "conn")
		}()
		go func() {
			defer wg.Done()
			_ = f.registry.CanAcceptOrders(context.Background(), id)
			_ = f.registry.ListOnline()
		}()
	}
	wg.Wait()

	assert.Len(t, f.registry.ListOnline(), len(ids))
}

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/core/application/availability"
	"fooddelivery/internal/core/application/notifications"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore backs every repository port with maps; its unit of work has no
// isolation, which is enough for single-goroutine scenarios.
type memoryStore struct {
	mu            sync.Mutex
	orders        map[string]*order.Order
	dishes        map[kernel.UUID]*dish.Dish
	notifications []*notification.Notification
	sellers       map[kernel.UUID]seller.Availability
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:  make(map[string]*order.Order),
		dishes:  make(map[kernel.UUID]*dish.Dish),
		sellers: make(map[kernel.UUID]seller.Availability),
	}
}

func (s *memoryStore) Begin(context.Context) error { return nil }
func (s *memoryStore) Commit(context.Context) error { return nil }
func (s *memoryStore) Rollback(context.Context) error { return nil }

func (s *memoryStore) OrderRepository() ports.OrderRepository { return memoryOrders{s} }
func (s *memoryStore) DishRepository() ports.DishRepository { return memoryDishes{s} }

type memoryOrders struct{ s *memoryStore }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.OrderID()] = o
	return nil
}
func (r memoryOrders) Update(ctx context.Context, o *order.Order) error { return r.Add(ctx, o) }
func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("id", id)
}
func (r memoryOrders) GetByOrderID(_ context.Context, orderID string) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}
	return o, nil
}
func (r memoryOrders) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*order.Order, error) {
	return r.GetByOrderID(ctx, orderID)
}

type memoryDishes struct{ s *memoryStore }

func (r memoryDishes) Add(_ context.Context, d *dish.Dish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dishes[d.ID()] = d
	return nil
}
func (r memoryDishes) Get(_ context.Context, id kernel.UUID) (*dish.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dishes[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("dishId", id)
	}
	return d, nil
}

type memoryNotifications struct{ s *memoryStore }

func (r memoryNotifications) Add(_ context.Context, n *notification.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications = append(r.s.notifications, n)
	return nil
}
func (r memoryNotifications) Get(_ context.Context, id kernel.UUID) (*notification.Notification, error) {
	return nil, errs.NewObjectNotFoundError("notificationId", id)
}
func (r memoryNotifications) UpdateReadState(context.Context, *notification.Notification) error {
	return nil
}
func (r memoryNotifications) MarkAllRead(context.Context, kernel.UUID, time.Time) (int64, error) {
	return 0, nil
}
func (r memoryNotifications) DeleteExpired(context.Context, time.Time, time.Time) (int64, error) {
	return 0, nil
}

type memorySellers struct{ s *memoryStore }

func (r memorySellers) Get(_ context.Context, id kernel.UUID) (seller.Availability, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.sellers[id]
	if !ok {
		return seller.Availability{}, errs.NewObjectNotFoundError("sellerId", id)
	}
	return a, nil
}
func (r memorySellers) Save(_ context.Context, a seller.Availability) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sellers[a.SellerID()] = a
	return nil
}
func (r memorySellers) ListOnline(context.Context) ([]seller.Availability, error) {
	return nil, nil
}

func (s *memoryStore) notificationsFor(userID kernel.UUID) []*notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*notification.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID().IsEqual(userID) {
			result = append(result, n)
		}
	}
	return result
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, any) error { return nil }

type lifecycle struct {
	store      *memoryStore
	registry   *availability.Registry
	create     commands.CreateOrderCommandHandler
	transition commands.TransitionOrderCommandHandler
	dish       *dish.Dish
}

func newLifecycle(t *testing.T) *lifecycle {
	t.Helper()
	store := newMemoryStore()
	logger := discardLogger()
	registry := availability.NewRegistry(memorySellers{store}, nopPublisher{}, logger)
	dispatcher := notifications.NewDispatcher(memoryNotifications{store}, memoryOrders{store}, nopPublisher{}, logger)

	d, err := dish.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Veg Biryani", 200, "Spice Route", "", true)
	require.NoError(t, err)
	require.NoError(t, memoryDishes{store}.Add(t.Context(), d))

	return &lifecycle{
		store:      store,
		registry:   registry,
		create:     commands.NewCreateOrderCommandHandler(orderUoWFactory{store}, registry, nopPublisher{}, logger),
		transition: commands.NewTransitionOrderCommandHandler(orderUoWFactory{store}, dispatcher, nopPublisher{}, logger),
		dish:       d,
	}
}

func (l *lifecycle) placeOrder(t *testing.T, customerID kernel.UUID) (commands.CreateOrderResult, error) {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(customerID, l.dish.ID(), "12 MG Road, Bengaluru", nil)
	require.NoError(t, err)
	return l.create.Handle(t.Context(), cmd)
}

func (l *lifecycle) move(t *testing.T, orderID string, actor order.Actor, target order.Status) (commands.TransitionOrderResult, error) {
	t.Helper()
	cmd, err := commands.NewTransitionOrderCommand(orderID, actor, target)
	require.NoError(t, err)
	return l.transition.Handle(t.Context(), cmd)
}

func TestOrderLifecycle_OfflineSellerRejectsWithoutTrace(t *testing.T) {
	l := newLifecycle(t)

	_, err := l.placeOrder(t, kernel.NewUUID())

	var offline *errs.SellerOfflineError
	require.ErrorAs(t, err, &offline)
	assert.Equal(t, "SELLER_OFFLINE", offline.Code)
	assert.Empty(t, l.store.orders)
}

func TestOrderLifecycle_AcceptProducesExactlyOneNotification(t *testing.T) {
	l := newLifecycle(t)
	customerID := kernel.NewUUID()
	require.NoError(t, l.registry.SetOnline(t.Context(), l.dish.SellerID(), "conn-1"))

	created, err := l.placeOrder(t, customerID)
	require.NoError(t, err)
	assert.Equal(t, order.PendingSeller, created.Status)
	assert.Empty(t, l.store.notificationsFor(customerID), "order creation notifies nobody")

	_, err = l.move(t, created.OrderID, order.ActorSeller, order.SellerAccepted)
	require.NoError(t, err)

	list := l.store.notificationsFor(customerID)
	require.Len(t, list, 1)
	assert.Equal(t, notification.PriorityHigh, list[0].Priority())
	assert.Equal(t, "order-tracking", list[0].ActionRoute())
}

func TestOrderLifecycle_RepeatedTransitionIsIdempotent(t *testing.T) {
	l := newLifecycle(t)
	customerID := kernel.NewUUID()
	require.NoError(t, l.registry.SetOnline(t.Context(), l.dish.SellerID(), "conn-1"))
	created, err := l.placeOrder(t, customerID)
	require.NoError(t, err)

	first, err := l.move(t, created.OrderID, order.ActorSeller, order.SellerAccepted)
	require.NoError(t, err)
	second, err := l.move(t, created.OrderID, order.ActorSeller, order.SellerAccepted)
	require.NoError(t, err)

	assert.True(t, first.Changed)
	assert.False(t, second.Changed)
	assert.Len(t, second.Order.History(), 2)
	assert.Len(t, l.store.notificationsFor(customerID), 1)
}

func TestOrderLifecycle_HappyPathToDelivered(t *testing.T) {
	l := newLifecycle(t)
	customerID := kernel.NewUUID()
	require.NoError(t, l.registry.SetOnline(t.Context(), l.dish.SellerID(), "conn-1"))
	created, err := l.placeOrder(t, customerID)
	require.NoError(t, err)

	steps := []struct {
		actor  order.Actor
		target order.Status
	}{
		{order.ActorSeller, order.SellerAccepted},
		{order.ActorPayment, order.PaymentCompleted},
		{order.ActorSeller, order.Preparing},
		{order.ActorSeller, order.Ready},
		{order.ActorSystem, order.OutForDelivery},
		{order.ActorSeller, order.Delivered},
	}
	for _, step := range steps {
		_, err = l.move(t, created.OrderID, step.actor, step.target)
		require.NoError(t, err, "%s -> %s", step.actor, step.target)
	}

	_, err = l.move(t, created.OrderID, order.ActorAdmin, order.Cancelled)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	o, err := memoryOrders{l.store}.GetByOrderID(t.Context(), created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	assert.Len(t, o.History(), len(steps)+1)
	assert.Len(t, l.store.notificationsFor(customerID), len(steps))
}

func TestOrderLifecycle_ReapedSellerStopsAcceptingOrders(t *testing.T) {
	l := newLifecycle(t)
	require.NoError(t, l.registry.SetOnline(t.Context(), l.dish.SellerID(), "conn-1"))

	l.registry.ReapInactive(t.Context(), -time.Minute)

	_, err := l.placeOrder(t, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrSellerOffline)
}

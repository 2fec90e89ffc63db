package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/notifications"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderOrNil(args.Get(0)), args.Error(1)
}
func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	return orderOrNil(args.Get(0)), args.Error(1)
}
func (m *MockOrderRepository) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func orderOrNil(v any) *order.Order {
	if v == nil {
		return nil
	}
	return v.(*order.Order)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*dish.Dish), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.Address) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*address.Address), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockAddressRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*address.Address, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*address.Address), args.Error(1)
}
func (m *MockAddressRepository) ClearDefaults(ctx context.Context, userID kernel.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockAddressRepository) SetDefault(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*notification.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockNotificationRepository) UpdateReadState(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID, at time.Time) (int64, error) {
	args := m.Called(ctx, userID, at)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepository) DeleteExpired(ctx context.Context, now, readBefore time.Time) (int64, error) {
	args := m.Called(ctx, now, readBefore)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work flavour the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DishRepository() ports.DishRepository {
	return m.Called().Get(0).(ports.DishRepository)
}
func (m *MockUoW) AddressRepository() ports.AddressRepository {
	return m.Called().Get(0).(ports.AddressRepository)
}
func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

// newMockUoW allows the deferred Rollback that follows every Commit.
func newMockUoW() *MockUoW {
	uow := new(MockUoW)
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return uow
}

type orderUoWFactory struct{ uow commands.OrderUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type dishUoWFactory struct{ uow commands.DishUoW }

func (f dishUoWFactory) Create() commands.DishUoW { return f.uow }

type addressUoWFactory struct{ uow commands.AddressUoW }

func (f addressUoWFactory) Create() commands.AddressUoW { return f.uow }

type notificationUoWFactory struct{ uow commands.NotificationUoW }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, channel, event string, payload any) error {
	return m.Called(ctx, channel, event, payload).Error(0)
}

type MockOrderStatusNotifier struct{ mock.Mock }

func (m *MockOrderStatusNotifier) DispatchOrderStatus(
	ctx context.Context, o *order.Order, status order.Status,
) (*notification.Notification, error) {
	args := m.Called(ctx, o, status)
	if v := args.Get(0); v != nil {
		return v.(*notification.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Dispatch(
	ctx context.Context, msg notifications.Message,
) (*notification.Notification, error) {
	args := m.Called(ctx, msg)
	if v := args.Get(0); v != nil {
		return v.(*notification.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

// staticAvailability answers GetStatus from a fixed map.
type staticAvailability map[kernel.UUID]seller.Availability

func (s staticAvailability) GetStatus(_ context.Context, sellerID kernel.UUID) seller.Availability {
	if a, ok := s[sellerID]; ok {
		return a
	}
	return seller.Offline(sellerID)
}

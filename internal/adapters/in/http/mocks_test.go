package http_test

import (
	"context"

	"fooddelivery/internal/adapters/out/pgnotify"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"

	"github.com/stretchr/testify/mock"
)

type MockAvailability struct{ mock.Mock }

func (m *MockAvailability) GetStatus(ctx context.Context, sellerID kernel.UUID) seller.Availability {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(seller.Availability)
}

func (m *MockAvailability) SetOnline(ctx context.Context, sellerID kernel.UUID, connectionID string) error {
	args := m.Called(ctx, sellerID, connectionID)
	return args.Error(0)
}

func (m *MockAvailability) SetOffline(ctx context.Context, sellerID kernel.UUID) error {
	args := m.Called(ctx, sellerID)
	return args.Error(0)
}

func (m *MockAvailability) UpdateDashboardStatus(
	ctx context.Context, sellerID kernel.UUID, status seller.DashboardStatus,
) error {
	args := m.Called(ctx, sellerID, status)
	return args.Error(0)
}

func (m *MockAvailability) Heartbeat(ctx context.Context, sellerID kernel.UUID) error {
	args := m.Called(ctx, sellerID)
	return args.Error(0)
}

func (m *MockAvailability) ListOnline() []seller.Availability {
	args := m.Called()
	return args.Get(0).([]seller.Availability)
}

func (m *MockAvailability) BulkStatus(
	ctx context.Context, sellerIDs []kernel.UUID,
) map[kernel.UUID]seller.Availability {
	args := m.Called(ctx, sellerIDs)
	return args.Get(0).(map[kernel.UUID]seller.Availability)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(
	ctx context.Context, cmd commands.CreateOrderCommand,
) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockTransitionOrderHandler struct{ mock.Mock }

func (m *MockTransitionOrderHandler) Handle(
	ctx context.Context, cmd commands.TransitionOrderCommand,
) (commands.TransitionOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionOrderResult), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockListNotificationsHandler struct{ mock.Mock }

func (m *MockListNotificationsHandler) Handle(
	ctx context.Context, query queries.ListNotificationsQuery,
) ([]queries.NotificationView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.NotificationView), args.Error(1)
}

type MockSetDefaultAddressHandler struct{ mock.Mock }

func (m *MockSetDefaultAddressHandler) Handle(ctx context.Context, cmd commands.SetDefaultAddressCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// fakeStream serves a fixed, already closed set of envelopes per channel.
type fakeStream struct {
	envelopes []pgnotify.Envelope
	channel   string
}

func (f *fakeStream) Subscribe(channel string) (<-chan pgnotify.Envelope, func()) {
	f.channel = channel
	ch := make(chan pgnotify.Envelope, len(f.envelopes))
	for _, env := range f.envelopes {
		ch <- env
	}
	close(ch)
	return ch, func() {}
}

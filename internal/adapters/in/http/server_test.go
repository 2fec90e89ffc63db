package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/pgnotify"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOrderID = "ORD-20260101-ABCDEF12"

type fixture struct {
	e                 *echo.Echo
	availability      *MockAvailability
	createOrder       *MockCreateOrderHandler
	transition        *MockTransitionOrderHandler
	getOrder          *MockGetOrderHandler
	listNotifications *MockListNotificationsHandler
	setDefault        *MockSetDefaultAddressHandler
	stream            *fakeStream
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		availability:      new(MockAvailability),
		createOrder:       new(MockCreateOrderHandler),
		transition:        new(MockTransitionOrderHandler),
		getOrder:          new(MockGetOrderHandler),
		listNotifications: new(MockListNotificationsHandler),
		setDefault:        new(MockSetDefaultAddressHandler),
		stream:            &fakeStream{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(f.availability, f.stream, httpadapter.Handlers{
		CreateOrder:       f.createOrder,
		TransitionOrder:   f.transition,
		GetOrder:          f.getOrder,
		ListNotifications: f.listNotifications,
		SetDefaultAddress: f.setDefault,
	}, logger)

	e, err := httpadapter.NewRouter(server, logger)
	require.NoError(t, err)
	f.e = e
	return f
}

func (f *fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func onlineSeller(t *testing.T, id kernel.UUID) seller.Availability {
	t.Helper()
	conn := "conn-1"
	a, err := seller.NewAvailability(id, true, seller.DashboardOnline, time.Now().UTC(), &conn)
	require.NoError(t, err)
	return a
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateOrder_Created(t *testing.T) {
	f := newFixture(t)
	customerID, dishID := kernel.NewUUID(), kernel.NewUUID()
	pricing, err := order.NewPriceBreakdown(200)
	require.NoError(t, err)

	f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.CustomerID() == customerID && cmd.DishID() == dishID && cmd.DeliveryAddress() == "12 MG Road"
	})).Return(commands.CreateOrderResult{
		ID:      kernel.NewUUID(),
		OrderID: testOrderID,
		Status:  order.PendingSeller,
		Pricing: pricing,
	}, nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/orders", servers.CreateOrderRequest{
		CustomerId:      customerID.Google(),
		DishId:          dishID.Google(),
		DeliveryAddress: "12 MG Road",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[servers.CreateOrderResponse](t, rec)
	assert.Equal(t, testOrderID, resp.OrderId)
	assert.Equal(t, servers.OrderStatusPendingSeller, resp.Status)
	assert.Equal(t, int64(10), resp.Pricing.Gst)
	assert.Equal(t, int64(240), resp.Pricing.TotalAmount)
	f.createOrder.AssertExpectations(t)
}

func TestCreateOrder_SellerOffline(t *testing.T) {
	f := newFixture(t)
	sellerID := kernel.NewUUID()
	lastActive := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	f.createOrder.On("Handle", mock.Anything, mock.Anything).Return(commands.CreateOrderResult{},
		errs.NewSellerOfflineError(sellerID.String(), false, "offline", lastActive)).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/orders", servers.CreateOrderRequest{
		CustomerId:      kernel.NewUUID().Google(),
		DishId:          kernel.NewUUID().Google(),
		DeliveryAddress: "12 MG Road",
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decode[servers.Error](t, rec)
	require.NotNil(t, resp.ErrorCode)
	assert.Equal(t, servers.SELLEROFFLINE, *resp.ErrorCode)
	require.NotNil(t, resp.SellerStatus)
	assert.Equal(t, sellerID.Google(), resp.SellerStatus.SellerId)
	assert.False(t, resp.SellerStatus.IsOnline)
	require.NotNil(t, resp.SellerStatus.LastActiveAt)
	assert.True(t, lastActive.Equal(*resp.SellerStatus.LastActiveAt))
}

func TestCreateOrder_MissingFieldsRejectedByContract(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders", map[string]any{"customerId": kernel.NewUUID().String()})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestTransitionOrder_InvalidTransition(t *testing.T) {
	f := newFixture(t)
	f.transition.On("Handle", mock.Anything, mock.Anything).Return(commands.TransitionOrderResult{},
		errs.NewInvalidTransitionError("delivered", "preparing", "seller")).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/orders/"+testOrderID+"/transitions", servers.TransitionRequest{
		Actor:  servers.ActorSeller,
		Status: servers.OrderStatusPreparing,
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[servers.Error](t, rec)
	require.NotNil(t, resp.ErrorCode)
	assert.Equal(t, servers.INVALIDTRANSITION, *resp.ErrorCode)
}

func TestTransitionOrder_PaymentActorOnlyThroughWebhook(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/"+testOrderID+"/transitions", map[string]string{
		"actor":  "payment",
		"status": "payment_completed",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestPaymentWebhook_CompletesPayment(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.ItemSnapshot{Name: "Veg Biryani", Price: 200, Restaurant: "Spice Route"}, "12 MG Road", now)
	require.NoError(t, err)
	_, err = o.Transition(order.ActorSeller, order.SellerAccepted, now)
	require.NoError(t, err)
	_, err = o.Transition(order.ActorPayment, order.PaymentCompleted, now)
	require.NoError(t, err)

	f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
		return cmd.OrderID() == o.OrderID() && cmd.Actor() == order.ActorPayment && cmd.Target() == order.PaymentCompleted
	})).Return(commands.TransitionOrderResult{Order: o, Changed: true}, nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/payments/webhook", servers.PaymentWebhookRequest{OrderId: o.OrderID()})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[servers.TransitionResponse](t, rec)
	assert.True(t, resp.Changed)
	assert.Equal(t, servers.OrderStatusPaymentCompleted, resp.Order.Status)
	assert.Equal(t, servers.PaymentStatusCompleted, resp.Order.PaymentStatus)
	assert.Len(t, resp.Order.StatusHistory, 3)
	f.transition.AssertExpectations(t)
}

func TestGetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.OrderView{}, errs.NewObjectNotFoundError("orderId", testOrderID)).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/orders/"+testOrderID, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/orders/not-an-order", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("store failure is hidden", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.OrderView{}, errs.NewPersistenceError("select order", errors.New("connection reset"))).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/orders/"+testOrderID, nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decode[servers.Error](t, rec)
		assert.NotContains(t, resp.Message, "connection reset")
	})
}

func TestConnectSeller(t *testing.T) {
	f := newFixture(t)
	sellerID := kernel.NewUUID()
	f.availability.On("SetOnline", mock.Anything, sellerID, "conn-1").Return(nil).Once()
	f.availability.On("GetStatus", mock.Anything, sellerID).Return(onlineSeller(t, sellerID)).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/sellers/"+sellerID.String()+"/connect",
		servers.ConnectSellerRequest{ConnectionId: "conn-1"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[servers.SellerStatus](t, rec)
	assert.True(t, resp.IsOnline)
	assert.True(t, resp.CanAcceptOrders)
	assert.Equal(t, servers.DashboardStatusOnline, resp.DashboardStatus)
	f.availability.AssertExpectations(t)
}

func TestSellerHeartbeat(t *testing.T) {
	f := newFixture(t)
	sellerID := kernel.NewUUID()
	f.availability.On("Heartbeat", mock.Anything, sellerID).Return(nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/sellers/"+sellerID.String()+"/heartbeat", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.availability.AssertExpectations(t)
}

func TestBulkSellerStatus(t *testing.T) {
	t.Run("keeps request order and fills unknown sellers", func(t *testing.T) {
		f := newFixture(t)
		known, unknown := kernel.NewUUID(), kernel.NewUUID()
		f.availability.On("BulkStatus", mock.Anything, []kernel.UUID{known, unknown}).
			Return(map[kernel.UUID]seller.Availability{known: onlineSeller(t, known)}).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/sellers/status/bulk", map[string]any{
			"sellerIds": []string{known.String(), unknown.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[[]servers.SellerStatus](t, rec)
		require.Len(t, resp, 2)
		assert.Equal(t, known.Google(), resp[0].SellerId)
		assert.True(t, resp[0].CanAcceptOrders)
		assert.Equal(t, unknown.Google(), resp[1].SellerId)
		assert.False(t, resp[1].IsOnline)
		assert.Equal(t, servers.DashboardStatusOffline, resp[1].DashboardStatus)
		f.availability.AssertExpectations(t)
	})

	t.Run("empty list never reaches the registry", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/sellers/status/bulk", map[string]any{"sellerIds": []string{}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.availability.AssertNotCalled(t, "BulkStatus", mock.Anything, mock.Anything)
	})
}

func TestListNotifications(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		f := newFixture(t)
		userID := kernel.NewUUID()
		f.listNotifications.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListNotificationsQuery) bool {
			return q.UserID() == userID && q.UnreadOnly() && q.Limit() == 10
		})).Return([]queries.NotificationView{{
			ID:          kernel.NewUUID(),
			UserID:      userID,
			Type:        "order_update",
			Title:       "Order Accepted",
			Message:     "Spice Route accepted your order",
			Priority:    "high",
			ActionRoute: "order-tracking",
			CreatedAt:   time.Now().UTC(),
			ExpiresAt:   time.Now().UTC().Add(time.Hour),
		}}, nil).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/users/"+userID.String()+"/notifications?unreadOnly=true&limit=10", nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[[]servers.Notification](t, rec)
		require.Len(t, resp, 1)
		assert.Equal(t, servers.NotificationTypeOrderUpdate, resp[0].Type)
		assert.False(t, resp[0].IsRead)
		f.listNotifications.AssertExpectations(t)
	})

	t.Run("limit above maximum", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/users/"+kernel.NewUUID().String()+"/notifications?limit=500", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.listNotifications.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestSetDefaultAddress_NotFound(t *testing.T) {
	f := newFixture(t)
	userID, addressID := kernel.NewUUID(), kernel.NewUUID()
	f.setDefault.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("addressId", addressID)).Once()

	rec := f.do(t, http.MethodPut,
		"/api/v1/users/"+userID.String()+"/addresses/"+addressID.String()+"/default", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStreamEvents(t *testing.T) {
	f := newFixture(t)
	f.stream.envelopes = []pgnotify.Envelope{
		{Channel: "seller-42", Event: "new-order", Payload: json.RawMessage(`{"orderId":"` + testOrderID + `"}`)},
		{Channel: "seller-42", Event: "new-order", Payload: json.RawMessage(`{"orderId":"ORD-20260101-00000001"}`)},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/events?channel=seller-42", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "seller-42", f.stream.channel)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t,
		"event: new-order\ndata: {\"orderId\":\""+testOrderID+"\"}\n\n"+
			"event: new-order\ndata: {\"orderId\":\"ORD-20260101-00000001\"}\n\n",
		rec.Body.String())
}

func TestStreamEvents_RequiresChannel(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/events", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

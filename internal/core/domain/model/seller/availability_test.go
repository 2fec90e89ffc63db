package seller_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func TestNewAvailability(t *testing.T) {
	sellerID := kernel.NewUUID()
	conn := "socket-1"

	t.Run("should build snapshot", func(t *testing.T) {
		a, err := seller.NewAvailability(sellerID, true, seller.DashboardBusy, now, &conn)

		require.NoError(t, err)
		assert.True(t, a.SellerID().IsEqual(sellerID))
		assert.True(t, a.IsOnline())
		assert.Equal(t, seller.DashboardBusy, a.DashboardStatus())
		assert.Equal(t, now, a.LastActiveAt())
		require.NotNil(t, a.ConnectionID())
		assert.Equal(t, "socket-1", *a.ConnectionID())
	})

	t.Run("should not alias the connection id", func(t *testing.T) {
		a, err := seller.NewAvailability(sellerID, true, seller.DashboardOnline, now, &conn)
		require.NoError(t, err)

		*a.ConnectionID() = "tampered"

		assert.Equal(t, "socket-1", *a.ConnectionID())
	})

	t.Run("should reject invalid dashboard status", func(t *testing.T) {
		_, err := seller.NewAvailability(sellerID, true, "away", now, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid seller id", func(t *testing.T) {
		_, err := seller.NewAvailability(kernel.UUID{}, true, seller.DashboardOnline, now, nil)

		require.Error(t, err)
	})
}

func TestAvailability_CanAcceptOrders(t *testing.T) {
	testCases := []struct {
		isOnline bool
		status   seller.DashboardStatus
		expected bool
	}{
		{true, seller.DashboardOnline, true},
		{true, seller.DashboardBusy, true},
		{true, seller.DashboardOffline, false},
		{false, seller.DashboardOnline, false},
		{false, seller.DashboardBusy, false},
		{false, seller.DashboardOffline, false},
	}

	for _, tc := range testCases {
		a, err := seller.NewAvailability(kernel.NewUUID(), tc.isOnline, tc.status, now, nil)
		require.NoError(t, err)

		assert.Equal(t, tc.expected, a.CanAcceptOrders(), "online=%t status=%s", tc.isOnline, tc.status)
	}
}

func TestAvailability_Mutations(t *testing.T) {
	base := seller.Offline(kernel.NewUUID())

	t.Run("offline synthesized value", func(t *testing.T) {
		assert.False(t, base.IsOnline())
		assert.Equal(t, seller.DashboardOffline, base.DashboardStatus())
		assert.Nil(t, base.ConnectionID())
		assert.False(t, base.CanAcceptOrders())
	})

	t.Run("connected", func(t *testing.T) {
		a := base.Connected("socket-9", now)

		assert.True(t, a.IsOnline())
		assert.Equal(t, seller.DashboardOnline, a.DashboardStatus())
		assert.Equal(t, now, a.LastActiveAt())
		assert.Equal(t, "socket-9", *a.ConnectionID())
		assert.False(t, base.IsOnline(), "original value must not change")
	})

	t.Run("disconnected", func(t *testing.T) {
		a := base.Connected("socket-9", now).Disconnected(now.Add(time.Minute))

		assert.False(t, a.IsOnline())
		assert.Equal(t, seller.DashboardOffline, a.DashboardStatus())
		assert.Nil(t, a.ConnectionID())
		assert.Equal(t, now.Add(time.Minute), a.LastActiveAt())
	})

	t.Run("dashboard status is independent of connectivity", func(t *testing.T) {
		a := base.Connected("socket-9", now).WithDashboardStatus(seller.DashboardOffline)

		assert.True(t, a.IsOnline())
		assert.Equal(t, seller.DashboardOffline, a.DashboardStatus())
		assert.False(t, a.CanAcceptOrders())
	})

	t.Run("inactive since", func(t *testing.T) {
		a := base.Connected("socket-9", now)

		assert.True(t, a.IsInactiveSince(now.Add(time.Second)))
		assert.False(t, a.IsInactiveSince(now))
		assert.False(t, a.Disconnected(now).IsInactiveSince(now.Add(time.Hour)))
	})

	t.Run("touched", func(t *testing.T) {
		a := base.Connected("socket-9", now).Touched(now.Add(2 * time.Minute))

		assert.Equal(t, now.Add(2*time.Minute), a.LastActiveAt())
	})
}

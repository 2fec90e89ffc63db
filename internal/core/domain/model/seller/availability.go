// Package seller models a restaurant seller's availability: raw connectivity
// (isOnline) and the seller-chosen dashboard status, updated independently.
package seller

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DashboardStatus is the operational mode a seller sets on their dashboard.
type DashboardStatus string

const (
	DashboardOnline  DashboardStatus = "online"
	DashboardBusy    DashboardStatus = "busy"
	DashboardOffline DashboardStatus = "offline"
)

// Validate rejects values other than online, busy and offline.
func (s DashboardStatus) Validate() error {
	switch s {
	case DashboardOnline, DashboardBusy, DashboardOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"dashboard status is invalid", fmt.Errorf("%q is not one of online, busy, offline", string(s)))
	}
}

func (s DashboardStatus) String() string {
	return string(s)
}

// Availability is an immutable snapshot of one seller's availability. Every
// mutation returns a new value, so copies handed out of the registry cache can
// never be changed behind its back.
//
// isOnline and dashboardStatus are deliberately not tied together: a connected
// seller may be busy or even dashboard-offline, and a seller that dropped its
// connection keeps its dashboard status until something else changes it.
type Availability struct {
	sellerID        kernel.UUID
	isOnline        bool
	dashboardStatus DashboardStatus
	lastActiveAt    time.Time
	connectionID    *string
}

// NewAvailability builds a snapshot, typically when loading from storage.
func NewAvailability(
	sellerID kernel.UUID,
	isOnline bool,
	dashboardStatus DashboardStatus,
	lastActiveAt time.Time,
	connectionID *string,
) (Availability, error) {
	if err := sellerID.Validate(); err != nil {
		return Availability{}, err
	}
	if err := dashboardStatus.Validate(); err != nil {
		return Availability{}, err
	}
	return Availability{
		sellerID:        sellerID,
		isOnline:        isOnline,
		dashboardStatus: dashboardStatus,
		lastActiveAt:    lastActiveAt,
		connectionID:    copyString(connectionID),
	}, nil
}

// Offline is the synthesized answer for a seller with no availability data.
func Offline(sellerID kernel.UUID) Availability {
	return Availability{sellerID: sellerID, dashboardStatus: DashboardOffline}
}

func (a Availability) SellerID() kernel.UUID { return a.sellerID }
func (a Availability) IsOnline() bool { return a.isOnline }
func (a Availability) DashboardStatus() DashboardStatus { return a.dashboardStatus }
func (a Availability) LastActiveAt() time.Time { return a.lastActiveAt }

// ConnectionID returns a copy of the transient connection id, nil when disconnected.
func (a Availability) ConnectionID() *string {
	return copyString(a.connectionID)
}

// CanAcceptOrders is the gating predicate: connected and not dashboard-offline.
// A busy seller still passes.
func (a Availability) CanAcceptOrders() bool {
	return a.isOnline && a.dashboardStatus != DashboardOffline
}

// IsInactiveSince reports a connected seller whose last activity is before cutoff.
func (a Availability) IsInactiveSince(cutoff time.Time) bool {
	return a.isOnline && a.lastActiveAt.Before(cutoff)
}

// Connected marks the seller online with a fresh connection.
func (a Availability) Connected(connectionID string, at time.Time) Availability {
	a.isOnline = true
	a.dashboardStatus = DashboardOnline
	a.lastActiveAt = at
	a.connectionID = &connectionID
	return a
}

// Disconnected marks the seller offline and drops the connection.
func (a Availability) Disconnected(at time.Time) Availability {
	a.isOnline = false
	a.dashboardStatus = DashboardOffline
	a.lastActiveAt = at
	a.connectionID = nil
	return a
}

// WithDashboardStatus changes only the dashboard status.
func (a Availability) WithDashboardStatus(status DashboardStatus) Availability {
	a.dashboardStatus = status
	return a
}

// Touched refreshes lastActiveAt.
func (a Availability) Touched(at time.Time) Availability {
	a.lastActiveAt = at
	return a
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

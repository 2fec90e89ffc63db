package notification

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DefaultRetention is how long a notification lives before it may be deleted.
const DefaultRetention = 30 * 24 * time.Hour

// MaxContentBytes caps title, message and JSON-encoded metadata together. The
// pushed record travels in a PostgreSQL NOTIFY payload, which is limited to
// 8000 bytes including the other fields and the event envelope.
const MaxContentBytes = 6000

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Type classifies what triggered a notification.
type Type string

const (
	TypeOrderUpdate    Type = "order_update"
	TypePromotional    Type = "promotional"
	TypeRecommendation Type = "recommendation"
	TypeNewRestaurant  Type = "new_restaurant"
	TypeSystem         Type = "system"
)

func (t Type) Validate() error {
	switch t {
	case TypeOrderUpdate, TypePromotional, TypeRecommendation, TypeNewRestaurant, TypeSystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification type is invalid", fmt.Errorf("%q is not a valid type", string(t)))
	}
}

// Priority drives how prominently a client renders a notification.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%q is not a valid priority", string(p)))
	}
}

// Notification is a persisted, user-visible message.
type Notification struct {
	id            kernel.UUID
	userID        kernel.UUID
	typ           Type
	title         string
	message       string
	metadata      map[string]any
	priority      Priority
	actionRoute   string
	read          bool
	readAt        *time.Time
	createdAt     time.Time
	expiresAt     time.Time
	isConstructed bool
}

// NewNotification creates an unread notification expiring DefaultRetention after now.
func NewNotification(
	id, userID kernel.UUID,
	typ Type,
	title, message string,
	metadata map[string]any,
	priority Priority,
	actionRoute string,
	now time.Time,
) (*Notification, error) {
	var problems []error
	problems = append(problems, id.Validate(), userID.Validate(), typ.Validate(), priority.Validate())
	if strings.TrimSpace(title) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	}
	if strings.TrimSpace(message) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("message"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		userID:        userID,
		typ:           typ,
		title:         title,
		message:       message,
		metadata:      maps.Clone(metadata),
		priority:      priority,
		actionRoute:   actionRoute,
		createdAt:     now,
		expiresAt:     now.Add(DefaultRetention),
		isConstructed: true,
	}, nil
}

// Snapshot carries persisted state for RestoreNotification.
type Snapshot struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Type        Type
	Title       string
	Message     string
	Metadata    map[string]any
	Priority    Priority
	ActionRoute string
	Read        bool
	ReadAt      *time.Time
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// RestoreNotification rebuilds a notification loaded from storage.
func RestoreNotification(s Snapshot) (*Notification, error) {
	if err := errors.Join(s.ID.Validate(), s.UserID.Validate(), s.Type.Validate(), s.Priority.Validate()); err != nil {
		return nil, err
	}
	return &Notification{
		id:            s.ID,
		userID:        s.UserID,
		typ:           s.Type,
		title:         s.Title,
		message:       s.Message,
		metadata:      maps.Clone(s.Metadata),
		priority:      s.Priority,
		actionRoute:   s.ActionRoute,
		read:          s.Read,
		readAt:        s.ReadAt,
		createdAt:     s.CreatedAt,
		expiresAt:     s.ExpiresAt,
		isConstructed: true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID { return n.id }
func (n *Notification) UserID() kernel.UUID { return n.userID }
func (n *Notification) Type() Type { return n.typ }
func (n *Notification) Title() string { return n.title }
func (n *Notification) Message() string { return n.message }
func (n *Notification) Metadata() map[string]any { return maps.Clone(n.metadata) }
func (n *Notification) Priority() Priority { return n.priority }
func (n *Notification) ActionRoute() string { return n.actionRoute }
func (n *Notification) IsRead() bool { return n.read }
func (n *Notification) ReadAt() *time.Time { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
func (n *Notification) ExpiresAt() time.Time { return n.expiresAt }

// MarkRead sets read and readAt once; marking an already read notification is a no-op.
func (n *Notification) MarkRead(at time.Time) bool {
	if n.read {
		return false
	}
	n.read = true
	n.readAt = &at
	return true
}

// IsExpired reports whether the retention window has passed.
func (n *Notification) IsExpired(now time.Time) bool {
	return !now.Before(n.expiresAt)
}

// internal/domain/models/notification.go
package models

import "fmt"

// NotificationType classifies a notification entry.
type NotificationType string

const (
	NotificationStatusChange NotificationType = "status_change"
	NotificationInfo         NotificationType = "info"
	NotificationCancel       NotificationType = "cancel"
)

// Notification is read-only activity feed data.
type Notification struct {
	ID            string           `bson:"id" json:"id"`
	ActorName     string           `bson:"actor_name" json:"actor_name"`
	ActorInitials string           `bson:"actor_initials" json:"actor_initials"`
	ActorColor    string           `bson:"actor_color" json:"actor_color"`
	ActionText    string           `bson:"action_text" json:"action_text"`
	TargetID      string           `bson:"target_id" json:"target_id"` // e.g. WO-0071
	Time          string           `bson:"time" json:"time"`
	IsUnread      bool             `bson:"is_unread" json:"is_unread"`
	Type          NotificationType `bson:"type" json:"type"`
	FromStatus    Status           `bson:"from_status,omitempty" json:"from_status,omitempty"`
	ToStatus      Status           `bson:"to_status,omitempty" json:"to_status,omitempty"`
	HighlightText string           `bson:"highlight_text,omitempty" json:"highlight_text,omitempty"`
}

// Validate checks the type and, for status changes, that both statuses are present.
func (n Notification) Validate() error {
	switch n.Type {
	case NotificationInfo, NotificationCancel:
		return nil
	case NotificationStatusChange:
		if !n.FromStatus.Valid() || !n.ToStatus.Valid() {
			return fmt.Errorf("notification %s: status_change requires from and to status", n.ID)
		}
		return nil
	}
	return fmt.Errorf("notification %s: unknown type %q", n.ID, n.Type)
}

// IsStatusChange reports whether the pill pair should be rendered.
func (n Notification) IsStatusChange() bool {
	return n.Type == NotificationStatusChange && n.FromStatus != "" && n.ToStatus != ""
}

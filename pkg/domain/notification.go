package domain

import "time"

// NotificationType is a Mastodon notification event type
type NotificationType string

// notification types the bot acts on, other types are ignored
const (
	NotificationMention NotificationType = "mention"
	NotificationFollow  NotificationType = "follow"
	NotificationStatus  NotificationType = "status"
)

// Notification represents an event delivered to the bot's account
type Notification struct {
	ID        string
	Type      NotificationType
	Account   Account
	Status    *Status // nil for follow events
	CreatedAt time.Time
}

// Actionable reports whether the notification type is one the bot handles
func (n Notification) Actionable() bool {
	switch n.Type {
	case NotificationMention, NotificationFollow, NotificationStatus:
		return true
	}
	return false
}

package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotifCheckInReminder  NotificationType = "checkin_reminder"
	NotifCheckOutReminder NotificationType = "checkout_reminder"
	NotifCustomReminder   NotificationType = "custom_reminder"
)

// Notification is a delivered reminder persisted for the admin feed.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Tag       string           `json:"tag,omitempty"`
	Data      json.RawMessage  `json:"data,omitempty" gorm:"type:jsonb"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

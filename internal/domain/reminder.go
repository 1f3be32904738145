package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReminderKind string

const (
	ReminderCheckIn  ReminderKind = "checkin"
	ReminderCheckOut ReminderKind = "checkout"
	ReminderCustom   ReminderKind = "custom"
)

// Reminder is a scheduled, at-most-once notification tied to a booking.
// The sent flag flips false -> true exactly once, on delivery.
type Reminder struct {
	ID          uuid.UUID    `json:"id"`
	BookingID   int64        `json:"booking_id"`
	Kind        ReminderKind `json:"kind"`
	Title       string       `json:"title"`
	Message     string       `json:"message"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	IsSent      bool         `json:"is_sent"`
	CreatedAt   time.Time    `json:"created_at"`
}

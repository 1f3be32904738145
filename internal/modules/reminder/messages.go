package reminder

import (
	"fmt"
	"time"

	"morent/internal/domain"
)

const dateLayout = "2006-01-02"

const (
	titleCheckIn  = "Напоминание о заезде"
	titleCheckOut = "Напоминание о выезде"
	titleUpcoming = "Скоро заезд"
)

// dateKey collapses a timestamp to its local calendar day. All "is it today"
// decisions in this package are whole-date string comparisons.
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// checkInMessage picks the wording for a check-in reminder. It re-derives
// today and tomorrow from now itself: a check-in date matching neither is a
// no-op, reminders are only meaningful within this 2-day window.
func checkInMessage(b domain.Booking, apt domain.Apartment, now time.Time) (title, body string, ok bool) {
	switch dateKey(b.CheckIn) {
	case dateKey(now.AddDate(0, 0, 1)):
		return titleCheckIn,
			fmt.Sprintf("Завтра заезд гостя %s в %s", b.GuestName, apt.Title),
			true
	case dateKey(now):
		return titleCheckIn,
			fmt.Sprintf("Сегодня заезд гостя %s в %s. Добро пожаловать!", b.GuestName, apt.Title),
			true
	}
	return "", "", false
}

func checkOutMessage(b domain.Booking, apt domain.Apartment) (title, body string) {
	return titleCheckOut,
		fmt.Sprintf("Завтра выезд гостя %s из %s", b.GuestName, apt.Title)
}

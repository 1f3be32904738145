package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"morent/internal/domain"
	"morent/internal/modules/notify"
)

// Engine decides which notifications are due right now and pushes them
// through the Sender. Delivery is best-effort: failures are logged and never
// propagate to the caller.
type Engine struct {
	store  *Store
	sender Sender
	now    func() time.Time
}

func NewEngine(store *Store, sender Sender) *Engine {
	return &Engine{
		store:  store,
		sender: sender,
		now:    time.Now,
	}
}

// ScanAndNotify walks the full booking set and fires the reminders that are
// due today. A booking whose apartment is not in the set is skipped silently.
func (e *Engine) ScanAndNotify(ctx context.Context, bookings []domain.Booking, apartments []domain.Apartment) {
	index := make(map[int64]domain.Apartment, len(apartments))
	for _, a := range apartments {
		index[a.ID] = a
	}

	now := e.now()
	today := dateKey(now)
	tomorrow := dateKey(now.AddDate(0, 0, 1))

	for _, b := range bookings {
		apt, ok := index[b.ApartmentID]
		if !ok {
			// нет квартиры, пропускаем
			continue
		}

		if in := dateKey(b.CheckIn); in == today || in == tomorrow {
			e.notifyCheckIn(ctx, b, apt)
		}
		if dateKey(b.CheckOut) == tomorrow {
			e.notifyCheckOut(ctx, b, apt)
		}
	}
}

func (e *Engine) notifyCheckIn(ctx context.Context, b domain.Booking, apt domain.Apartment) {
	title, body, ok := checkInMessage(b, apt, e.now())
	if !ok {
		return
	}

	tag := fmt.Sprintf("checkin-%d-%s", b.ID, dateKey(b.CheckIn))
	if out := e.sender.Show(ctx, title, body, tag, bookingData(b)); out != notify.OutcomeShown {
		log.Printf("reminder: check-in notification for booking %d not delivered: %s", b.ID, out)
	}
}

func (e *Engine) notifyCheckOut(ctx context.Context, b domain.Booking, apt domain.Apartment) {
	title, body := checkOutMessage(b, apt)

	tag := fmt.Sprintf("checkout-%d-%s", b.ID, dateKey(b.CheckOut))
	if out := e.sender.Show(ctx, title, body, tag, bookingData(b)); out != notify.OutcomeShown {
		log.Printf("reminder: checkout notification for booking %d not delivered: %s", b.ID, out)
	}
}

func bookingData(b domain.Booking) map[string]any {
	return map[string]any{
		"booking_id":   b.ID,
		"apartment_id": b.ApartmentID,
		"slug":         b.Slug,
	}
}

// BuildDerivedReminders synthesizes the fixed reminder schedule for one
// booking: 3 days before check-in, 1 day before, day of check-in, and 1 day
// before check-out. Pure: it never checks the dates against the clock.
func BuildDerivedReminders(b domain.Booking, apt domain.Apartment) []domain.Reminder {
	created := time.Now()

	mk := func(kind domain.ReminderKind, title, msg string, at time.Time) domain.Reminder {
		return domain.Reminder{
			ID:          uuid.New(),
			BookingID:   b.ID,
			Kind:        kind,
			Title:       title,
			Message:     msg,
			ScheduledAt: at,
			IsSent:      false,
			CreatedAt:   created,
		}
	}

	return []domain.Reminder{
		mk(domain.ReminderCheckIn, titleUpcoming,
			fmt.Sprintf("Через 3 дня заезд гостя %s в %s", b.GuestName, apt.Title),
			b.CheckIn.AddDate(0, 0, -3)),
		mk(domain.ReminderCheckIn, titleCheckIn,
			fmt.Sprintf("Завтра заезд гостя %s в %s", b.GuestName, apt.Title),
			b.CheckIn.AddDate(0, 0, -1)),
		mk(domain.ReminderCheckIn, titleCheckIn,
			fmt.Sprintf("Сегодня заезд гостя %s в %s. Добро пожаловать!", b.GuestName, apt.Title),
			b.CheckIn),
		mk(domain.ReminderCheckOut, titleCheckOut,
			fmt.Sprintf("Завтра выезд гостя %s из %s", b.GuestName, apt.Title),
			b.CheckOut.AddDate(0, 0, -1)),
	}
}

// PlanForBooking upserts the derived schedule for a created or edited
// booking. Upsert keys on (booking, kind, scheduled date), so repeated edits
// do not pile up duplicates.
func (e *Engine) PlanForBooking(ctx context.Context, b domain.Booking, apt domain.Apartment) error {
	for _, r := range BuildDerivedReminders(b, apt) {
		if err := e.store.Upsert(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// AddCustom appends an ad-hoc reminder; it is delivered by the scheduler
// once its time passes.
func (e *Engine) AddCustom(ctx context.Context, bookingID int64, title, message string, at time.Time) (domain.Reminder, error) {
	r := domain.Reminder{
		ID:          uuid.New(),
		BookingID:   bookingID,
		Kind:        domain.ReminderCustom,
		Title:       title,
		Message:     message,
		ScheduledAt: at,
		CreatedAt:   time.Now(),
	}
	if err := e.store.Append(ctx, r); err != nil {
		return domain.Reminder{}, err
	}
	return r, nil
}

// deliverDue sends every unsent custom reminder whose scheduled time has
// passed and flips its sent flag. Derived check-in/check-out reminders are
// delivered by ScanAndNotify, not here.
func (e *Engine) deliverDue(ctx context.Context) {
	list, err := e.store.Load(ctx)
	if err != nil {
		log.Printf("reminder: load for due delivery: %v", err)
		return
	}

	now := e.now()
	changed := false
	for i, r := range list {
		if r.Kind != domain.ReminderCustom || r.IsSent || r.ScheduledAt.After(now) {
			continue
		}

		tag := fmt.Sprintf("custom-%s", r.ID)
		out := e.sender.Show(ctx, r.Title, r.Message, tag, map[string]any{"booking_id": r.BookingID})
		if out != notify.OutcomeShown {
			log.Printf("reminder: custom reminder %s not delivered: %s", r.ID, out)
			continue
		}

		list[i].IsSent = true
		changed = true
	}

	if changed {
		if err := e.store.Save(ctx, list); err != nil {
			log.Printf("reminder: persist sent flags: %v", err)
		}
	}
}

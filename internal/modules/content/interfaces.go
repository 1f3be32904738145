package content

import (
	"context"

	"morent/internal/domain"
)

type ApartmentRepository interface {
	GetAll(ctx context.Context) ([]domain.Apartment, error)
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
	Create(ctx context.Context, a *domain.Apartment) error
	Update(ctx context.Context, a *domain.Apartment) error
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

// ReminderPlanner synthesizes the derived reminder schedule for a booking.
type ReminderPlanner interface {
	PlanForBooking(ctx context.Context, b domain.Booking, apt domain.Apartment) error
}

// ScheduleRefresher re-triggers the reminder pipeline after data changes.
type ScheduleRefresher interface {
	Refresh()
}

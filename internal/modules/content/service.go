package content

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"

	"morent/internal/domain"
	"morent/internal/pkg/slug"
	"morent/internal/pkg/validator"
	"morent/internal/repository"
)

// Service is the content-store surface: CRUD over apartments and bookings,
// plus the orchestration that keeps the reminder schedule in sync with the
// data set.
type Service struct {
	apartments ApartmentRepository
	bookings   BookingRepository
	planner    ReminderPlanner
	refresher  ScheduleRefresher
}

func NewService(apartments ApartmentRepository, bookings BookingRepository, planner ReminderPlanner) *Service {
	return &Service{
		apartments: apartments,
		bookings:   bookings,
		planner:    planner,
	}
}

// AttachScheduler wires the refresher after the scheduler is built (the
// scheduler itself reads data through this service).
func (s *Service) AttachScheduler(r ScheduleRefresher) {
	s.refresher = r
}

func (s *Service) notifyChanged() {
	if s.refresher != nil {
		s.refresher.Refresh()
	}
}

// Snapshot returns the live booking/apartment lists for a scheduler run.
func (s *Service) Snapshot(ctx context.Context) ([]domain.Booking, []domain.Apartment, error) {
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	apartments, err := s.apartments.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return bookings, apartments, nil
}

// ---- Apartments ----

func (s *Service) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	return s.apartments.GetAll(ctx)
}

func (s *Service) GetApartment(ctx context.Context, id int64) (*domain.Apartment, error) {
	a, err := s.apartments.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return a, err
}

func (s *Service) CreateApartment(ctx context.Context, req ApartmentRequest) (*domain.Apartment, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	a := apartmentFromRequest(req)
	if err := s.apartments.Create(ctx, a); err != nil {
		return nil, err
	}

	s.notifyChanged()
	return a, nil
}

func (s *Service) UpdateApartment(ctx context.Context, id int64, req ApartmentRequest) (*domain.Apartment, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	a := apartmentFromRequest(req)
	a.ID = id
	if err := s.apartments.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.notifyChanged()
	return s.apartments.GetByID(ctx, id)
}

func (s *Service) DeleteApartment(ctx context.Context, id int64) error {
	if err := s.apartments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.notifyChanged()
	return nil
}

// ---- Bookings ----

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *Service) GetBySlug(ctx context.Context, token string) (*domain.Booking, error) {
	b, err := s.bookings.GetBySlug(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *Service) CreateBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		GuestName:   req.GuestName,
		GuestPhone:  req.GuestPhone,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		ApartmentID: req.ApartmentID,
		Notes:       req.Notes,
		Slug:        slug.New(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrSlugConflict
		}
		return nil, err
	}

	s.planReminders(ctx, *b)
	s.notifyChanged()
	return b, nil
}

func (s *Service) UpdateBooking(ctx context.Context, id int64, req BookingRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.GuestName = req.GuestName
	existing.GuestPhone = req.GuestPhone
	existing.CheckIn = req.CheckIn
	existing.CheckOut = req.CheckOut
	existing.ApartmentID = req.ApartmentID
	existing.Notes = req.Notes

	if err := s.bookings.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.planReminders(ctx, *existing)
	s.notifyChanged()
	return existing, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.notifyChanged()
	return nil
}

// planReminders rebuilds the derived schedule for the booking. Best-effort:
// a booking without a resolvable apartment is skipped, errors are logged.
func (s *Service) planReminders(ctx context.Context, b domain.Booking) {
	if s.planner == nil {
		return
	}

	apt, err := s.apartments.GetByID(ctx, b.ApartmentID)
	if err != nil {
		return
	}

	if err := s.planner.PlanForBooking(ctx, b, *apt); err != nil {
		log.Printf("content: plan reminders for booking %d: %v", b.ID, err)
	}
}

func apartmentFromRequest(req ApartmentRequest) *domain.Apartment {
	return &domain.Apartment{
		Title:           req.Title,
		Address:         req.Address,
		Building:        req.Building,
		Unit:            req.Unit,
		WifiName:        req.WifiName,
		WifiPassword:    req.WifiPassword,
		DoorCode:        req.DoorCode,
		BuildingCode:    req.BuildingCode,
		FAQ:             req.FAQ,
		ManagerName:     req.ManagerName,
		ManagerPhone:    req.ManagerPhone,
		ManagerTelegram: req.ManagerTelegram,
		Photos:          req.Photos,
	}
}

package guest

import (
	"context"
	"errors"

	"morent/internal/domain"
	"morent/internal/repository"
)

var ErrNotFound = errors.New("booking not found")

// BookingResolver resolves a slug to the booking with its apartment loaded.
type BookingResolver interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Booking, error)
}

type Service struct {
	bookings BookingResolver
}

func NewService(bookings BookingResolver) *Service {
	return &Service{bookings: bookings}
}

// PageBySlug builds the guest page payload. An unknown slug, or a booking
// whose apartment has disappeared, is a plain not-found: slugs are opaque,
// nothing leaks about why.
func (s *Service) PageBySlug(ctx context.Context, slug string) (*Page, error) {
	b, err := s.bookings.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Apartment == nil {
		return nil, ErrNotFound
	}

	apt := b.Apartment
	return &Page{
		GuestName: b.GuestName,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Apartment: ApartmentInfo{
			Title:    apt.Title,
			Address:  apt.Address,
			Building: apt.Building,
			Unit:     apt.Unit,
		},
		Wifi: WifiInfo{
			Name:     apt.WifiName,
			Password: apt.WifiPassword,
		},
		Access: AccessInfo{
			DoorCode:     apt.DoorCode,
			BuildingCode: apt.BuildingCode,
		},
		FAQ: apt.FAQ,
		Manager: ManagerContact{
			Name:     apt.ManagerName,
			Phone:    apt.ManagerPhone,
			Telegram: apt.ManagerTelegram,
		},
		Photos: apt.Photos,
	}, nil
}

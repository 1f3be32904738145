package domain

import "time"

// Booking is a guest stay in an apartment. Slug is the opaque token used to
// build the public guest page URL (/booking/<slug>); unique across bookings.
type Booking struct {
	ID          int64     `json:"id"`
	GuestName   string    `json:"guest_name" validate:"required"`
	GuestPhone  string    `json:"guest_phone,omitempty"`
	CheckIn     time.Time `json:"check_in" validate:"required"`
	CheckOut    time.Time `json:"check_out" validate:"required"`
	ApartmentID int64     `json:"apartment_id" validate:"required"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Связи
	Apartment *Apartment `json:"apartment,omitempty" gorm:"foreignKey:ApartmentID"`
}

package domain

import "time"

// Apartment is a rentable unit. Bookings reference it by id but do not own it.
type Apartment struct {
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Building string `json:"building,omitempty"`
	Unit     string `json:"unit,omitempty"`

	WifiName     string `json:"wifi_name,omitempty"`
	WifiPassword string `json:"wifi_password,omitempty"`
	DoorCode     string `json:"door_code,omitempty"`
	BuildingCode string `json:"building_code,omitempty"`

	FAQ             string `json:"faq,omitempty" gorm:"type:text"`
	ManagerName     string `json:"manager_name,omitempty"`
	ManagerPhone    string `json:"manager_phone,omitempty"`
	ManagerTelegram string `json:"manager_telegram,omitempty"`

	Photos []string `json:"photos,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

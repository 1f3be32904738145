package content

import "time"

type ApartmentRequest struct {
	Title    string `json:"title" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Building string `json:"building"`
	Unit     string `json:"unit"`

	WifiName     string `json:"wifi_name"`
	WifiPassword string `json:"wifi_password"`
	DoorCode     string `json:"door_code"`
	BuildingCode string `json:"building_code"`

	FAQ             string   `json:"faq"`
	ManagerName     string   `json:"manager_name"`
	ManagerPhone    string   `json:"manager_phone"`
	ManagerTelegram string   `json:"manager_telegram"`
	Photos          []string `json:"photos"`
}

type BookingRequest struct {
	GuestName   string    `json:"guest_name" validate:"required"`
	GuestPhone  string    `json:"guest_phone"`
	CheckIn     time.Time `json:"check_in" validate:"required"`
	CheckOut    time.Time `json:"check_out" validate:"required"`
	ApartmentID int64     `json:"apartment_id" validate:"required,gt=0"`
	Notes       string    `json:"notes"`
}

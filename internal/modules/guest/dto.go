package guest

import "time"

// Page is everything a guest sees on /booking/<slug>.
type Page struct {
	GuestName string    `json:"guest_name"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`

	Apartment ApartmentInfo  `json:"apartment"`
	Wifi      WifiInfo       `json:"wifi"`
	Access    AccessInfo     `json:"access"`
	FAQ       string         `json:"faq,omitempty"`
	Manager   ManagerContact `json:"manager"`
	Photos    []string       `json:"photos,omitempty"`
}

type ApartmentInfo struct {
	Title    string `json:"title"`
	Address  string `json:"address"`
	Building string `json:"building,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

type WifiInfo struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

type AccessInfo struct {
	DoorCode     string `json:"door_code,omitempty"`
	BuildingCode string `json:"building_code,omitempty"`
}

type ManagerContact struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Telegram string `json:"telegram,omitempty"`
}

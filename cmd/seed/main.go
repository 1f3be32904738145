package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"morent/internal/database"
	"morent/internal/domain"
	"morent/internal/pkg/slug"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "morent.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM apartments")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM kv_entries")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@morent.app",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Администратор",
	}
	db.Create(&admin)

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		Email:        "manager@morent.app",
		PasswordHash: string(managerHash),
		Role:         domain.RoleManager,
		Name:         "Менеджер",
	}
	db.Create(&manager)

	// ================== APARTMENTS ==================
	log.Println("Creating apartments...")

	morent := domain.Apartment{
		Title:           "Апартаменты Морент",
		Address:         "ул. Ленина",
		Building:        "12",
		Unit:            "45",
		WifiName:        "Morent_Guest",
		WifiPassword:    "welcome2024",
		DoorCode:        "4521#",
		BuildingCode:    "45В21",
		FAQ:             "Заезд с 14:00, выезд до 12:00. Парковка во дворе бесплатная.",
		ManagerName:     "Анна",
		ManagerPhone:    "+7 900 123-45-67",
		ManagerTelegram: "@morent_anna",
		Photos:          []string{"https://cdn.morent.app/apt1/main.jpg"},
	}
	db.Create(&morent)

	loft := domain.Apartment{
		Title:        "Лофт на Набережной",
		Address:      "Набережная",
		Building:     "3",
		Unit:         "7",
		WifiName:     "Loft_WiFi",
		WifiPassword: "riverside",
		DoorCode:     "1188#",
		ManagerName:  "Анна",
		ManagerPhone: "+7 900 123-45-67",
	}
	db.Create(&loft)

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	today := startOfDay(time.Now())

	bookings := []domain.Booking{
		{
			GuestName:   "Иван Иванов",
			GuestPhone:  "+7 911 222-33-44",
			CheckIn:     today.AddDate(0, 0, 1),
			CheckOut:    today.AddDate(0, 0, 5),
			ApartmentID: morent.ID,
			Slug:        slug.New(),
		},
		{
			GuestName:   "Мария Петрова",
			CheckIn:     today.AddDate(0, 0, -2),
			CheckOut:    today.AddDate(0, 0, 1),
			ApartmentID: loft.ID,
			Slug:        slug.New(),
		},
		{
			GuestName:   "Олег Сидоров",
			CheckIn:     today.AddDate(0, 0, -20),
			CheckOut:    today.AddDate(0, 0, -15),
			ApartmentID: morent.ID,
			Slug:        slug.New(),
		},
	}

	for i := range bookings {
		db.Create(&bookings[i])
		log.Printf("  guest page: /booking/%s (%s)", bookings[i].Slug, bookings[i].GuestName)
	}

	log.Println("Seed completed")
}

// startOfDay returns midnight of t's calendar day in t's own location, so
// the demo bookings land on the expected local day regardless of timezone.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

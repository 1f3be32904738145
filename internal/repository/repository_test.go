package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"morent/internal/database"
	"morent/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Apartment{}, &domain.Booking{}))
	return db
}

func TestBookingUpdate_ClearsOptionalFields(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := &domain.Booking{
		GuestName:  "Иван Иванов",
		GuestPhone: "+7 911 222-33-44",
		CheckIn:    time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC),
		Slug:       "deadbeefdeadbeef",
		Notes:      "ранний заезд",
	}
	require.NoError(t, repo.Create(ctx, b))

	b.GuestPhone = ""
	b.Notes = ""
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "", got.GuestPhone)
	require.Equal(t, "", got.Notes)
	require.Equal(t, "Иван Иванов", got.GuestName)
	require.Equal(t, "deadbeefdeadbeef", got.Slug)
}

func TestApartmentUpdate_ClearsOptionalFields(t *testing.T) {
	db := setupDB(t)
	repo := NewApartmentRepository(db)
	ctx := context.Background()

	a := &domain.Apartment{
		Title:        "Апартаменты Морент",
		Address:      "ул. Ленина",
		WifiPassword: "welcome2024",
		DoorCode:     "4521#",
		FAQ:          "Заезд с 14:00",
	}
	require.NoError(t, repo.Create(ctx, a))

	a.WifiPassword = ""
	a.DoorCode = ""
	a.FAQ = ""
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "", got.WifiPassword)
	require.Equal(t, "", got.DoorCode)
	require.Equal(t, "", got.FAQ)
	require.Equal(t, "Апартаменты Морент", got.Title)
}

func TestBookingUpdate_MissingRow(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)

	err := repo.Update(context.Background(), &domain.Booking{
		ID:        999,
		GuestName: "Призрак",
		CheckIn:   time.Now(),
		CheckOut:  time.Now(),
		Slug:      "0000000000000000",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

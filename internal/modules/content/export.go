package content

import (
	"encoding/csv"
	"io"
	"strconv"

	"morent/internal/domain"
)

var csvHeader = []string{
	"id", "guest_name", "guest_phone", "check_in", "check_out",
	"apartment", "slug", "created_at",
}

// WriteBookingsCSV renders the booking list as CSV. Apartment ids are
// resolved to titles through the supplied map; unknown ids stay blank.
func WriteBookingsCSV(w io.Writer, bookings []domain.Booking, apartmentTitles map[int64]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, b := range bookings {
		rec := []string{
			strconv.FormatInt(b.ID, 10),
			b.GuestName,
			b.GuestPhone,
			b.CheckIn.Format("2006-01-02"),
			b.CheckOut.Format("2006-01-02"),
			apartmentTitles[b.ApartmentID],
			b.Slug,
			b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

package booking

import (
	"testing"
	"time"

	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

func TestCountByStatus(t *testing.T) {
	bookings := []models.Booking{
		{Status: string(StatusPending)},
		{Status: string(StatusPending)},
		{Status: string(StatusConfirmed)},
		{Status: string(StatusCancelled)},
		{Status: string(StatusConfirmed)},
	}

	stats := CountByStatus(bookings)

	if stats.TotalBookings != 5 {
		t.Fatalf("TotalBookings = %d, want 5", stats.TotalBookings)
	}
	if stats.PendingBookings != 2 || stats.ConfirmedBookings != 2 || stats.CancelledBookings != 1 {
		t.Fatalf("counts = %d/%d/%d, want 2/2/1",
			stats.PendingBookings, stats.ConfirmedBookings, stats.CancelledBookings)
	}

	sum := stats.PendingBookings + stats.ConfirmedBookings + stats.CancelledBookings
	if sum != stats.TotalBookings {
		t.Fatalf("status counts sum to %d, total is %d", sum, stats.TotalBookings)
	}
}

func TestDailySeries(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}

	bookings := []models.Booking{
		{ID: 1, Date: day("2026-09-02"), TotalPrice: 50},
		{ID: 2, Date: day("2026-09-01"), TotalPrice: 80},
		{ID: 3, Date: day("2026-09-02"), TotalPrice: 20},
		{ID: 4, TotalPrice: 100}, // zero date, must be skipped
	}

	rows, skipped := DailySeries(bookings)

	if len(skipped) != 1 || skipped[0] != 4 {
		t.Fatalf("skipped = %v, want [4]", skipped)
	}

	want := []DailyReportRow{
		{Date: "2026-09-01", Bookings: 1, Revenue: 80},
		{Date: "2026-09-02", Bookings: 2, Revenue: 70},
	}

	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i] != w {
			t.Fatalf("row %d = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestGroupByCustomer(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{UserEmail: "b@example.com", PersonalName: "Bea", PersonalPhone: "222", CreatedAt: base},
		{UserEmail: "a@example.com", PersonalName: "Ana", PersonalPhone: "111", CreatedAt: base.Add(time.Hour)},
		{UserEmail: "b@example.com", PersonalName: "Bea", PersonalPhone: "222", CreatedAt: base.Add(2 * time.Hour)},
	}

	customers := GroupByCustomer(bookings)

	if len(customers) != 2 {
		t.Fatalf("got %d customers, want 2", len(customers))
	}

	if customers[0].Email != "a@example.com" || customers[1].Email != "b@example.com" {
		t.Fatalf("customers not sorted by email: %v, %v", customers[0].Email, customers[1].Email)
	}

	bea := customers[1]
	if bea.BookingCount != 2 {
		t.Fatalf("BookingCount = %d, want 2", bea.BookingCount)
	}
	if !bea.LastBooking.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("LastBooking = %v, want %v", bea.LastBooking, base.Add(2*time.Hour))
	}
	if bea.Name != "Bea" || bea.Phone != "222" {
		t.Fatalf("details = %q/%q, want Bea/222", bea.Name, bea.Phone)
	}
}

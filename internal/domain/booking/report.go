package booking

import (
	"sort"
	"time"

	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// ===============================
// Dashboard counts
// ===============================

type DashboardStats struct {
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
}

// CountByStatus partitions the given bookings by status. Callers pass
// the active set only; the counts are recomputed on every fetch rather
// than maintained incrementally.
func CountByStatus(bookings []models.Booking) DashboardStats {
	stats := DashboardStats{TotalBookings: len(bookings)}

	for _, b := range bookings {
		switch Status(b.Status) {
		case StatusPending:
			stats.PendingBookings++
		case StatusConfirmed:
			stats.ConfirmedBookings++
		case StatusCancelled:
			stats.CancelledBookings++
		}
	}

	return stats
}

// ===============================
// Daily series
// ===============================

type DailyReportRow struct {
	Date     string  `json:"date"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// DailySeries groups bookings by the UTC calendar date of their
// appointment, accumulating a count and the summed recorded price per
// date. Bookings without a usable date are skipped and reported back so
// the caller can log them for operator attention. Rows come out sorted
// by date ascending.
func DailySeries(bookings []models.Booking) (rows []DailyReportRow, skipped []uint) {
	type bucket struct {
		count   int
		revenue float64
	}

	buckets := map[string]*bucket{}

	for _, b := range bookings {
		if b.Date.IsZero() {
			skipped = append(skipped, b.ID)
			continue
		}

		key := b.Date.UTC().Format("2006-01-02")
		bk := buckets[key]
		if bk == nil {
			bk = &bucket{}
			buckets[key] = bk
		}
		bk.count++
		bk.revenue += b.TotalPrice
	}

	rows = make([]DailyReportRow, 0, len(buckets))
	for date, bk := range buckets {
		rows = append(rows, DailyReportRow{
			Date:     date,
			Bookings: bk.count,
			Revenue:  bk.revenue,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	return rows, skipped
}

// ===============================
// Customers roll-up
// ===============================

type CustomerSummary struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	BookingCount int       `json:"booking_count"`
	LastBooking  time.Time `json:"last_booking"`
}

// GroupByCustomer derives the customer list from the active booking set.
// There is no separate customer collection; identity is the booking's
// user email, with name and phone taken from the personal details.
func GroupByCustomer(bookings []models.Booking) []CustomerSummary {
	byEmail := map[string]*CustomerSummary{}

	for _, b := range bookings {
		cs := byEmail[b.UserEmail]
		if cs == nil {
			cs = &CustomerSummary{
				Email: b.UserEmail,
				Name:  b.PersonalName,
				Phone: b.PersonalPhone,
			}
			byEmail[b.UserEmail] = cs
		}
		cs.BookingCount++
		if b.CreatedAt.After(cs.LastBooking) {
			cs.LastBooking = b.CreatedAt
		}
	}

	out := make([]CustomerSummary, 0, len(byEmail))
	for _, cs := range byEmail {
		out = append(out, *cs)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Email < out[j].Email
	})

	return out
}

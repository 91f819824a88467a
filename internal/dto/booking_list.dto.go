package dto

import (
	"time"

	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type BookingListDTO struct {
	ID            uint                    `json:"id"`
	Date          time.Time               `json:"date"`
	Services      models.ServiceSnapshots `json:"services"`
	Status        string                  `json:"status"`
	CustomerName  string                  `json:"customer_name"`
	CustomerEmail string                  `json:"customer_email"`
	CustomerPhone string                  `json:"customer_phone"`
	TotalPrice    float64                 `json:"total_price"`
	CreatedAt     time.Time               `json:"created_at"`
}

func FromBooking(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:            b.ID,
		Date:          b.Date,
		Services:      b.Services,
		Status:        b.Status,
		CustomerName:  b.PersonalName,
		CustomerEmail: b.UserEmail,
		CustomerPhone: b.PersonalPhone,
		TotalPrice:    b.TotalPrice,
		CreatedAt:     b.CreatedAt,
	}
}

func FromBookings(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

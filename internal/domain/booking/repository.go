package booking

import (
	"context"

	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetServiceByName(
		ctx context.Context,
		name string,
	) (*models.Service, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (lifecycle) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		bookingID uint,
	) error

	// -------- Booking (views) --------
	ListActiveBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListTrashedBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListActiveBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}

// SlotSource is the slot store as seen by the availability resolver.
type SlotSource interface {
	ListSlotsForDate(
		ctx context.Context,
		date string,
	) ([]models.TimeSlot, error)

	ListAvailableSlots(
		ctx context.Context,
	) ([]models.TimeSlot, error)
}

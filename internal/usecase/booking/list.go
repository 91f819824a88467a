package booking

import (
	"context"

	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/dto"
)

// ListBookings serves the admin views: the dashboard list (active only)
// and the trash list (trashed only). Purged bookings appear in neither.
type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Active(
	ctx context.Context,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListActiveBookings(ctx)
	if err != nil {
		return nil, err
	}

	return dto.FromBookings(bookings), nil
}

func (uc *ListBookings) Trashed(
	ctx context.Context,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListTrashedBookings(ctx)
	if err != nil {
		return nil, err
	}

	return dto.FromBookings(bookings), nil
}

func (uc *ListBookings) ForUser(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListActiveBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.FromBookings(bookings), nil
}

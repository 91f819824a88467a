package booking

import (
	"context"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type RestoreBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRestoreBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RestoreBooking {
	return &RestoreBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RestoreBooking) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Restore(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_restored",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

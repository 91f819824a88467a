package booking

import (
	"context"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type TrashBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTrashBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TrashBooking {
	return &TrashBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TrashBooking) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Trash(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_trashed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

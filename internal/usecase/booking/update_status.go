package booking

import (
	"context"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
	next domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.SetStatus(b, next); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"status": string(next)},
	})

	return b, nil
}

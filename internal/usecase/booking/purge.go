package booking

import (
	"context"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
)

// PurgeBooking permanently removes a trashed booking. No tombstone is
// kept; only the audit trail records that the booking existed.
type PurgeBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPurgeBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PurgeBooking {
	return &PurgeBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *PurgeBooking) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanPurge(b.IsDeleted); err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_purged",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}

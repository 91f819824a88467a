package booking

import (
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func SetStatus(b *models.Booking, next Status) error {
	if err := CanSetStatus(b.IsDeleted, next); err != nil {
		return err
	}

	b.Status = string(next)
	return nil
}

// Trash marks the booking deleted. Status is untouched so a later
// restore brings the booking back exactly as it was.
func Trash(b *models.Booking) error {
	if err := CanTrash(b.IsDeleted); err != nil {
		return err
	}

	b.IsDeleted = true
	return nil
}

func Restore(b *models.Booking) error {
	if err := CanRestore(b.IsDeleted); err != nil {
		return err
	}

	b.IsDeleted = false
	return nil
}

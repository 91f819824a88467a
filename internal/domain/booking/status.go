package booking

import "github.com/HennaArtStudio/henna-booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

// CanSetStatus defines whether a booking may move to a new status. Only
// active (non-trashed) bookings change status; self-transitions are
// permitted no-ops.
func CanSetStatus(isDeleted bool, next Status) error {
	if !next.IsValid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if isDeleted {
		return httperr.ErrBusiness("booking_trashed")
	}
	return nil
}

// CanTrash defines whether a booking may be moved to the trash.
func CanTrash(isDeleted bool) error {
	if isDeleted {
		return httperr.ErrBusiness("already_trashed")
	}
	return nil
}

// CanRestore defines whether a trashed booking may be restored.
func CanRestore(isDeleted bool) error {
	if !isDeleted {
		return httperr.ErrBusiness("not_trashed")
	}
	return nil
}

// CanPurge defines whether a booking may be permanently removed. Purge
// is reachable only from the trash and is irreversible.
func CanPurge(isDeleted bool) error {
	if !isDeleted {
		return httperr.ErrBusiness("not_trashed")
	}
	return nil
}

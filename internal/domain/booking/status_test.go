package booking

import (
	"testing"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

func TestStatusIsValid(t *testing.T) {
	valid := []Status{StatusPending, StatusConfirmed, StatusCancelled}
	for _, s := range valid {
		if !s.IsValid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	invalid := []Status{"", "done", "Pending", "PENDING", "trash"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusPending {
		t.Fatalf("InitialStatus() = %q, want %q", got, StatusPending)
	}
}

func TestSetStatus(t *testing.T) {
	tests := []struct {
		name      string
		isDeleted bool
		current   Status
		next      Status
		wantCode  string
	}{
		{name: "pending to confirmed", current: StatusPending, next: StatusConfirmed},
		{name: "confirmed to cancelled", current: StatusConfirmed, next: StatusCancelled},
		{name: "cancelled back to pending", current: StatusCancelled, next: StatusPending},
		{name: "self transition is a no-op", current: StatusConfirmed, next: StatusConfirmed},
		{name: "unknown status rejected", current: StatusPending, next: "done", wantCode: "invalid_status"},
		{name: "trashed booking cannot change status", isDeleted: true, current: StatusPending, next: StatusConfirmed, wantCode: "booking_trashed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.Booking{Status: string(tt.current), IsDeleted: tt.isDeleted}

			err := SetStatus(b, tt.next)

			if tt.wantCode != "" {
				if !httperr.IsBusiness(err, tt.wantCode) {
					t.Fatalf("SetStatus() error = %v, want code %q", err, tt.wantCode)
				}
				if b.Status != string(tt.current) {
					t.Fatalf("status changed on rejected transition: %q", b.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("SetStatus() unexpected error: %v", err)
			}
			if b.Status != string(tt.next) {
				t.Fatalf("status = %q, want %q", b.Status, tt.next)
			}
		})
	}
}

func TestTrashRestoreCycle(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}

	if err := Trash(b); err != nil {
		t.Fatalf("Trash() unexpected error: %v", err)
	}
	if !b.IsDeleted {
		t.Fatal("expected booking to be trashed")
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("trash changed status to %q", b.Status)
	}

	if err := Trash(b); !httperr.IsBusiness(err, "already_trashed") {
		t.Fatalf("second Trash() error = %v, want already_trashed", err)
	}

	if err := Restore(b); err != nil {
		t.Fatalf("Restore() unexpected error: %v", err)
	}
	if b.IsDeleted {
		t.Fatal("expected booking to be restored")
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("restore changed status to %q", b.Status)
	}

	if err := Restore(b); !httperr.IsBusiness(err, "not_trashed") {
		t.Fatalf("Restore() on active booking error = %v, want not_trashed", err)
	}
}

func TestCanPurge(t *testing.T) {
	if err := CanPurge(false); !httperr.IsBusiness(err, "not_trashed") {
		t.Fatalf("CanPurge(active) error = %v, want not_trashed", err)
	}
	if err := CanPurge(true); err != nil {
		t.Fatalf("CanPurge(trashed) unexpected error: %v", err)
	}
}

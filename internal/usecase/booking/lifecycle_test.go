package booking

import (
	"context"
	"testing"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

func seedBooking(repo *fakeRepo, status string, trashed bool) *models.Booking {
	b := &models.Booking{Status: status, IsDeleted: trashed}
	_ = repo.CreateBooking(context.Background(), b)
	return b
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, string(domain.StatusPending), false)

	uc := NewUpdateStatus(repo, audit.NewDispatcher(noopSink{}))

	got, err := uc.Execute(context.Background(), 1, b.ID, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed", got.Status)
	}

	if _, err := uc.Execute(context.Background(), 1, 999, domain.StatusConfirmed); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("Execute(unknown id) error = %v, want booking_not_found", err)
	}

	if _, err := uc.Execute(context.Background(), 1, b.ID, "done"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("Execute(bad status) error = %v, want invalid_status", err)
	}
}

func TestTrashRestoreBooking(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, string(domain.StatusConfirmed), false)

	dispatcher := audit.NewDispatcher(noopSink{})
	trash := NewTrashBooking(repo, dispatcher)
	restore := NewRestoreBooking(repo, dispatcher)

	got, err := trash.Execute(context.Background(), 1, b.ID)
	if err != nil {
		t.Fatalf("trash Execute() unexpected error: %v", err)
	}
	if !got.IsDeleted {
		t.Fatal("booking not trashed")
	}
	if got.Status != string(domain.StatusConfirmed) {
		t.Fatalf("trash changed status to %q", got.Status)
	}

	if _, err := trash.Execute(context.Background(), 1, b.ID); !httperr.IsBusiness(err, "already_trashed") {
		t.Fatalf("second trash error = %v, want already_trashed", err)
	}

	got, err = restore.Execute(context.Background(), 1, b.ID)
	if err != nil {
		t.Fatalf("restore Execute() unexpected error: %v", err)
	}
	if got.IsDeleted {
		t.Fatal("booking not restored")
	}
	if got.Status != string(domain.StatusConfirmed) {
		t.Fatalf("restore changed status to %q", got.Status)
	}
}

func TestPurgeBooking(t *testing.T) {
	repo := newFakeRepo()
	active := seedBooking(repo, string(domain.StatusPending), false)
	trashed := seedBooking(repo, string(domain.StatusCancelled), true)

	uc := NewPurgeBooking(repo, audit.NewDispatcher(noopSink{}))

	if err := uc.Execute(context.Background(), 1, active.ID); !httperr.IsBusiness(err, "not_trashed") {
		t.Fatalf("purge of active booking error = %v, want not_trashed", err)
	}

	if err := uc.Execute(context.Background(), 1, trashed.ID); err != nil {
		t.Fatalf("purge Execute() unexpected error: %v", err)
	}

	if _, err := repo.GetBooking(context.Background(), trashed.ID); err == nil {
		t.Fatal("purged booking still present")
	}

	if err := uc.Execute(context.Background(), 1, trashed.ID); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("second purge error = %v, want booking_not_found", err)
	}
}

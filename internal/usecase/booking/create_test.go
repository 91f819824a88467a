package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// fakeRepo backs the use-case tests with an in-memory catalog and
// booking store.
type fakeRepo struct {
	services map[string]models.Service
	created  []*models.Booking
}

func newFakeRepo(services ...models.Service) *fakeRepo {
	r := &fakeRepo{services: map[string]models.Service{}}
	for _, s := range services {
		r.services[s.Name] = s
	}
	return r
}

func (r *fakeRepo) GetServiceByName(_ context.Context, name string) (*models.Service, error) {
	s, ok := r.services[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = uint(len(r.created) + 1)
	r.created = append(r.created, b)
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range r.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) UpdateBooking(_ context.Context, _ *models.Booking) error { return nil }

func (r *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	out := r.created[:0]
	for _, b := range r.created {
		if b.ID != id {
			out = append(out, b)
		}
	}
	r.created = out
	return nil
}

func (r *fakeRepo) ListActiveBookings(_ context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) ListTrashedBookings(_ context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) ListActiveBookingsForUser(_ context.Context, _ uint) ([]models.Booking, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type noopSink struct{}

func (noopSink) Log(_ *uint, _, _ string, _ *uint, _ any) error { return nil }

func handHenna() models.Service {
	return models.Service{
		ID:     1,
		Name:   "Hand Henna",
		Prices: models.PriceTable{"Simple": 30, "Medium": 50, "Hard": 70},
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		UserID:        7,
		UserEmail:     "ana@example.com",
		EmailVerified: true,
		Provider:      "password",
		Services: []SelectedService{
			{Name: "Hand Henna", Complexity: models.ComplexityMedium},
		},
		Date:          "2026-09-15",
		Time:          "14:30",
		PersonalName:  "Ana",
		PersonalPhone: "+44 7700 900000",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo(handHenna())
	uc := NewCreateBooking(repo, audit.NewDispatcher(noopSink{}), "Europe/London")

	b, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	if b.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want pending", b.Status)
	}
	if b.IsDeleted {
		t.Fatal("new booking must not be trashed")
	}
	if b.TotalPrice != 50 {
		t.Fatalf("TotalPrice = %v, want 50", b.TotalPrice)
	}
	if len(b.Services) != 1 || b.Services[0].Name != "Hand Henna" {
		t.Fatalf("snapshot = %+v", b.Services)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d bookings, want 1", len(repo.created))
	}
}

// The snapshot must be a copy; later catalog edits may not reach it.
func TestCreateBookingSnapshotsPrices(t *testing.T) {
	svc := handHenna()
	repo := newFakeRepo(svc)
	uc := NewCreateBooking(repo, audit.NewDispatcher(noopSink{}), "Europe/London")

	b, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	edited := repo.services["Hand Henna"]
	edited.Prices = models.PriceTable{"Simple": 1, "Medium": 1, "Hard": 1}
	repo.services["Hand Henna"] = edited

	if b.Services[0].Prices[models.ComplexityMedium] != 50 {
		t.Fatalf("snapshot price changed to %v", b.Services[0].Prices[models.ComplexityMedium])
	}
}

func TestCreateBookingFederatedProviderSkipsVerification(t *testing.T) {
	repo := newFakeRepo(handHenna())
	uc := NewCreateBooking(repo, audit.NewDispatcher(noopSink{}), "Europe/London")

	in := validInput()
	in.EmailVerified = false
	in.Provider = "google.com"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		wantCode string
	}{
		{
			name: "unverified password account",
			mutate: func(in *CreateBookingInput) {
				in.EmailVerified = false
			},
			wantCode: "email_not_verified",
		},
		{
			name: "no services",
			mutate: func(in *CreateBookingInput) {
				in.Services = nil
			},
			wantCode: "no_services_selected",
		},
		{
			name: "missing phone",
			mutate: func(in *CreateBookingInput) {
				in.PersonalPhone = "  "
			},
			wantCode: "missing_personal_details",
		},
		{
			name: "no email anywhere",
			mutate: func(in *CreateBookingInput) {
				in.UserEmail = ""
				in.PersonalEmail = ""
			},
			wantCode: "email_unknown",
		},
		{
			name: "bad date",
			mutate: func(in *CreateBookingInput) {
				in.Date = "15/09/2026"
			},
			wantCode: "invalid_date_or_time",
		},
		{
			name: "unknown complexity",
			mutate: func(in *CreateBookingInput) {
				in.Services[0].Complexity = "Extreme"
			},
			wantCode: "invalid_complexity",
		},
		{
			name: "unknown service",
			mutate: func(in *CreateBookingInput) {
				in.Services[0].Name = "Foot Henna"
			},
			wantCode: "service_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(handHenna())
			uc := NewCreateBooking(repo, audit.NewDispatcher(noopSink{}), "Europe/London")

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Fatalf("Execute() error = %v, want code %q", err, tt.wantCode)
			}
			if len(repo.created) != 0 {
				t.Fatal("booking created despite validation failure")
			}
		})
	}
}

func TestCreateBookingFallsBackToPersonalEmail(t *testing.T) {
	repo := newFakeRepo(handHenna())
	uc := NewCreateBooking(repo, audit.NewDispatcher(noopSink{}), "Europe/London")

	in := validInput()
	in.UserEmail = ""
	in.PersonalEmail = "fallback@example.com"
	in.Provider = "google.com"
	in.EmailVerified = false

	b, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if b.UserEmail != "fallback@example.com" {
		t.Fatalf("UserEmail = %q, want fallback address", b.UserEmail)
	}
}

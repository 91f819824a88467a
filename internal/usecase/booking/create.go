package booking

import (
	"context"
	"strings"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
	"github.com/HennaArtStudio/henna-booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SelectedService struct {
	Name       string
	Complexity string
}

type CreateBookingInput struct {
	UserID        uint
	UserEmail     string
	EmailVerified bool
	Provider      string

	Services []SelectedService

	Date string
	Time string

	PersonalName  string
	PersonalPhone string
	PersonalEmail string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Verified identity. Federated sign-ins count as
	// pre-verified.
	// --------------------------------------------------
	if !in.EmailVerified && in.Provider == "password" {
		return nil, httperr.ErrBusiness("email_not_verified")
	}

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	if len(in.Services) == 0 {
		return nil, httperr.ErrBusiness("no_services_selected")
	}

	if strings.TrimSpace(in.PersonalName) == "" || strings.TrimSpace(in.PersonalPhone) == "" {
		return nil, httperr.ErrBusiness("missing_personal_details")
	}

	email := strings.TrimSpace(in.UserEmail)
	if email == "" {
		email = strings.TrimSpace(in.PersonalEmail)
	}
	if email == "" {
		return nil, httperr.ErrBusiness("email_unknown")
	}

	// --------------------------------------------------
	// Date / time in the studio timezone
	// --------------------------------------------------
	date, err := timezone.ParseDateTime(uc.timezone, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Snapshot the selected services from the live
	// catalog. The full price table is copied onto the
	// booking so later catalog edits never change it.
	// --------------------------------------------------
	snapshots := make(models.ServiceSnapshots, 0, len(in.Services))
	for _, sel := range in.Services {
		if !models.IsValidComplexity(sel.Complexity) {
			return nil, httperr.ErrBusiness("invalid_complexity")
		}

		svc, err := uc.repo.GetServiceByName(ctx, sel.Name)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}

		prices := make(models.PriceTable, len(svc.Prices))
		for tier, price := range svc.Prices {
			prices[tier] = price
		}

		snapshots = append(snapshots, models.ServiceSnapshot{
			Name:       svc.Name,
			Complexity: sel.Complexity,
			Prices:     prices,
		})
	}

	// --------------------------------------------------
	// Create in (pending, active)
	// --------------------------------------------------
	b := &models.Booking{
		UserID:        in.UserID,
		UserEmail:     email,
		Services:      snapshots,
		Date:          date,
		PersonalName:  strings.TrimSpace(in.PersonalName),
		PersonalPhone: strings.TrimSpace(in.PersonalPhone),
		PersonalEmail: strings.TrimSpace(in.PersonalEmail),
		Status:        string(domain.InitialStatus()),
		IsDeleted:     false,
		TotalPrice:    domain.TotalPrice(snapshots),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

package booking

import (
	"context"

	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
)

// DashboardStats recomputes the status counts from the full active set
// on every call. No caching; expected data volume is small.
type DashboardStats struct {
	repo domain.Repository
}

func NewDashboardStats(repo domain.Repository) *DashboardStats {
	return &DashboardStats{repo: repo}
}

func (uc *DashboardStats) Execute(
	ctx context.Context,
) (domain.DashboardStats, error) {

	bookings, err := uc.repo.ListActiveBookings(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	return domain.CountByStatus(bookings), nil
}

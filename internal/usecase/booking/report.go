package booking

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/logger"
)

// DailyReport derives the per-date bookings/revenue series from the
// active booking set. Bookings without a usable appointment date are
// excluded from the series and logged for operator attention; they are
// never surfaced to the caller as an error.
type DailyReport struct {
	repo domain.Repository
}

func NewDailyReport(repo domain.Repository) *DailyReport {
	return &DailyReport{repo: repo}
}

func (uc *DailyReport) Execute(
	ctx context.Context,
) ([]domain.DailyReportRow, error) {

	bookings, err := uc.repo.ListActiveBookings(ctx)
	if err != nil {
		return nil, err
	}

	rows, skipped := domain.DailySeries(bookings)
	if len(skipped) > 0 {
		logger.Log.Warn("bookings excluded from daily report, missing date",
			zap.Uints("booking_ids", skipped))
	}

	return rows, nil
}

package schedule

import (
	"context"
	"sort"
	"time"

	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/timezone"
)

// LookaheadDays bounds the booking window: dates beyond today+30 are
// never offered, regardless of slot data.
const LookaheadDays = 30

type GetAvailability struct {
	slots    domain.SlotSource
	timezone string
}

func NewGetAvailability(slots domain.SlotSource, tz string) *GetAvailability {
	return &GetAvailability{slots: slots, timezone: tz}
}

// window returns the inclusive [today, today+LookaheadDays] bounds as
// canonical yyyy-mm-dd strings in the studio timezone. String
// comparison on that format matches chronological order.
func (uc *GetAvailability) window() (string, string) {
	now := timezone.NowIn(uc.timezone)
	return now.Format("2006-01-02"),
		now.AddDate(0, 0, LookaheadDays).Format("2006-01-02")
}

// TimesForDate returns the available time strings for a date, sorted
// ascending. Slots flagged unavailable are filtered out; selecting a
// time does not reserve the slot.
func (uc *GetAvailability) TimesForDate(
	ctx context.Context,
	dateStr string,
) ([]string, error) {

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	from, to := uc.window()
	if dateStr < from || dateStr > to {
		return []string{}, nil
	}

	slots, err := uc.slots.ListSlotsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	times := make([]string, 0, len(slots))
	for _, s := range slots {
		if !s.IsAvailable {
			continue
		}
		times = append(times, s.Time)
	}

	sort.Strings(times)
	return times, nil
}

// AvailableDates returns the distinct dates inside the look-ahead
// window that have at least one available slot, for calendar
// highlighting. Sorted ascending.
func (uc *GetAvailability) AvailableDates(
	ctx context.Context,
) ([]string, error) {

	slots, err := uc.slots.ListAvailableSlots(ctx)
	if err != nil {
		return nil, err
	}

	from, to := uc.window()

	seen := map[string]bool{}
	dates := make([]string, 0)
	for _, s := range slots {
		if s.Date < from || s.Date > to {
			continue
		}
		if seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		dates = append(dates, s.Date)
	}

	sort.Strings(dates)
	return dates, nil
}

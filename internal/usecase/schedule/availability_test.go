package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
	"github.com/HennaArtStudio/henna-booking-api/internal/timezone"
)

// fakeSlotSource serves a fixed slot set.
type fakeSlotSource struct {
	slots []models.TimeSlot
}

func (f *fakeSlotSource) ListSlotsForDate(_ context.Context, date string) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range f.slots {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotSource) ListAvailableSlots(_ context.Context) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range f.slots {
		if s.IsAvailable {
			out = append(out, s)
		}
	}
	return out, nil
}

const testTZ = "Europe/London"

func dayOffset(days int) string {
	return timezone.NowIn(testTZ).AddDate(0, 0, days).Format("2006-01-02")
}

func TestTimesForDate(t *testing.T) {
	tomorrow := dayOffset(1)

	src := &fakeSlotSource{slots: []models.TimeSlot{
		{Date: tomorrow, Time: "14:30", IsAvailable: true},
		{Date: tomorrow, Time: "10:00", IsAvailable: true},
		{Date: tomorrow, Time: "12:15", IsAvailable: false},
	}}

	uc := NewGetAvailability(src, testTZ)

	times, err := uc.TimesForDate(context.Background(), tomorrow)
	if err != nil {
		t.Fatalf("TimesForDate() unexpected error: %v", err)
	}

	want := []string{"10:00", "14:30"}
	if len(times) != len(want) {
		t.Fatalf("got %v, want %v", times, want)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("got %v, want %v", times, want)
		}
	}
}

func TestTimesForDateInvalidDate(t *testing.T) {
	uc := NewGetAvailability(&fakeSlotSource{}, testTZ)

	for _, raw := range []string{"not-a-date", "2026/09/01", "01-09-2026", ""} {
		if _, err := uc.TimesForDate(context.Background(), raw); !httperr.IsBusiness(err, "invalid_date") {
			t.Fatalf("TimesForDate(%q) error = %v, want invalid_date", raw, err)
		}
	}
}

func TestTimesForDateOutsideWindow(t *testing.T) {
	past := dayOffset(-1)
	far := dayOffset(LookaheadDays + 1)

	src := &fakeSlotSource{slots: []models.TimeSlot{
		{Date: past, Time: "10:00", IsAvailable: true},
		{Date: far, Time: "10:00", IsAvailable: true},
	}}

	uc := NewGetAvailability(src, testTZ)

	for _, date := range []string{past, far} {
		times, err := uc.TimesForDate(context.Background(), date)
		if err != nil {
			t.Fatalf("TimesForDate(%q) unexpected error: %v", date, err)
		}
		if len(times) != 0 {
			t.Fatalf("TimesForDate(%q) = %v, want empty outside the window", date, times)
		}
	}
}

func TestAvailableDates(t *testing.T) {
	today := dayOffset(0)
	nextWeek := dayOffset(7)
	past := dayOffset(-3)
	far := dayOffset(LookaheadDays + 5)

	src := &fakeSlotSource{slots: []models.TimeSlot{
		{Date: nextWeek, Time: "10:00", IsAvailable: true},
		{Date: nextWeek, Time: "11:00", IsAvailable: true},
		{Date: today, Time: "09:00", IsAvailable: true},
		{Date: today, Time: "15:00", IsAvailable: false},
		{Date: past, Time: "10:00", IsAvailable: true},
		{Date: far, Time: "10:00", IsAvailable: true},
	}}

	uc := NewGetAvailability(src, testTZ)

	dates, err := uc.AvailableDates(context.Background())
	if err != nil {
		t.Fatalf("AvailableDates() unexpected error: %v", err)
	}

	want := []string{today, nextWeek}
	if len(dates) != len(want) {
		t.Fatalf("got %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("got %v, want %v", dates, want)
		}
	}
}

func TestWindowBounds(t *testing.T) {
	uc := NewGetAvailability(&fakeSlotSource{}, testTZ)

	from, to := uc.window()

	f, err := time.Parse("2006-01-02", from)
	if err != nil {
		t.Fatalf("window from %q not parseable: %v", from, err)
	}
	u, err := time.Parse("2006-01-02", to)
	if err != nil {
		t.Fatalf("window to %q not parseable: %v", to, err)
	}

	if days := int(u.Sub(f).Hours() / 24); days != LookaheadDays {
		t.Fatalf("window spans %d days, want %d", days, LookaheadDays)
	}
}

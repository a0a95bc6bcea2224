package appointment

import (
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

// TimeSlot is one bookable candidate on a date, in provider wall-clock
// time. Slots are computed fresh on every query and never persisted.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Window is the resolved open range for one day, as HH:MM wall-clock bounds.
type Window struct {
	Open  bool
	Start string
	End   string
}

// ResolveWindow decides whether a provider's day is open and with which
// hours. Resolution order, kept from the availability model migration:
//
//  1. an explicit DayAvailability record for the weekday wins;
//  2. otherwise the legacy weekday-name list restricts open days;
//  3. otherwise the day is open with the caller-supplied window.
func ResolveWindow(
	provider *models.User,
	weekday string,
	override *models.DayAvailability,
	defaultStart string,
	defaultEnd string,
) Window {

	if override != nil {
		if !override.Enabled {
			return Window{}
		}
		start := override.StartTime
		if start == "" {
			start = defaultStart
		}
		end := override.EndTime
		if end == "" {
			end = defaultEnd
		}
		return Window{Open: true, Start: start, End: end}
	}

	if days := provider.AvailableDaySet(); len(days) > 0 {
		if !days[weekday] {
			return Window{}
		}
		return Window{Open: true, Start: defaultStart, End: defaultEnd}
	}

	return Window{Open: true, Start: defaultStart, End: defaultEnd}
}

// ClockOnDate anchors an HH:MM wall-clock string to a calendar date in the
// given zone.
func ClockOnDate(hm string, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}

// Overlaps is the half-open interval test used for both booked and blocked
// conflicts: [aStart, aEnd) against [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

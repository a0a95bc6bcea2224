package appointment

import (
	"context"
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SlotQuery struct {
	ProviderID  string
	Date        string // YYYY-MM-DD
	WindowStart string // HH:MM, caller-supplied default window
	WindowEnd   string
}

// ======================================================
// USE CASE
// ======================================================

// ListAvailableSlots produces the fixed-duration candidate slots for a
// provider's day. A closed day yields an empty sequence; an open day with
// every slot taken yields slots all marked unavailable. The query is pure:
// nothing is written and results are never cached.
type ListAvailableSlots struct {
	repo domain.Repository
}

func NewListAvailableSlots(repo domain.Repository) *ListAvailableSlots {
	return &ListAvailableSlots{repo: repo}
}

func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	in SlotQuery,
) ([]domain.TimeSlot, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, apperr.NotFound("provider_not_found", "Provider not found.")
	}

	// All wall-clock math runs in the provider's clinic zone.
	loc := timezone.Location(provider.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, apperr.Validation("invalid_date", "Date must be YYYY-MM-DD.")
	}

	weekday := date.Weekday().String()

	override, err := uc.repo.GetDayAvailability(ctx, provider.ID, weekday)
	if err != nil {
		return nil, err
	}

	win := domain.ResolveWindow(provider, weekday, override, in.WindowStart, in.WindowEnd)
	if !win.Open {
		return []domain.TimeSlot{}, nil
	}

	winStart, err := domain.ClockOnDate(win.Start, date, loc)
	if err != nil {
		return nil, apperr.Validation("invalid_window", "Window bounds must be HH:MM.")
	}
	winEnd, err := domain.ClockOnDate(win.End, date, loc)
	if err != nil {
		return nil, apperr.Validation("invalid_window", "Window bounds must be HH:MM.")
	}
	if !winEnd.After(winStart) {
		return nil, apperr.Validation("invalid_window", "Window end must be after window start.")
	}

	// calendar day, not 24h: DST transition days run 23 or 25 hours
	dayStart := date
	dayEnd := dayStart.AddDate(0, 0, 1)

	booked, err := uc.repo.ListActiveAppointmentsForDay(ctx, provider.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.repo.ListBlockedSlots(ctx, provider.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(provider.DurationMinutes()) * time.Minute
	slots := make([]domain.TimeSlot, 0)

	for cur := winStart; cur.Before(winEnd); cur = cur.Add(duration) {

		slotEnd := cur.Add(duration)
		available := true

		// booked: an active appointment occupies its full interval
		for _, ap := range booked {
			apStart := ap.DateTime.In(loc)
			apEnd := apStart.Add(duration)
			if domain.Overlaps(cur, slotEnd, apStart, apEnd) {
				available = false
				break
			}
		}

		// blocked: one-off unbookable ranges
		if available {
			for _, b := range blocks {
				blockStart, err := domain.ClockOnDate(b.StartTime, date, loc)
				if err != nil {
					continue
				}
				blockEnd, err := domain.ClockOnDate(b.EndTime, date, loc)
				if err != nil {
					continue
				}
				if domain.Overlaps(cur, slotEnd, blockStart, blockEnd) {
					available = false
					break
				}
			}
		}

		slots = append(slots, domain.TimeSlot{
			Time:      cur.Format("15:04"),
			Available: available,
		})
	}

	return slots, nil
}

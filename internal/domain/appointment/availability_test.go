package appointment

import (
	"testing"
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

func TestResolveWindow_OverrideWins(t *testing.T) {
	provider := &models.User{AvailableDays: "Monday"}
	override := &models.DayAvailability{
		DayOfWeek: "Tuesday",
		Enabled:   true,
		StartTime: "10:00",
		EndTime:   "16:00",
	}

	// the override opens a day the legacy list excludes
	win := ResolveWindow(provider, "Tuesday", override, "09:00", "17:00")
	if !win.Open || win.Start != "10:00" || win.End != "16:00" {
		t.Fatalf("window = %+v, want open 10:00-16:00", win)
	}
}

func TestResolveWindow_DisabledOverrideClosesDay(t *testing.T) {
	provider := &models.User{}
	override := &models.DayAvailability{DayOfWeek: "Monday", Enabled: false}

	win := ResolveWindow(provider, "Monday", override, "09:00", "17:00")
	if win.Open {
		t.Fatalf("window = %+v, want closed", win)
	}
}

func TestResolveWindow_OverrideFallsBackPerField(t *testing.T) {
	provider := &models.User{}
	override := &models.DayAvailability{
		DayOfWeek: "Monday",
		Enabled:   true,
		StartTime: "08:00",
	}

	win := ResolveWindow(provider, "Monday", override, "09:00", "17:00")
	if !win.Open || win.Start != "08:00" || win.End != "17:00" {
		t.Fatalf("window = %+v, want open 08:00-17:00", win)
	}
}

func TestResolveWindow_LegacyDayList(t *testing.T) {
	provider := &models.User{AvailableDays: "Monday, Wednesday"}

	win := ResolveWindow(provider, "Wednesday", nil, "09:00", "17:00")
	if !win.Open || win.Start != "09:00" || win.End != "17:00" {
		t.Fatalf("window = %+v, want open default window", win)
	}

	win = ResolveWindow(provider, "Sunday", nil, "09:00", "17:00")
	if win.Open {
		t.Fatalf("window = %+v, want closed on unlisted day", win)
	}
}

func TestResolveWindow_NoConfigurationOpensDefault(t *testing.T) {
	provider := &models.User{}

	win := ResolveWindow(provider, "Saturday", nil, "09:00", "17:00")
	if !win.Open || win.Start != "09:00" || win.End != "17:00" {
		t.Fatalf("window = %+v, want open default window", win)
	}
}

func TestClockOnDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	got, err := ClockOnDate("14:30", date, loc)
	if err != nil {
		t.Fatalf("ClockOnDate error: %v", err)
	}
	want := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("ClockOnDate = %v, want %v", got, want)
	}

	if _, err := ClockOnDate("25:00", date, loc); err == nil {
		t.Fatalf("expected error for invalid clock string")
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(0), at(30), at(0), at(30), true},
		{"partial", at(0), at(30), at(15), at(45), true},
		{"contained", at(0), at(60), at(15), at(30), true},
		{"adjacent before", at(0), at(30), at(30), at(60), false},
		{"adjacent after", at(30), at(60), at(0), at(30), false},
		{"disjoint", at(0), at(30), at(60), at(90), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

package handlers

import "time"

var weekdayNames = map[string]bool{
	"Sunday":    true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
}

func isValidWeekday(name string) bool {
	return weekdayNames[name]
}

func isValidClock(hm string) bool {
	if hm == "" {
		return false
	}
	_, err := time.Parse("15:04", hm)
	return err == nil
}

// clockBefore compares two HH:MM strings; both must already be valid.
func clockBefore(a, b string) bool {
	ta, _ := time.Parse("15:04", a)
	tb, _ := time.Parse("15:04", b)
	return ta.Before(tb)
}

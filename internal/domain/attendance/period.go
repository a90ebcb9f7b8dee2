package attendance

import "time"

// WeekBounds is a reporting window: Monday 00:00 inclusive to the next
// Monday 00:00 exclusive, in the timezone of the instant it was computed
// from. The listing and the daily summary must be scoped by the same
// bounds, so this is the only place they are computed.
type WeekBounds struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the calendar week containing now.
func WeekOf(now time.Time) WeekBounds {
	// time.Weekday has Sunday = 0; shift so Monday = 0.
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	y, m, d := now.Date()
	start := time.Date(y, m, d-daysSinceMonday, 0, 0, 0, 0, now.Location())
	return WeekBounds{
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}
}

// Contains reports whether t falls inside the window.
func (w WeekBounds) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// dayNames indexes match time.Weekday: 0 = Sunday .. 6 = Saturday.
var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DayOfWeek returns the 0=Sunday..6=Saturday index used by the weekly chart.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// DayName returns the display label for t's day of week.
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

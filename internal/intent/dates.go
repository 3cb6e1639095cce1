package intent

import (
	"strings"
	"time"
)

// Interval is a half-open [Start, End) time window.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ResolveDatePhrase maps a date phrase onto a concrete interval anchored on
// now. The anchoring rule is fixed so that the same phrase and clock always
// produce the same window:
//
//   - weeks start Monday 00:00:00 in now's location (ISO weeks);
//   - "last week"  = [Monday before the current week, current week's Monday)
//   - "this week"  = [current week's Monday, +7 days)
//   - "last month" = the previous calendar month
//   - "this month" = the current calendar month
//   - "yesterday" / "today" = the respective calendar days
//   - a literal YYYY-MM-DD resolves to that calendar day.
//
// The phrase is matched after lowercasing and collapsing '_' to spaces, so
// both "last week" and "last_week" are accepted.
func ResolveDatePhrase(phrase string, now time.Time) (Interval, bool) {
	norm := strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(phrase), "_", " ")), " ")

	day := startOfDay(now)
	week := startOfWeek(now)
	month := startOfMonth(now)

	switch norm {
	case "today":
		return Interval{day, day.AddDate(0, 0, 1)}, true
	case "yesterday":
		return Interval{day.AddDate(0, 0, -1), day}, true
	case "this week":
		return Interval{week, week.AddDate(0, 0, 7)}, true
	case "last week":
		return Interval{week.AddDate(0, 0, -7), week}, true
	case "this month":
		return Interval{month, month.AddDate(0, 1, 0)}, true
	case "last month":
		return Interval{month.AddDate(0, -1, 0), month}, true
	}

	if d, err := time.ParseInLocation("2006-01-02", norm, now.Location()); err == nil {
		return Interval{d, d.AddDate(0, 0, 1)}, true
	}

	return Interval{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the most recent Monday 00:00:00 at or before t.
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

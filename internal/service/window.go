package service

import (
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
)

// DateLayout is the calendar-day key used for buckets and query params
const DateLayout = "2006-01-02"

// Window is a closed time range: a meal belongs to it iff
// Start <= createdAt <= End.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow validates a caller supplied range. It never swaps the bounds.
func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, domain.ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// TrailingWindow spans from the start of the day `days` days before now to
// the end of now's day, in UTC.
func TrailingWindow(now time.Time, days int) Window {
	return Window{
		Start: StartOfDay(now.AddDate(0, 0, -days)),
		End:   EndOfDay(now),
	}
}

// CalendarWeek is the seven calendar days ending on now's day
func CalendarWeek(now time.Time) Window {
	return TrailingWindow(now, 6)
}

// DayWindow covers a single UTC calendar day
func DayWindow(day time.Time) Window {
	return Window{Start: StartOfDay(day), End: EndOfDay(day)}
}

// Contains reports whether t lies inside the closed range
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// StartOfDay truncates t to 00:00:00.000 UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// DayKey formats t's UTC calendar day
func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDay parses a YYYY-MM-DD value as a UTC day
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

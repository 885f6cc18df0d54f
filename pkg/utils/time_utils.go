package utils

import "time"

// Algeria time location (CET, +01:00, no DST)
var dzLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Algiers"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsDZ converts an epoch value in seconds to Algiers time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsDZ(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(dzLoc)
}

func FormatRFC3339DZ(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(dzLoc).Format(time.RFC3339)
}

// FormatBookingDate renders a timestamp the way the bookings list shows it,
// e.g. "Feb 10, 2024".
func FormatBookingDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(dzLoc).Format("Jan 2, 2006")
}

// DefaultTravelWindow returns the dates a fresh draft starts with:
// today and today plus seven days.
func DefaultTravelWindow() (time.Time, time.Time) {
	start := time.Now().In(dzLoc)
	return start, start.Add(7 * 24 * time.Hour)
}

package ephem

import "time"

const (
	// J2000 is the Julian Date of the reference epoch the body tables are
	// defined at (2000-01-01 12:00).
	J2000 = 2451545.0

	// unixEpochJD is the Julian Date of 1970-01-01 00:00 UTC.
	unixEpochJD = 2440587.5

	secondsPerDay  = 86400.0
	secondsPerHour = 3600.0
)

// ToJulianDate converts a timestamp to a Julian Date. The conversion goes
// through absolute (Unix) time, so the result is independent of the
// timestamp's wall-clock time zone.
func ToJulianDate(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unixEpochJD + sec/secondsPerDay
}

// ElapsedHours expresses a timestamp as hours since the Unix epoch. Spin
// angles derive from it; orbital position never does.
func ElapsedHours(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return sec / secondsPerHour
}

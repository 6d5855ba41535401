package panchanga

import (
	"math"
	"time"
)

const unixEpochJD = 2440587.5

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// JulianDayFromCivil converts a UT calendar date plus fractional hours into a
// Julian Day using the standard Gregorian algorithm.
func JulianDayFromCivil(year, month, day int, hours float64) JulianDay {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		hours/24
	return JulianDay(jd)
}

// JulianDayFromTime converts an instant to a Julian Day. The fractional-day
// component is hour + minute/60 of the UT clock; seconds are dropped to match
// the documented precision limit of the pipeline.
func JulianDayFromTime(t time.Time) JulianDay {
	ut := t.UTC()
	hours := float64(ut.Hour()) + float64(ut.Minute())/60
	return JulianDayFromCivil(ut.Year(), int(ut.Month()), ut.Day(), hours)
}

// TimeFromJulianDay converts a Julian Day back to a civil instant in UTC,
// rounded to the nearest second.
func TimeFromJulianDay(jd JulianDay) time.Time {
	seconds := (float64(jd) - unixEpochJD) * 86400
	return time.Unix(int64(math.Round(seconds)), 0).UTC()
}

// WeekdayIndex derives the weekday from a Julian Day, 0=Sunday..6=Saturday.
// floor(jd+0.5) mod 7 lands on 0 for a Monday (JD 0 fell on a Monday noon),
// so one extra day shifts Sunday onto index 0. Pinned by a known-Sunday test.
func WeekdayIndex(jd JulianDay) int {
	return int(math.Floor(float64(jd)+0.5)+1) % 7
}

// CivilWeekdayIndex derives the weekday of a local civil date, 0=Sunday. The
// timing tables key on the date the caller asked about, which in zones east of
// UTC can differ from the UT day of the underlying instant.
func CivilWeekdayIndex(t time.Time) int {
	return WeekdayIndex(JulianDayFromCivil(t.Year(), int(t.Month()), t.Day(), 12))
}

// WeekdayName resolves the English weekday name for a validated index.
func WeekdayName(w int) string {
	if w < 0 || w > 6 {
		return ""
	}
	return weekdayNames[w]
}

package panchanga

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJulianDayAtJ2000Epoch(t *testing.T) {
	jd := JulianDayFromCivil(2000, 1, 1, 12)
	require.InDelta(t, 2451545.0, float64(jd), 1e-9)
}

func TestJulianDayGregorianReform(t *testing.T) {
	// 1957-10-04 (Sputnik launch date), a standard algorithm check value.
	jd := JulianDayFromCivil(1957, 10, 4, 19.44)
	require.InDelta(t, 2436116.31, float64(jd), 0.001)
}

func TestJulianDayFromTimeDropsSeconds(t *testing.T) {
	withSeconds := time.Date(2024, 1, 7, 12, 30, 45, 0, time.UTC)
	withoutSeconds := time.Date(2024, 1, 7, 12, 30, 0, 0, time.UTC)
	require.Equal(t, JulianDayFromTime(withoutSeconds), JulianDayFromTime(withSeconds))
}

func TestJulianDayUsesUTClock(t *testing.T) {
	ist := time.FixedZone("Asia/Kolkata", int(5.5*3600))
	local := time.Date(2024, 1, 7, 5, 30, 0, 0, ist)
	utc := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, JulianDayFromTime(utc), JulianDayFromTime(local))
}

func TestTimeFromJulianDayRoundTrip(t *testing.T) {
	instant := TimeFromJulianDay(2451545.0)
	require.Equal(t, time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), instant)

	original := time.Date(2024, 6, 15, 8, 45, 0, 0, time.UTC)
	require.Equal(t, original, TimeFromJulianDay(JulianDayFromTime(original)))
}

// 2024-01-07 was a Sunday; this fixture pins the otherwise ambiguous epoch
// offset in the weekday convention.
func TestWeekdayIndexKnownSunday(t *testing.T) {
	jd := JulianDayFromCivil(2024, 1, 7, 12)
	require.Equal(t, 0, WeekdayIndex(jd))
	require.Equal(t, "Sunday", WeekdayName(WeekdayIndex(jd)))
}

func TestWeekdayIndexKnownSaturday(t *testing.T) {
	// 2023-02-25 was a Saturday.
	jd := JulianDayFromCivil(2023, 2, 25, 12)
	require.Equal(t, 6, WeekdayIndex(jd))
}

func TestWeekdayIndexAdvancesDaily(t *testing.T) {
	start := JulianDayFromCivil(2024, 1, 7, 12)
	for offset := 0; offset < 14; offset++ {
		w := WeekdayIndex(start + JulianDay(offset))
		require.Equal(t, offset%7, w)
	}
}

func TestCivilWeekdayIndexFollowsLocalDate(t *testing.T) {
	ist := time.FixedZone("Asia/Kolkata", int(5.5*3600))
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, ist)

	require.Equal(t, 1, CivilWeekdayIndex(monday))
	// The same instant is still the previous UT day, a Sunday.
	require.Equal(t, 0, WeekdayIndex(JulianDayFromTime(monday)))
}

func TestWeekdayNameBounds(t *testing.T) {
	require.Equal(t, "", WeekdayName(-1))
	require.Equal(t, "", WeekdayName(7))
	require.Equal(t, "Saturday", WeekdayName(6))
}

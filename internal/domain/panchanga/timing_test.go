package panchanga

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/vedicastro/panchanga-api/pkg/errors"
)

const (
	testSunrise = JulianDay(2460317.0)  // 12:00 UT
	testSunset  = JulianDay(2460317.5)  // 24:00 UT, a clean 12-hour day
)

func TestWindowWidthsForAllWeekdays(t *testing.T) {
	muhurta := MuhurtaLength(testSunrise, testSunset)
	require.InDelta(t, 0.5/30, muhurta, 1e-12)

	for w := 0; w < 7; w++ {
		windows, err := WindowsForDay(testSunrise, testSunset, w)
		require.NoError(t, err)

		require.InDelta(t, muhurta, float64(windows.Abhijit.End-windows.Abhijit.Start), 1e-12, "weekday %d", w)
		require.InDelta(t, 2*muhurta, float64(windows.RahuKaal.End-windows.RahuKaal.Start), 1e-12, "weekday %d", w)
		require.InDelta(t, 2*muhurta, float64(windows.GulikaKaal.End-windows.GulikaKaal.Start), 1e-12, "weekday %d", w)
	}
}

func TestAbhijitBeginsAtMidday(t *testing.T) {
	windows, err := WindowsForDay(testSunrise, testSunset, 3)
	require.NoError(t, err)

	midday := (float64(testSunrise) + float64(testSunset)) / 2
	require.InDelta(t, midday, float64(windows.Abhijit.Start), 1e-9)
}

func TestRahuKaalStartsAtSunriseOnSunday(t *testing.T) {
	windows, err := WindowsForDay(testSunrise, testSunset, 0)
	require.NoError(t, err)
	require.Equal(t, testSunrise, windows.RahuKaal.Start)
}

func TestGulikaMultipliersDescendThroughWeek(t *testing.T) {
	muhurta := MuhurtaLength(testSunrise, testSunset)
	for w := 0; w < 7; w++ {
		windows, err := WindowsForDay(testSunrise, testSunset, w)
		require.NoError(t, err)

		expected := float64(testSunrise) + muhurta*float64(6-w)*2
		require.InDelta(t, expected, float64(windows.GulikaKaal.Start), 1e-9, "weekday %d", w)
	}
}

func TestWindowsRejectInvalidWeekday(t *testing.T) {
	_, err := WindowsForDay(testSunrise, testSunset, 7)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeComputationError))

	_, err = WindowsForDay(testSunrise, testSunset, -1)
	require.Error(t, err)
}

func TestDishaShoolCoversEveryWeekday(t *testing.T) {
	directions := map[string]struct{}{}
	for w := 0; w < 7; w++ {
		result, err := DishaShoolForWeekday(w)
		require.NoError(t, err)
		require.NotEmpty(t, result.Direction)
		require.NotEmpty(t, result.Remedy)
		require.Equal(t, "first 3 muhurtas of the day", result.Duration)
		directions[result.Direction] = struct{}{}
	}
	// Only the four cardinal directions appear.
	require.LessOrEqual(t, len(directions), 4)
}

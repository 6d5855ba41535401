package panchanga

import (
	"fmt"

	apperrors "github.com/vedicastro/panchanga-api/pkg/errors"
)

// dishaShoolDuration is fixed regardless of weekday.
const dishaShoolDuration = "first 3 muhurtas of the day"

// gulikaMultipliers is indexed by weekday, 0=Sunday.
var gulikaMultipliers = [7]int{6, 5, 4, 3, 2, 1, 0}

var dishaShoolTable = [7]DishaShoolResult{
	{Direction: "West", Remedy: "Consume ghee before starting the journey", Duration: dishaShoolDuration},
	{Direction: "East", Remedy: "Look into a mirror before starting the journey", Duration: dishaShoolDuration},
	{Direction: "North", Remedy: "Consume jaggery before starting the journey", Duration: dishaShoolDuration},
	{Direction: "North", Remedy: "Consume til or coriander before starting the journey", Duration: dishaShoolDuration},
	{Direction: "South", Remedy: "Consume curd before starting the journey", Duration: dishaShoolDuration},
	{Direction: "West", Remedy: "Consume barley before starting the journey", Duration: dishaShoolDuration},
	{Direction: "East", Remedy: "Consume urad dal before starting the journey", Duration: dishaShoolDuration},
}

// JDWindow bounds one daytime period in Julian Days.
type JDWindow struct {
	Start JulianDay
	End   JulianDay
}

// DayWindows holds the weekday-dependent windows cut from the daylight span.
type DayWindows struct {
	Abhijit    JDWindow
	RahuKaal   JDWindow
	GulikaKaal JDWindow
}

// MuhurtaLength returns one thirtieth of the daylight span.
func MuhurtaLength(sunrise, sunset JulianDay) float64 {
	return (float64(sunset) - float64(sunrise)) / 30
}

// WindowsForDay cuts the Abhijit, Rahu Kaal, and Gulika Kaal windows from the
// daylight span for the given weekday (0=Sunday).
func WindowsForDay(sunrise, sunset JulianDay, weekday int) (DayWindows, error) {
	if weekday < 0 || weekday > 6 {
		return DayWindows{}, apperrors.Wrap(apperrors.CodeComputationError,
			fmt.Sprintf("weekday index %d out of range", weekday), nil)
	}
	muhurta := MuhurtaLength(sunrise, sunset)

	abhijitStart := float64(sunrise) + 15*muhurta
	rahuStart := float64(sunrise) + muhurta*float64(weekday)*2
	gulikaStart := float64(sunrise) + muhurta*float64(gulikaMultipliers[weekday])*2

	return DayWindows{
		Abhijit:    JDWindow{Start: JulianDay(abhijitStart), End: JulianDay(abhijitStart + muhurta)},
		RahuKaal:   JDWindow{Start: JulianDay(rahuStart), End: JulianDay(rahuStart + 2*muhurta)},
		GulikaKaal: JDWindow{Start: JulianDay(gulikaStart), End: JulianDay(gulikaStart + 2*muhurta)},
	}, nil
}

// DishaShoolForWeekday looks up the inauspicious travel direction, 0=Sunday.
func DishaShoolForWeekday(weekday int) (DishaShoolResult, error) {
	if weekday < 0 || weekday > 6 {
		return DishaShoolResult{}, apperrors.Wrap(apperrors.CodeComputationError,
			fmt.Sprintf("weekday index %d out of range", weekday), nil)
	}
	return dishaShoolTable[weekday], nil
}

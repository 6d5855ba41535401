package panchanga

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/vedicastro/panchanga-api/pkg/errors"
)

// Service exposes the panchanga derivation pipeline.
type Service interface {
	Compute(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg    Config
	eph    Ephemeris
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the panchanga domain.
func NewService(cfg Config, eph Ephemeris, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		eph:    eph,
		logger: logger.With("component", "panchanga.service"),
		now:    time.Now,
	}
}

// ResolveInstant turns a civil date, optional HH:MM clock, and timezone name
// into a Julian Day in UT plus the resolved local instant. An empty date means
// the current instant in the resolved timezone.
func ResolveInstant(date, clock, tzName, defaultTZ string, now func() time.Time) (JulianDay, time.Time, error) {
	tz := strings.TrimSpace(tzName)
	if tz == "" {
		tz = defaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0, time.Time{}, apperrors.Wrap(apperrors.CodeUnknownTimezone,
			"timezone could not be resolved", err)
	}

	var local time.Time
	if strings.TrimSpace(date) == "" {
		local = now().In(loc)
	} else {
		day, err := time.Parse("2006-01-02", strings.TrimSpace(date))
		if err != nil {
			return 0, time.Time{}, apperrors.Wrap(apperrors.CodeInvalidDate,
				"date must be formatted as YYYY-MM-DD", err)
		}
		hour, minute := 0, 0
		if strings.TrimSpace(clock) != "" {
			tod, err := time.Parse("15:04", strings.TrimSpace(clock))
			if err != nil {
				return 0, time.Time{}, apperrors.Wrap(apperrors.CodeInvalidDate,
					"time must be formatted as HH:MM", err)
			}
			hour, minute = tod.Hour(), tod.Minute()
		}
		local = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	}

	return JulianDayFromTime(local), local, nil
}

func (s *service) Compute(ctx context.Context, req Request) (Response, error) {
	jd, local, err := ResolveInstant(req.Date, req.Time, req.Timezone, s.cfg.DefaultTimezone, s.now)
	if err != nil {
		return Response{}, err
	}

	lat := s.cfg.DefaultLatitude
	if req.Lat != nil {
		lat = *req.Lat
	}
	lon := s.cfg.DefaultLongitude
	if req.Lon != nil {
		lon = *req.Lon
	}

	chart := make(map[string]RashiResult, 10)
	var sunLon, moonLon, rahuLon float64
	for _, body := range []Body{BodySun, BodyMoon, BodyMars, BodyMercury, BodyJupiter, BodyVenus, BodySaturn, BodyRahu} {
		pos, err := s.eph.Longitude(ctx, jd, body)
		if err != nil {
			return Response{}, apperrors.Wrap(apperrors.CodeEphemerisError,
				"could not compute position for "+string(body), err)
		}
		rashi, err := RashiFromLongitude(pos.Longitude)
		if err != nil {
			return Response{}, err
		}
		chart[string(body)] = rashi

		switch body {
		case BodySun:
			sunLon = rashi.Longitude
		case BodyMoon:
			moonLon = rashi.Longitude
		case BodyRahu:
			rahuLon = rashi.Longitude
		}
	}

	ketuRashi, err := RashiFromLongitude(KetuLongitude(rahuLon))
	if err != nil {
		return Response{}, err
	}
	chart[string(BodyKetu)] = ketuRashi

	asc, err := s.eph.Ascendant(ctx, jd, lat, lon)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeEphemerisError,
			"could not compute ascendant", err)
	}
	lagna, err := RashiFromLongitude(asc)
	if err != nil {
		return Response{}, err
	}
	chart["Lagna"] = lagna

	tithi, err := TithiFromLongitudes(sunLon, moonLon)
	if err != nil {
		return Response{}, err
	}
	nakshatra, err := NakshatraFromLongitude(moonLon)
	if err != nil {
		return Response{}, err
	}
	yoga, err := YogaFromLongitudes(sunLon, moonLon)
	if err != nil {
		return Response{}, err
	}
	karana, err := KaranaFromLongitudes(sunLon, moonLon)
	if err != nil {
		return Response{}, err
	}

	weekday := CivilWeekdayIndex(local)
	dishaShool, err := DishaShoolForWeekday(weekday)
	if err != nil {
		return Response{}, err
	}

	loc := local.Location()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	dayStart := JulianDayFromTime(midnight)

	sunRise, err := s.riseSet(ctx, dayStart, BodySun, lat, lon, KindRise)
	if err != nil {
		return Response{}, err
	}
	sunSet, err := s.riseSet(ctx, dayStart, BodySun, lat, lon, KindSet)
	if err != nil {
		return Response{}, err
	}
	moonRise, err := s.riseSet(ctx, dayStart, BodyMoon, lat, lon, KindRise)
	if err != nil {
		return Response{}, err
	}
	moonSet, err := s.riseSet(ctx, dayStart, BodyMoon, lat, lon, KindSet)
	if err != nil {
		return Response{}, err
	}

	var muhurta *MuhurtaTimings
	if sunRise != nil && sunSet != nil && *sunSet > *sunRise {
		windows, err := WindowsForDay(*sunRise, *sunSet, weekday)
		if err != nil {
			return Response{}, err
		}
		muhurta = &MuhurtaTimings{
			Abhijit:    formatWindow(windows.Abhijit, loc),
			RahuKaal:   formatWindow(windows.RahuKaal, loc),
			GulikaKaal: formatWindow(windows.GulikaKaal, loc),
		}
	}

	resp := Response{
		Date:        local.Format("2006-01-02"),
		Day:         WeekdayName(weekday),
		BirthChart:  chart,
		Tithi:       tithi,
		Nakshatra:   nakshatra,
		Yoga:        yoga,
		Karana:      karana,
		Muhurta:     muhurta,
		DishaShool:  dishaShool,
		SunTimings:  Timings{Rise: formatInstant(sunRise, loc), Set: formatInstant(sunSet, loc)},
		MoonTimings: Timings{Rise: formatInstant(moonRise, loc), Set: formatInstant(moonSet, loc)},
	}

	s.logger.Info("panchanga computed",
		"date", resp.Date, "tithi", tithi.Index, "nakshatra", nakshatra.Index, "yoga", yoga.Index)
	return resp, nil
}

func (s *service) riseSet(ctx context.Context, jd JulianDay, body Body, lat, lon float64, kind RiseSetKind) (*JulianDay, error) {
	instant, err := s.eph.RiseSet(ctx, jd, body, lat, lon, kind)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeEphemerisError,
			"could not compute "+string(kind)+" for "+string(body), err)
	}
	return instant, nil
}

func formatInstant(jd *JulianDay, loc *time.Location) *string {
	if jd == nil {
		return nil
	}
	formatted := TimeFromJulianDay(*jd).In(loc).Format(time.RFC3339)
	return &formatted
}

func formatWindow(w JDWindow, loc *time.Location) Window {
	return Window{
		Start: TimeFromJulianDay(w.Start).In(loc).Format(time.RFC3339),
		End:   TimeFromJulianDay(w.End).In(loc).Format(time.RFC3339),
	}
}

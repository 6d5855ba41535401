package unit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
)

func TestComputeProducesFullAlmanac(t *testing.T) {
	svc := panchanga.NewService(testPanchangaConfig(), fixedSky(), newTestLogger())

	resp, err := svc.Compute(context.Background(), panchanga.Request{
		Date: "2024-01-07", Time: "12:00", Timezone: "UTC",
	})
	require.NoError(t, err)

	require.Equal(t, "Sunday", resp.Day)
	require.Equal(t, "Ekadashi", resp.Tithi.Name)
	require.Equal(t, "Magha", resp.Nakshatra.Name)
	require.Equal(t, "Vriddhi", resp.Yoga.Name)
	require.Equal(t, "Bava", resp.Karana.Name)
	require.Len(t, resp.BirthChart, 10)
	require.NotNil(t, resp.Muhurta)
}

func TestComputeReportsPolarDaysWithoutWindows(t *testing.T) {
	sky := fixedSky()
	sky.riseSetFn = func(_ context.Context, _ panchanga.JulianDay, _ panchanga.Body, _, _ float64, _ panchanga.RiseSetKind) (*panchanga.JulianDay, error) {
		return nil, nil
	}
	svc := panchanga.NewService(testPanchangaConfig(), sky, newTestLogger())

	resp, err := svc.Compute(context.Background(), panchanga.Request{Date: "2024-06-20", Timezone: "UTC"})
	require.NoError(t, err)
	require.Nil(t, resp.Muhurta)
	require.Nil(t, resp.SunTimings.Rise)
}

func TestComputeFallsBackToConfiguredDefaults(t *testing.T) {
	var seenLat, seenLon float64
	sky := fixedSky()
	base := sky.riseSetFn
	sky.riseSetFn = func(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body, lat, lon float64, kind panchanga.RiseSetKind) (*panchanga.JulianDay, error) {
		seenLat, seenLon = lat, lon
		return base(ctx, jd, body, lat, lon, kind)
	}
	svc := panchanga.NewService(testPanchangaConfig(), sky, newTestLogger())

	_, err := svc.Compute(context.Background(), panchanga.Request{Date: "2024-01-07"})
	require.NoError(t, err)
	require.InDelta(t, 13.0827, seenLat, 1e-9)
	require.InDelta(t, 80.2707, seenLon, 1e-9)
}

func testPanchangaConfig() panchanga.Config {
	return panchanga.Config{
		DefaultTimezone:  "UTC",
		DefaultLatitude:  13.0827,
		DefaultLongitude: 80.2707,
	}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

// fixedSky serves a constant set of longitudes with a 06:00/18:00 UT sun.
func fixedSky() *stubEphemeris {
	longitudes := map[panchanga.Body]float64{
		panchanga.BodySun:     10,
		panchanga.BodyMoon:    130,
		panchanga.BodyMars:    45,
		panchanga.BodyMercury: 75,
		panchanga.BodyJupiter: 200,
		panchanga.BodyVenus:   300,
		panchanga.BodySaturn:  330,
		panchanga.BodyRahu:    100,
	}
	return &stubEphemeris{
		longitudeFn: func(_ context.Context, _ panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error) {
			lon, ok := longitudes[body]
			if !ok {
				return panchanga.EclipticPosition{}, errors.New("unexpected body " + string(body))
			}
			return panchanga.EclipticPosition{Longitude: lon}, nil
		},
		riseSetFn: func(_ context.Context, jd panchanga.JulianDay, _ panchanga.Body, _, _ float64, kind panchanga.RiseSetKind) (*panchanga.JulianDay, error) {
			offset := 0.25
			if kind == panchanga.KindSet {
				offset = 0.75
			}
			instant := jd + panchanga.JulianDay(offset)
			return &instant, nil
		},
		ascendantFn: func(_ context.Context, _ panchanga.JulianDay, _, _ float64) (float64, error) {
			return 123.4, nil
		},
	}
}

type stubEphemeris struct {
	longitudeFn func(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error)
	riseSetFn   func(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body, lat, lon float64, kind panchanga.RiseSetKind) (*panchanga.JulianDay, error)
	ascendantFn func(ctx context.Context, jd panchanga.JulianDay, lat, lon float64) (float64, error)
}

func (s *stubEphemeris) Longitude(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error) {
	return s.longitudeFn(ctx, jd, body)
}

func (s *stubEphemeris) RiseSet(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body, lat, lon float64, kind panchanga.RiseSetKind) (*panchanga.JulianDay, error) {
	return s.riseSetFn(ctx, jd, body, lat, lon, kind)
}

func (s *stubEphemeris) Ascendant(ctx context.Context, jd panchanga.JulianDay, lat, lon float64) (float64, error) {
	return s.ascendantFn(ctx, jd, lat, lon)
}

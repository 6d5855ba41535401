package kundli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
	apperrors "github.com/vedicastro/panchanga-api/pkg/errors"
)

type stubEphemeris struct {
	longitudeFn func(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error)
}

func (s *stubEphemeris) Longitude(ctx context.Context, jd panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error) {
	return s.longitudeFn(ctx, jd, body)
}

func (s *stubEphemeris) RiseSet(_ context.Context, _ panchanga.JulianDay, _ panchanga.Body, _, _ float64, _ panchanga.RiseSetKind) (*panchanga.JulianDay, error) {
	return nil, errors.New("not used in matching")
}

func (s *stubEphemeris) Ascendant(_ context.Context, _ panchanga.JulianDay, _, _ float64) (float64, error) {
	return 0, errors.New("not used in matching")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// moonAt serves a moon longitude per birth date: the boy's January instant
// lands in Mesha, the girl's February instant in Vrishabha.
func moonAt(boyLon, girlLon float64) *stubEphemeris {
	return &stubEphemeris{
		longitudeFn: func(_ context.Context, jd panchanga.JulianDay, body panchanga.Body) (panchanga.EclipticPosition, error) {
			if body != panchanga.BodyMoon {
				return panchanga.EclipticPosition{}, errors.New("unexpected body " + string(body))
			}
			if jd < 2460340 {
				return panchanga.EclipticPosition{Longitude: boyLon}, nil
			}
			return panchanga.EclipticPosition{Longitude: girlLon}, nil
		},
	}
}

func testRequest() Request {
	return Request{
		Boy:  PersonInput{Date: "2024-01-07", Time: "06:00", Timezone: "UTC"},
		Girl: PersonInput{Date: "2024-02-10", Time: "18:00", Timezone: "UTC"},
	}
}

func TestMatchScoresVarnaAndVashya(t *testing.T) {
	svc := NewService(Config{DefaultTimezone: "UTC"}, moonAt(10, 40), testLogger())

	resp, err := svc.Match(context.Background(), testRequest())
	require.NoError(t, err)

	// Mesha boy over Vrishabha girl: Kshatriya over Vaishya scores the varna
	// point, and both are quadruped signs for the full vashya score.
	require.Equal(t, 3, resp.TotalPoints)
	require.Equal(t, 36, resp.MaximumPoints)
	require.InDelta(t, 100.0/12, resp.CompatibilityPercentage, 1e-9)
	require.Equal(t, 2, resp.FactorsImplemented)
	require.Equal(t, 8, resp.FactorsTotal)

	varna := resp.Kootas["varna"]
	require.Equal(t, 1, varna.Points)
	require.Equal(t, 1, varna.MaxPoints)
	require.Equal(t, "Mesha", varna.BoySign)
	require.Equal(t, "Vrishabha", varna.GirlSign)

	vashya := resp.Kootas["vashya"]
	require.Equal(t, 2, vashya.Points)
	require.Equal(t, 2, vashya.MaxPoints)
}

func TestMatchLowerVarnaBoyScoresZero(t *testing.T) {
	// Mithuna boy (Shudra) against Karka girl (Brahmin).
	svc := NewService(Config{DefaultTimezone: "UTC"}, moonAt(70, 100), testLogger())

	resp, err := svc.Match(context.Background(), testRequest())
	require.NoError(t, err)

	require.Equal(t, 0, resp.Kootas["varna"].Points)
	// Human controls water, so vashya still grants one point.
	require.Equal(t, 1, resp.Kootas["vashya"].Points)
	require.Equal(t, 1, resp.TotalPoints)
}

func TestMatchPercentageIsExact(t *testing.T) {
	// Identical signs: varna ties and vashya matches for the full 3 points.
	svc := NewService(Config{DefaultTimezone: "UTC"}, moonAt(15, 15), testLogger())

	resp, err := svc.Match(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, 3, resp.TotalPoints)
	require.Equal(t, float64(3)/36*100, resp.CompatibilityPercentage)
}

func TestMatchRejectsMalformedBirthDate(t *testing.T) {
	svc := NewService(Config{DefaultTimezone: "UTC"}, moonAt(10, 40), testLogger())

	req := testRequest()
	req.Boy.Date = "Jan 7 2024"
	_, err := svc.Match(context.Background(), req)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))
}

func TestMatchRejectsUnknownTimezone(t *testing.T) {
	svc := NewService(Config{DefaultTimezone: "UTC"}, moonAt(10, 40), testLogger())

	req := testRequest()
	req.Girl.Timezone = "Luna/Tranquility"
	_, err := svc.Match(context.Background(), req)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeUnknownTimezone))
}

func TestMatchWrapsEphemerisFailures(t *testing.T) {
	eph := &stubEphemeris{
		longitudeFn: func(_ context.Context, _ panchanga.JulianDay, _ panchanga.Body) (panchanga.EclipticPosition, error) {
			return panchanga.EclipticPosition{}, errors.New("kernel unavailable")
		},
	}
	svc := NewService(Config{DefaultTimezone: "UTC"}, eph, testLogger())

	_, err := svc.Match(context.Background(), testRequest())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeEphemerisError))
}

func TestVashyaKootaIsSymmetricOnControl(t *testing.T) {
	// Kanya (human) against Makara (water) scores one point either way round.
	require.Equal(t, 1, vashyaKoota(5, 9))
	require.Equal(t, 1, vashyaKoota(9, 5))

	// Simha (wild) controls quadrupeds but shares nothing with humans.
	require.Equal(t, 1, vashyaKoota(4, 0))
	require.Equal(t, 0, vashyaKoota(4, 2))
}

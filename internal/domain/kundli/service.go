package kundli

import (
	"context"
	"log/slog"
	"time"

	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
	apperrors "github.com/vedicastro/panchanga-api/pkg/errors"
)

const (
	maximumPoints      = 36
	factorsImplemented = 2
	factorsTotal       = 8
)

// Service exposes Ashtakoot Milan compatibility scoring.
type Service interface {
	Match(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg    Config
	eph    panchanga.Ephemeris
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the kundli matching domain.
func NewService(cfg Config, eph panchanga.Ephemeris, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		eph:    eph,
		logger: logger.With("component", "kundli.service"),
		now:    time.Now,
	}
}

func (s *service) Match(ctx context.Context, req Request) (Response, error) {
	boySign, boyRashi, err := s.moonSign(ctx, req.Boy)
	if err != nil {
		return Response{}, err
	}
	girlSign, girlRashi, err := s.moonSign(ctx, req.Girl)
	if err != nil {
		return Response{}, err
	}

	varna := varnaKoota(boySign, girlSign)
	vashya := vashyaKoota(boySign, girlSign)
	total := varna + vashya

	resp := Response{
		TotalPoints:             total,
		MaximumPoints:           maximumPoints,
		CompatibilityPercentage: float64(total) / maximumPoints * 100,
		FactorsImplemented:      factorsImplemented,
		FactorsTotal:            factorsTotal,
		Kootas: map[string]KootaScore{
			"varna": {
				Points:    varna,
				MaxPoints: varnaMaxPoints,
				BoySign:   boyRashi.Rashi,
				GirlSign:  girlRashi.Rashi,
			},
			"vashya": {
				Points:    vashya,
				MaxPoints: vashyaMaxPoints,
				BoySign:   boyRashi.Rashi,
				GirlSign:  girlRashi.Rashi,
			},
		},
	}

	s.logger.Info("kundli match computed",
		"boy_sign", boyRashi.Rashi, "girl_sign", girlRashi.Rashi, "total_points", total)
	return resp, nil
}

func (s *service) moonSign(ctx context.Context, person PersonInput) (int, panchanga.RashiResult, error) {
	jd, _, err := panchanga.ResolveInstant(person.Date, person.Time, person.Timezone, s.cfg.DefaultTimezone, s.now)
	if err != nil {
		return 0, panchanga.RashiResult{}, err
	}
	pos, err := s.eph.Longitude(ctx, jd, panchanga.BodyMoon)
	if err != nil {
		return 0, panchanga.RashiResult{}, apperrors.Wrap(apperrors.CodeEphemerisError,
			"could not compute moon position", err)
	}
	rashi, err := panchanga.RashiFromLongitude(pos.Longitude)
	if err != nil {
		return 0, panchanga.RashiResult{}, err
	}
	return panchanga.SignIndex(pos.Longitude), rashi, nil
}
